package api

import (
	"net/http"
	"strconv"

	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MerchHandler struct {
	cmds   commands.MerchCommands
	orders commands.OrderCommands
	q      queries.MerchQueries
}

func NewMerchHandler(cmds commands.MerchCommands, orders commands.OrderCommands, q queries.MerchQueries) *MerchHandler {
	return &MerchHandler{cmds: cmds, orders: orders, q: q}
}

// @Summary List merch
// @Tags merch
// @Produce json
// @Success 200 {array} resdto.MerchResponse
// @Router /api/merch [get]
func (h *MerchHandler) List(c *gin.Context) {
	views, err := h.q.ListMerch(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMerchViews(views))
}

// @Summary Get merch item
// @Tags merch
// @Produce json
// @Param id path string true "Merch ID"
// @Success 200 {object} resdto.MerchResponse
// @Failure 404 {object} httperr.Response
// @Router /api/merch/{id} [get]
func (h *MerchHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.respondWithMerch(c, http.StatusOK, id)
}

// @Summary Create merch item
// @Description Creates an item with a size chart; stock is the sum of all sizes
// @Tags merch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMerchItemRequest true "Create merch request"
// @Success 201 {object} resdto.MerchResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/merch [post]
func (h *MerchHandler) Create(c *gin.Context) {
	var req reqdto.CreateMerchItemRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	id, err := h.cmds.CreateMerchItem(c.Request.Context(), req.ToCommand(), requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithMerch(c, http.StatusCreated, id)
}

// @Summary Update merch item
// @Tags merch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merch ID"
// @Param request body reqdto.UpdateMerchItemRequest true "Update merch request"
// @Success 200 {object} resdto.MerchResponse
// @Failure 404 {object} httperr.Response
// @Router /api/merch/{id} [patch]
func (h *MerchHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMerchItemRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.UpdateMerchItem(c.Request.Context(), id, req.ToCommand(), requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithMerch(c, http.StatusOK, id)
}

// @Summary Remove merch item
// @Tags merch
// @Security BearerAuth
// @Param id path string true "Merch ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/merch/{id} [delete]
func (h *MerchHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.RemoveMerchItem(c.Request.Context(), id, requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Place order
// @Description Takes one unit of the selected size and records a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merch ID"
// @Param request body reqdto.PlaceOrderRequest true "Order form"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/merch/{id}/orders [post]
func (h *MerchHandler) PlaceOrder(c *gin.Context) {
	merchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	orderID, err := h.orders.PlaceOrder(c.Request.Context(), merchID, requester, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithOrder(c, http.StatusCreated, merchID, orderID)
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merch ID"
// @Param status query string false "pending, approved or rejected"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/merch/{id}/orders [get]
func (h *MerchHandler) ListOrders(c *gin.Context) {
	merchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	filters := queries.OrderFilters{Status: c.Query("status")}
	views, next, err := h.q.ListOrders(c.Request.Context(), merchID, filters, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			abortInvalidQuery(c, err, "cursor")
			return
		}
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views, next))
}

// @Summary Approve or reject order
// @Description One-shot transition of a pending order; rejection restores stock
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merch ID"
// @Param orderId path string true "Order ID"
// @Param request body reqdto.SetOrderStatusRequest true "New status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/merch/{id}/orders/{orderId} [patch]
func (h *MerchHandler) SetOrderStatus(c *gin.Context) {
	merchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var req reqdto.SetOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.orders.SetOrderStatus(c.Request.Context(), merchID, orderID, req.Status); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithOrder(c, http.StatusOK, merchID, orderID)
}

func (h *MerchHandler) respondWithMerch(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetMerch(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromMerchView(view))
}

func (h *MerchHandler) respondWithOrder(c *gin.Context, status int, merchID, orderID uuid.UUID) {
	view, err := h.q.GetOrder(c.Request.Context(), merchID, orderID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromOrderView(view))
}
