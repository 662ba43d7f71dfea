package api

import (
	"net/http"

	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FestHandler struct {
	cmds          commands.FestCommands
	registrations commands.RegistrationCommands
	q             queries.FestQueries
	events        queries.EventQueries
}

func NewFestHandler(
	cmds commands.FestCommands,
	registrations commands.RegistrationCommands,
	q queries.FestQueries,
	events queries.EventQueries,
) *FestHandler {
	return &FestHandler{cmds: cmds, registrations: registrations, q: q, events: events}
}

// @Summary List fests
// @Tags fests
// @Produce json
// @Success 200 {array} resdto.FestResponse
// @Router /api/fests [get]
func (h *FestHandler) List(c *gin.Context) {
	views, err := h.q.ListFests(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFestViews(views))
}

// @Summary Get fest
// @Tags fests
// @Produce json
// @Param id path string true "Fest ID"
// @Success 200 {object} resdto.FestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/fests/{id} [get]
func (h *FestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetFest(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFestView(view))
}

// @Summary Create fest
// @Tags fests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFestRequest true "Create fest request"
// @Success 201 {object} resdto.FestResponse
// @Failure 400 {object} httperr.Response
// @Router /api/fests [post]
func (h *FestHandler) Create(c *gin.Context) {
	var req reqdto.CreateFestRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	id, err := h.cmds.CreateFest(c.Request.Context(), req.ToCommand(), requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetFest(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFestView(view))
}

// @Summary Update fest
// @Tags fests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fest ID"
// @Param request body reqdto.UpdateFestRequest true "Update fest request"
// @Success 200 {object} resdto.FestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/fests/{id} [patch]
func (h *FestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateFestRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.UpdateFest(c.Request.Context(), id, req.ToCommand(), requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetFest(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFestView(view))
}

// @Summary List fest events
// @Tags fests
// @Produce json
// @Param id path string true "Fest ID"
// @Success 200 {array} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /api/fests/{id}/events [get]
func (h *FestHandler) ListEvents(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListFestEvents(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Add fest event
// @Tags fests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fest ID"
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /api/fests/{id}/events [post]
func (h *FestHandler) AddEvent(c *gin.Context) {
	festID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	eventID, err := h.cmds.AddFestEvent(c.Request.Context(), festID, req.ToCommand(), requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Remove fest event
// @Tags fests
// @Security BearerAuth
// @Param id path string true "Fest ID"
// @Param eventId path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/fests/{id}/events/{eventId} [delete]
func (h *FestHandler) RemoveEvent(c *gin.Context) {
	festID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.RemoveFestEvent(c.Request.Context(), festID, eventID, requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register for fest event
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fest ID"
// @Param eventId path string true "Event ID"
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/fests/{id}/events/{eventId}/registrations [post]
func (h *FestHandler) Register(c *gin.Context) {
	festID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.registrations.RegisterForFestEvent(c.Request.Context(), &festID, eventID, requester, req.ToDomain()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondWithRegistration(c, h.events, eventID)
}
