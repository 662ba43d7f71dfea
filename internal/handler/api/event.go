package api

import (
	"net/http"

	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	cmds          commands.EventCommands
	registrations commands.RegistrationCommands
	q             queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, registrations commands.RegistrationCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, registrations: registrations, q: q}
}

// @Summary List events
// @Description List published events, optionally only those of one fest.
// @Description Organizers may pass includeDrafts=true to see unpublished ones too.
// @Tags events
// @Produce json
// @Param festId query string false "Fest ID"
// @Param includeDrafts query bool false "Include unpublished events (organizers only)"
// @Param mine query bool false "Only the caller's own events, drafts included (organizers only)"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	var filters queries.EventFilters
	if v := c.Query("festId"); v != "" {
		festID, err := uuid.Parse(v)
		if err != nil {
			abortInvalidQuery(c, err, "festId")
			return
		}
		filters.FestID = &festID
	}
	requester, authenticated := middleware.GetRequester(c)
	isOrganizer := authenticated && requester.Role().AtLeast(user.RoleOrganizer)
	if c.Query("includeDrafts") == "true" && isOrganizer {
		filters.IncludeDrafts = true
	}
	if c.Query("mine") == "true" {
		switch {
		case !authenticated:
			abortWithUsecaseError(c, errs.ErrUnauthenticated)
			return
		case !isOrganizer:
			abortWithUsecaseError(c, errs.ErrForbidden)
			return
		}
		organizerID := requester.ID()
		filters.OrganizerID = &organizerID
		filters.IncludeDrafts = true
	}
	views, err := h.q.ListEvents(c.Request.Context(), filters)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetEvent(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	id, err := h.cmds.CreateEvent(c.Request.Context(), req.ToCommand(), requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithEvent(c, http.StatusCreated, id)
}

// @Summary Update event
// @Description Partial update; capacity cannot drop below the seats already taken
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Update event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.UpdateEvent(c.Request.Context(), id, req.ToCommand(), requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithEvent(c, http.StatusOK, id)
}

// @Summary Delete event
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.cmds.DeleteEvent(c.Request.Context(), id, requester); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register for event
// @Description Takes one seat and records the caller's registration in one transaction
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/events/{id}/registrations [post]
func (h *EventHandler) Register(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	requester, _ := middleware.GetRequester(c)
	if err := h.registrations.RegisterForEvent(c.Request.Context(), id, requester, req.ToDomain()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondWithRegistration(c, h.q, id)
}

// @Summary List registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.RegistrationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/registrations [get]
func (h *EventHandler) ListRegistrations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegistrationViews(views))
}

// @Summary Get own registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.RegistrationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/registrations/me [get]
func (h *EventHandler) MyRegistration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	requester, _ := middleware.GetRequester(c)
	view, err := h.q.GetMyRegistration(c.Request.Context(), id, requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegistrationView(view))
}

func (h *EventHandler) respondWithEvent(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetEvent(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromEventView(view))
}

// respondWithRegistration reads back the registration that was just written.
func respondWithRegistration(c *gin.Context, q queries.EventQueries, eventID uuid.UUID) {
	requester, _ := middleware.GetRequester(c)
	view, err := q.GetMyRegistration(c.Request.Context(), eventID, requester)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegistrationView(view))
}
