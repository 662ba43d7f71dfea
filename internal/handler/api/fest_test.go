//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-reserve/internal/handler/api"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/tests/common/builder"
	"campus-reserve/tests/common/httptest"
	"campus-reserve/tests/common/testutil"
	commandsmock "campus-reserve/tests/mock/commands"
	queriesmock "campus-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FestHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockCommands      *commandsmock.MockFestCommands
	mockRegistrations *commandsmock.MockRegistrationCommands
	mockQueries       *queriesmock.MockFestQueries
	mockEvents        *queriesmock.MockEventQueries
	handler           *api.FestHandler
}

func (s *FestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFestCommands(s.mockCtrl)
	s.mockRegistrations = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFestQueries(s.mockCtrl)
	s.mockEvents = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewFestHandler(s.mockCommands, s.mockRegistrations, s.mockQueries, s.mockEvents)

	s.router.GET("/api/fests", s.handler.List)
	s.router.GET("/api/fests/:id", s.handler.Get)
	s.router.POST("/api/fests", fakeAuth, s.handler.Create)
	s.router.PATCH("/api/fests/:id", fakeAuth, s.handler.Update)
	s.router.GET("/api/fests/:id/events", s.handler.ListEvents)
	s.router.POST("/api/fests/:id/events", fakeAuth, s.handler.AddEvent)
	s.router.DELETE("/api/fests/:id/events/:eventId", fakeAuth, s.handler.RemoveEvent)
	s.router.POST("/api/fests/:id/events/:eventId/registrations", fakeAuth, s.handler.Register)
}

func (s *FestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFestHandlerSuite(t *testing.T) {
	suite.Run(t, new(FestHandlerTestSuite))
}

func (s *FestHandlerTestSuite) TestListAndGet() {
	view := builder.NewFestBuilder().BuildView()

	s.Run("list", func() {
		s.mockQueries.EXPECT().ListFests(gomock.Any()).Return([]*queries.FestView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fests", nil, "")
		var body []resdto.FestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.Name, body[0].Name)
		s.Equal(view.EndsAt.Unix(), body[0].EndsAt)
	})

	s.Run("get", func() {
		s.mockQueries.EXPECT().GetFest(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fests/"+view.ID.String(), nil, "")
		var body resdto.FestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("get: 404", func() {
		s.mockQueries.EXPECT().GetFest(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("fest not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fests/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, errs.ErrNotFound.Error())
	})

	s.Run("events of a fest", func() {
		ev := builder.NewEventBuilder().InFest(view.ID).BuildView()
		s.mockQueries.EXPECT().ListFestEvents(gomock.Any(), view.ID).Return([]*queries.EventView{ev}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fests/"+view.ID.String()+"/events", nil, "")
		var body []resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Require().NotNil(body[0].FestID)
		s.Equal(view.ID.String(), *body[0].FestID)
	})
}

func (s *FestHandlerTestSuite) TestCreate() {
	fb := builder.NewFestBuilder()
	reqBody := fb.BuildCreateRequestDTO()
	view := fb.BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().CreateFest(gomock.Any(), fb.BuildCommand(), testOrganizer).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetFest(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/fests", reqBody, organizerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 without a name", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/fests", requestMap, organizerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 when the period is inverted", func() {
		s.mockCommands.EXPECT().CreateFest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("fest must end after it starts"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/fests", reqBody, organizerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, errs.ErrDomainValidation.Error())
	})
}

func (s *FestHandlerTestSuite) TestUpdate() {
	view := builder.NewFestBuilder().BuildView()
	url := "/api/fests/" + view.ID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateFest(gomock.Any(), view.ID, gomock.Any(), testOrganizer).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetFest(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"venue": "Open Air Theatre"}, organizerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for someone else's fest", func() {
		s.mockCommands.EXPECT().UpdateFest(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).Return(errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"venue": "x"}, organizerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, errs.ErrForbidden.Error())
	})
}

func (s *FestHandlerTestSuite) TestFestEvents() {
	festID := uuid.New()
	eb := builder.NewEventBuilder().InFest(festID)
	ev := eb.BuildView()

	s.Run("add: 201 with the event view", func() {
		s.mockCommands.EXPECT().AddFestEvent(gomock.Any(), festID, eb.BuildCommand(), testOrganizer).Return(ev.ID, nil).Times(1)
		s.mockEvents.EXPECT().GetEvent(gomock.Any(), ev.ID).Return(ev, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/fests/"+festID.String()+"/events", eb.BuildCreateRequestDTO(), organizerToken)
		var body resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(ev.ID.String(), body.ID)
	})

	s.Run("remove: 204", func() {
		s.mockCommands.EXPECT().RemoveFestEvent(gomock.Any(), festID, ev.ID, testOrganizer).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/fests/"+festID.String()+"/events/"+ev.ID.String(), nil, organizerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("remove: 400 on malformed event id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/fests/"+festID.String()+"/events/nope", nil, organizerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid eventId")
	})
}

func (s *FestHandlerTestSuite) TestRegister() {
	festID := uuid.New()
	rb := builder.NewRegistrationBuilder()
	url := "/api/fests/" + festID.String() + "/events/" + rb.EventID.String() + "/registrations"

	s.Run("success: scoped to the fest", func() {
		s.mockRegistrations.EXPECT().
			RegisterForFestEvent(gomock.Any(), &festID, rb.EventID, testStudent, rb.BuildForm()).
			Return(nil).Times(1)
		s.mockEvents.EXPECT().GetMyRegistration(gomock.Any(), rb.EventID, testStudent).Return(rb.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, rb.BuildRequestDTO(), studentToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 404 when the event is not part of the fest", func() {
		s.mockRegistrations.EXPECT().RegisterForFestEvent(gomock.Any(), gomock.Any(), rb.EventID, gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("event does not belong to fest"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, rb.BuildRequestDTO(), studentToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, errs.ErrNotFound.Error())
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, rb.BuildRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
