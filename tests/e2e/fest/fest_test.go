//go:build e2e

package fest_test

import (
	"fmt"
	"net/http"
	"testing"

	"campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/tests/common/builder"
	"campus-reserve/tests/common/dbtest"
	"campus-reserve/tests/common/httptest"
	"campus-reserve/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	festsURL            = "/api/fests"
	festURL             = "/api/fests/%s"
	festEventsURL       = "/api/fests/%s/events"
	festEventURL        = "/api/fests/%s/events/%s"
	festRegistrationURL = "/api/fests/%s/events/%s/registrations"
)

type FestSuite struct {
	e2e.SharedSuite
}

func TestFestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FestSuite))
}

func (s *FestSuite) TestFestLifecycle() {
	s.Run("organizer builds a fest programme", func() {
		t := s.T()
		token := s.Auth.OrganizerToken(t, "organizer-001")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, festsURL, builder.NewFestBuilder().BuildCreateRequestDTO(), token)
		var fest response.FestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &fest)
		require.Equal(t, "organizer-001", fest.CreatedBy)

		eventBody := builder.NewEventBuilder().WithTitle("Robo Wars").WithCapacity(40).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(festEventsURL, fest.ID), eventBody, token)
		var ev response.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &ev)
		require.NotNil(t, ev.FestID)
		require.Equal(t, fest.ID, *ev.FestID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(festEventsURL, fest.ID), nil, "")
		var events []response.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &events)
		require.Len(t, events, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(festURL, fest.ID),
			map[string]any{"venue": "Open Air Theatre"}, token)
		var updated response.FestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "Open Air Theatre", updated.Venue)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(festEventURL, fest.ID, ev.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(festEventsURL, fest.ID), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &events)
		require.Empty(t, events)
	})

	s.Run("inverted period is rejected", func() {
		t := s.T()
		token := s.Auth.OrganizerToken(t, "organizer-001")
		fb := builder.NewFestBuilder()
		body := fb.WithPeriod(fb.EndsAt, fb.StartsAt).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, festsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, errs.ErrDomainValidation.Error())
	})
}

func (s *FestSuite) TestFestRegistration() {
	s.Run("registers through the fest", func() {
		t := s.T()
		festID := dbtest.CreateTestFest(t, s.DB, "Spring Tech Fest")
		eventID := dbtest.CreateTestFestEvent(t, s.DB, festID, "Code Golf", 2)
		token := s.Auth.StudentToken(t, "student-001")
		body := builder.NewRegistrationBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(festRegistrationURL, festID, eventID), body, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		require.Equal(t, 1, dbtest.RegisteredCount(t, s.DB, eventID))
	})

	s.Run("event from another fest is not found", func() {
		t := s.T()
		festID := dbtest.CreateTestFest(t, s.DB, "Spring Tech Fest")
		otherFest := dbtest.CreateTestFest(t, s.DB, "Cultural Night")
		eventID := dbtest.CreateTestFestEvent(t, s.DB, otherFest, "Dance Off", 2)
		token := s.Auth.StudentToken(t, "student-001")
		body := builder.NewRegistrationBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(festRegistrationURL, festID, eventID), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, errs.ErrNotFound.Error())
		require.Equal(t, 0, dbtest.RegisteredCount(t, s.DB, eventID))
	})
}
