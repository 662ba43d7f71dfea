package response

import (
	"campus-reserve/internal/usecase/queries"
)

type EventResponse struct {
	ID              string  `json:"id"`
	FestID          *string `json:"fest_id,omitempty" copier:"-"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Venue           string  `json:"venue"`
	StartsAt        int64   `json:"starts_at"`
	Capacity        int     `json:"capacity"`
	RegisteredCount int     `json:"registered_count"`
	SeatsLeft       int     `json:"seats_left"`
	OrganizerID     string  `json:"organizer_id"`
	OrganizerEmail  string  `json:"organizer_email"`
	IsPublished     bool    `json:"is_published"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	res := build[EventResponse](v)
	res.FestID = optionalID(v.FestID)
	return res
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(views))
	for i, v := range views {
		res[i] = FromEventView(v)
	}
	return res
}

type RegistrationResponse struct {
	EventID      string `json:"event_id"`
	RequesterID  string `json:"requester_id"`
	Name         string `json:"name"`
	StudentID    string `json:"student_id"`
	Email        string `json:"email"`
	RegisteredAt int64  `json:"registered_at"`
}

func FromRegistrationView(v *queries.RegistrationView) *RegistrationResponse {
	return build[RegistrationResponse](v)
}

func FromRegistrationViews(views []*queries.RegistrationView) []*RegistrationResponse {
	res := make([]*RegistrationResponse, len(views))
	for i, v := range views {
		res[i] = FromRegistrationView(v)
	}
	return res
}
