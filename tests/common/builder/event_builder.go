//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBuilder struct {
	FestID      *uuid.UUID
	Title       string
	Description string
	Venue       string
	StartsAt    time.Time
	Capacity    int
	Organizer   user.Requester
	Now         time.Time
}

func NewEventBuilder() *EventBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &EventBuilder{
		Title:       "Intro to Robotics Workshop",
		Description: "Hands-on session with the robotics club",
		Venue:       "Main Auditorium",
		StartsAt:    now.Add(7 * 24 * time.Hour),
		Capacity:    50,
		Organizer:   NewRequesterBuilder().AsOrganizer().MustBuild(),
		Now:         now,
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

func (e *EventBuilder) WithTitle(title string) *EventBuilder {
	e.Title = title
	return e
}

func (e *EventBuilder) WithCapacity(capacity int) *EventBuilder {
	e.Capacity = capacity
	return e
}

func (e *EventBuilder) WithStartsAt(t time.Time) *EventBuilder {
	e.StartsAt = t
	return e
}

func (e *EventBuilder) InFest(festID uuid.UUID) *EventBuilder {
	e.FestID = &festID
	return e
}

// Build methods
func (e *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(e.FestID, e.details(), e.Capacity, e.Organizer, e.Now)
}

func (e *EventBuilder) BuildCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
		Capacity:    e.Capacity,
	}
}

func (e *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
		Capacity:    e.Capacity,
	}
}

func (e *EventBuilder) BuildView() *queries.EventView {
	return &queries.EventView{
		ID:              uuid.New(),
		FestID:          e.FestID,
		Title:           e.Title,
		Description:     e.Description,
		Venue:           e.Venue,
		StartsAt:        e.StartsAt,
		Capacity:        e.Capacity,
		RegisteredCount: 0,
		SeatsLeft:       e.Capacity,
		OrganizerID:     e.Organizer.ID(),
		OrganizerEmail:  e.Organizer.Email().Value(),
		IsPublished:     true,
		CreatedAt:       e.Now,
		UpdatedAt:       e.Now,
	}
}

func (e *EventBuilder) details() event.Details {
	return event.Details{
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
	}
}
