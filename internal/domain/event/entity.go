package event

import (
	"errors"
	"strings"
	"time"

	"campus-reserve/internal/domain/capacity"
	"campus-reserve/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle              = errors.New("event title is required")
	ErrInvalidCapacity         = errors.New("event capacity must be greater than zero")
	ErrMissingStartTime        = errors.New("event start time is required")
	ErrEventFull               = errors.New("event is full")
	ErrCapacityBelowRegistered = errors.New("capacity is below registered count")
)

type Details struct {
	Title       string
	Description string
	Venue       string
	StartsAt    time.Time
}

func (d Details) normalize() (Details, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Venue = strings.TrimSpace(d.Venue)
	if d.Title == "" {
		return Details{}, ErrEmptyTitle
	}
	if d.StartsAt.IsZero() {
		return Details{}, ErrMissingStartTime
	}
	return d, nil
}

// Event is a capacity resource. A fest event is an Event with a fest id.
type Event struct {
	id             uuid.UUID
	festID         *uuid.UUID
	details        Details
	seats          capacity.Counter
	organizerID    string
	organizerEmail string
	isPublished    bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewEvent(festID *uuid.UUID, details Details, seatCapacity int, organizer user.Requester, now time.Time) (*Event, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if seatCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	seats, err := capacity.NewCounter(seatCapacity, 0)
	if err != nil {
		return nil, err
	}
	return &Event{
		id:             uuid.New(),
		festID:         festID,
		details:        d,
		seats:          seats,
		organizerID:    organizer.ID(),
		organizerEmail: organizer.Email().Value(),
		isPublished:    true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructEvent(
	id uuid.UUID,
	festID *uuid.UUID,
	details Details,
	seatCapacity, registeredCount int,
	organizerID, organizerEmail string,
	isPublished bool,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	seats, err := capacity.NewCounter(seatCapacity, registeredCount)
	if err != nil {
		return nil, err
	}
	return &Event{
		id:             id,
		festID:         festID,
		details:        details,
		seats:          seats,
		organizerID:    organizerID,
		organizerEmail: organizerEmail,
		isPublished:    isPublished,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ClaimSeat takes one seat or fails with ErrEventFull; the event is unchanged on failure.
func (e *Event) ClaimSeat(now time.Time) error {
	next, err := e.seats.Claim()
	if err != nil {
		return ErrEventFull
	}
	e.seats = next
	e.updatedAt = now
	return nil
}

func (e *Event) Resize(seatCapacity int, now time.Time) error {
	if seatCapacity <= 0 {
		return ErrInvalidCapacity
	}
	next, err := e.seats.Resize(seatCapacity)
	if err != nil {
		if errors.Is(err, capacity.ErrBelowClaimed) {
			return ErrCapacityBelowRegistered
		}
		return err
	}
	e.seats = next
	e.updatedAt = now
	return nil
}

func (e *Event) UpdateDetails(details Details, now time.Time) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	e.details = d
	e.updatedAt = now
	return nil
}

func (e *Event) SetPublished(published bool, now time.Time) {
	e.isPublished = published
	e.updatedAt = now
}

// BelongsTo reports whether the event is part of the given fest.
func (e *Event) BelongsTo(festID uuid.UUID) bool {
	return e.festID != nil && *e.festID == festID
}

func (e *Event) ID() uuid.UUID          { return e.id }
func (e *Event) FestID() *uuid.UUID     { return e.festID }
func (e *Event) Details() Details       { return e.details }
func (e *Event) Capacity() int          { return e.seats.Capacity() }
func (e *Event) RegisteredCount() int   { return e.seats.Used() }
func (e *Event) SeatsLeft() int         { return e.seats.Remaining() }
func (e *Event) OrganizerID() string    { return e.organizerID }
func (e *Event) OrganizerEmail() string { return e.organizerEmail }
func (e *Event) IsPublished() bool      { return e.isPublished }
func (e *Event) CreatedAt() time.Time   { return e.createdAt }
func (e *Event) UpdatedAt() time.Time   { return e.updatedAt }
