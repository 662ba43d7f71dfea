package commands

import (
	"context"
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/pkg/patch"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string
	Description string
	Venue       string
	StartsAt    time.Time
	Capacity    int
}

// UpdateEventRequest follows PATCH semantics: nil fields are left untouched.
type UpdateEventRequest struct {
	Title       *string
	Description *string
	Venue       *string
	StartsAt    *time.Time
	Capacity    *int
	IsPublished *bool
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req CreateEventRequest, organizer user.Requester) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req UpdateEventRequest, organizer user.Requester) error
	DeleteEvent(ctx context.Context, eventID uuid.UUID, organizer user.Requester) error
}

type eventUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventUseCase(uow shared.UnitOfWork, clk clock.Clock) EventCommands {
	return &eventUseCaseImpl{uow: uow, clock: clk}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, req CreateEventRequest, organizer user.Requester) (uuid.UUID, error) {
	if err := requireOrganizer(organizer); err != nil {
		return uuid.Nil, err
	}
	ev, err := event.NewEvent(nil, req.details(), req.Capacity, organizer, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err)
	}
	if err := uc.uow.Repositories().Events().Create(ctx, ev); err != nil {
		return uuid.Nil, translate(err)
	}
	return ev.ID(), nil
}

func (uc *eventUseCaseImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, req UpdateEventRequest, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		ev, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return err
		}
		if err := applyEventPatch(ev, req, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Events().Save(ctx, ev)
	})
	return translate(err)
}

func (uc *eventUseCaseImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		return deleteEventWithRegistrations(ctx, tx, eventID)
	})
	return translate(err)
}

func (r CreateEventRequest) details() event.Details {
	return event.Details{
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
	}
}

// applyEventPatch changes the seat capacity through the counter so that it
// can never drop below the seats already taken.
func applyEventPatch(ev *event.Event, req UpdateEventRequest, now time.Time) error {
	current := ev.Details()
	next := event.Details{
		Title:       patch.Coalesce(req.Title, current.Title),
		Description: patch.Coalesce(req.Description, current.Description),
		Venue:       patch.Coalesce(req.Venue, current.Venue),
		StartsAt:    patch.Coalesce(req.StartsAt, current.StartsAt),
	}
	if next != current {
		if err := ev.UpdateDetails(next, now); err != nil {
			return err
		}
	}
	if patch.Changed(req.Capacity, ev.Capacity()) {
		if err := ev.Resize(*req.Capacity, now); err != nil {
			return err
		}
	}
	if patch.Changed(req.IsPublished, ev.IsPublished()) {
		ev.SetPublished(*req.IsPublished, now)
	}
	return nil
}

func deleteEventWithRegistrations(ctx context.Context, tx shared.Repositories, eventID uuid.UUID) error {
	if _, err := tx.Events().FindByID(ctx, eventID); err != nil {
		return err
	}
	if err := tx.Registrations().DeleteByEvent(ctx, eventID); err != nil {
		return errs.Wrap(err, "failed to delete registrations")
	}
	return tx.Events().Delete(ctx, eventID)
}
