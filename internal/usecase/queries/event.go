package queries

import (
	"context"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventFilters struct {
	FestID        *uuid.UUID
	IncludeDrafts bool
	// OrganizerID narrows the listing to one organizer's events.
	OrganizerID *string
}

type EventQueries interface {
	ListEvents(ctx context.Context, filters EventFilters) ([]*EventView, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*RegistrationView, error)
	// GetMyRegistration returns the requester's own registration for an event.
	GetMyRegistration(ctx context.Context, eventID uuid.UUID, requester user.Requester) (*RegistrationView, error)
}

type eventQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewEventQueries(uow shared.UnitOfWork) EventQueries {
	return &eventQueriesImpl{uow: uow}
}

func (q *eventQueriesImpl) ListEvents(ctx context.Context, filters EventFilters) ([]*EventView, error) {
	events, err := q.uow.Repositories().Events().List(ctx, shared.EventFilter{
		FestID:        filters.FestID,
		PublishedOnly: !filters.IncludeDrafts,
		OrganizerID:   filters.OrganizerID,
	})
	if err != nil {
		return nil, lookupErr(err)
	}
	return mapAll(events, toEventView)
}

func (q *eventQueriesImpl) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.uow.Repositories().Events().FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return toEventView(ev)
}

func (q *eventQueriesImpl) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*RegistrationView, error) {
	repos := q.uow.Repositories()
	if _, err := repos.Events().FindByID(ctx, eventID); err != nil {
		return nil, lookupErr(err)
	}
	regs, err := repos.Registrations().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, lookupErr(err)
	}
	return mapAll(regs, toRegistrationView)
}

func (q *eventQueriesImpl) GetMyRegistration(ctx context.Context, eventID uuid.UUID, requester user.Requester) (*RegistrationView, error) {
	if requester.IsAnonymous() {
		return nil, errs.ErrUnauthenticated
	}
	reg, err := q.uow.Repositories().Registrations().Find(ctx, eventID, requester.ID())
	if err != nil {
		return nil, lookupErr(err)
	}
	return toRegistrationView(reg)
}
