package queries

import (
	"context"

	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type FestQueries interface {
	ListFests(ctx context.Context) ([]*FestView, error)
	GetFest(ctx context.Context, id uuid.UUID) (*FestView, error)
	ListFestEvents(ctx context.Context, festID uuid.UUID) ([]*EventView, error)
}

type festQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewFestQueries(uow shared.UnitOfWork) FestQueries {
	return &festQueriesImpl{uow: uow}
}

func (q *festQueriesImpl) ListFests(ctx context.Context) ([]*FestView, error) {
	fests, err := q.uow.Repositories().Fests().List(ctx)
	if err != nil {
		return nil, lookupErr(err)
	}
	return mapAll(fests, toFestView)
}

func (q *festQueriesImpl) GetFest(ctx context.Context, id uuid.UUID) (*FestView, error) {
	f, err := q.uow.Repositories().Fests().FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return toFestView(f)
}

func (q *festQueriesImpl) ListFestEvents(ctx context.Context, festID uuid.UUID) ([]*EventView, error) {
	repos := q.uow.Repositories()
	if _, err := repos.Fests().FindByID(ctx, festID); err != nil {
		return nil, lookupErr(err)
	}
	events, err := repos.Events().List(ctx, shared.EventFilter{FestID: &festID, PublishedOnly: true})
	if err != nil {
		return nil, lookupErr(err)
	}
	return mapAll(events, toEventView)
}
