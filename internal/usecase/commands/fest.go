package commands

import (
	"context"
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/pkg/patch"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateFestRequest struct {
	Name        string
	Description string
	Venue       string
	StartsAt    time.Time
	EndsAt      time.Time
}

type UpdateFestRequest struct {
	Name        *string
	Description *string
	Venue       *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

type FestCommands interface {
	CreateFest(ctx context.Context, req CreateFestRequest, organizer user.Requester) (uuid.UUID, error)
	UpdateFest(ctx context.Context, festID uuid.UUID, req UpdateFestRequest, organizer user.Requester) error
	AddFestEvent(ctx context.Context, festID uuid.UUID, req CreateEventRequest, organizer user.Requester) (uuid.UUID, error)
	RemoveFestEvent(ctx context.Context, festID, eventID uuid.UUID, organizer user.Requester) error
}

type festUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFestUseCase(uow shared.UnitOfWork, clk clock.Clock) FestCommands {
	return &festUseCaseImpl{uow: uow, clock: clk}
}

func (uc *festUseCaseImpl) CreateFest(ctx context.Context, req CreateFestRequest, organizer user.Requester) (uuid.UUID, error) {
	if err := requireOrganizer(organizer); err != nil {
		return uuid.Nil, err
	}
	details := fest.Details{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	f, err := fest.NewFest(details, organizer.ID(), uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err)
	}
	if err := uc.uow.Repositories().Fests().Create(ctx, f); err != nil {
		return uuid.Nil, translate(err)
	}
	return f.ID(), nil
}

func (uc *festUseCaseImpl) UpdateFest(ctx context.Context, festID uuid.UUID, req UpdateFestRequest, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		f, err := tx.Fests().FindByID(ctx, festID)
		if err != nil {
			return err
		}
		current := f.Details()
		next := fest.Details{
			Name:        patch.Coalesce(req.Name, current.Name),
			Description: patch.Coalesce(req.Description, current.Description),
			Venue:       patch.Coalesce(req.Venue, current.Venue),
			StartsAt:    patch.Coalesce(req.StartsAt, current.StartsAt),
			EndsAt:      patch.Coalesce(req.EndsAt, current.EndsAt),
		}
		if err := f.Update(next, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Fests().Save(ctx, f)
	})
	return translate(err)
}

func (uc *festUseCaseImpl) AddFestEvent(ctx context.Context, festID uuid.UUID, req CreateEventRequest, organizer user.Requester) (uuid.UUID, error) {
	if err := requireOrganizer(organizer); err != nil {
		return uuid.Nil, err
	}
	ev, err := event.NewEvent(&festID, req.details(), req.Capacity, organizer, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		if _, err := tx.Fests().FindByID(ctx, festID); err != nil {
			return err
		}
		return tx.Events().Create(ctx, ev)
	})
	if err != nil {
		return uuid.Nil, translate(err)
	}
	return ev.ID(), nil
}

func (uc *festUseCaseImpl) RemoveFestEvent(ctx context.Context, festID, eventID uuid.UUID, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		ev, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return err
		}
		if !ev.BelongsTo(festID) {
			return errs.Mark(errs.New("event is not part of this fest"), errs.ErrNotFound)
		}
		return deleteEventWithRegistrations(ctx, tx, eventID)
	})
	return translate(err)
}
