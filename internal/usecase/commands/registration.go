package commands

import (
	"context"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegistrationCommands interface {
	RegisterForEvent(ctx context.Context, eventID uuid.UUID, requester user.Requester, form registration.Form) error
	// RegisterForFestEvent behaves like RegisterForEvent; when festID is set the
	// event must belong to that fest.
	RegisterForFestEvent(ctx context.Context, festID *uuid.UUID, eventID uuid.UUID, requester user.Requester, form registration.Form) error
}

type registrationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRegistrationUseCase(uow shared.UnitOfWork, clk clock.Clock) RegistrationCommands {
	return &registrationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *registrationUseCaseImpl) RegisterForEvent(ctx context.Context, eventID uuid.UUID, requester user.Requester, form registration.Form) error {
	return uc.claimSeat(ctx, eventID, requester, form, nil)
}

func (uc *registrationUseCaseImpl) RegisterForFestEvent(ctx context.Context, festID *uuid.UUID, eventID uuid.UUID, requester user.Requester, form registration.Form) error {
	return uc.claimSeat(ctx, eventID, requester, form, func(e *event.Event) bool {
		return festID == nil || e.BelongsTo(*festID)
	})
}

// claimSeat atomically takes one seat of an event and writes the requester's
// registration. accept narrows which events are visible to the caller.
func (uc *registrationUseCaseImpl) claimSeat(
	ctx context.Context,
	eventID uuid.UUID,
	requester user.Requester,
	form registration.Form,
	accept func(*event.Event) bool,
) error {
	if err := requireIdentity(requester); err != nil {
		return err
	}
	reg, err := registration.NewRegistration(eventID, requester, form, uc.clock.Now())
	if err != nil {
		return translate(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		ev, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return err
		}
		if accept != nil && !accept(ev) {
			return errs.Mark(errs.New("event is not part of this fest"), errs.ErrNotFound)
		}

		_, err = tx.Registrations().Find(ctx, eventID, requester.ID())
		switch {
		case err == nil:
			return errs.ErrAlreadyRegistered
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := ev.ClaimSeat(reg.RegisteredAt()); err != nil {
			return err
		}

		if err := tx.Events().Save(ctx, ev); err != nil {
			return err
		}
		if err := tx.Registrations().Create(ctx, reg); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyRegistered)
			}
			return err
		}
		return nil
	})
	return translate(err)
}
