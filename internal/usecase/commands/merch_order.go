package commands

import (
	"context"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	// PlaceOrder takes one unit of the selected size and records a pending order.
	PlaceOrder(ctx context.Context, merchID uuid.UUID, requester user.Requester, form order.Form) (uuid.UUID, error)
	// SetOrderStatus approves or rejects a pending order. Rejection puts the unit back.
	SetOrderStatus(ctx context.Context, merchID, orderID uuid.UUID, status string) error
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{uow: uow, clock: clk}
}

func (uc *orderUseCaseImpl) PlaceOrder(ctx context.Context, merchID uuid.UUID, requester user.Requester, form order.Form) (uuid.UUID, error) {
	if err := requireIdentity(requester); err != nil {
		return uuid.Nil, err
	}
	ord, err := order.NewOrder(merchID, requester, form, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		item, err := tx.Merch().FindByID(ctx, merchID)
		if err != nil {
			return err
		}
		if err := takeUnit(item, ord); err != nil {
			return err
		}
		if err := tx.Merch().Save(ctx, item); err != nil {
			return err
		}
		return tx.Orders().Create(ctx, ord)
	})
	if err != nil {
		return uuid.Nil, translate(err)
	}
	return ord.ID(), nil
}

func (uc *orderUseCaseImpl) SetOrderStatus(ctx context.Context, merchID, orderID uuid.UUID, status string) error {
	decision, err := order.ParseDecision(status)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidStatus)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		item, err := tx.Merch().FindByID(ctx, merchID)
		if err != nil {
			return err
		}
		ord, err := tx.Orders().FindByID(ctx, merchID, orderID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := ord.Decide(decision, now); err != nil {
			return err
		}
		if ord.ReturnsStock() {
			if err := returnUnit(item, ord); err != nil {
				return err
			}
			if err := tx.Merch().Save(ctx, item); err != nil {
				return err
			}
		}
		return tx.Orders().Save(ctx, ord)
	})
	return translate(err)
}

func takeUnit(item *merch.Item, ord *order.Order) error {
	return item.TakeUnit(ord.Form().SelectedSize, ord.CreatedAt())
}

func returnUnit(item *merch.Item, ord *order.Order) error {
	return item.ReturnUnit(ord.Form().SelectedSize, *ord.ReviewedAt())
}
