package commands

import (
	"context"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/patch"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateMerchItemRequest struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Sizes       []merch.SizeSpec
}

// UpdateMerchItemRequest never touches the size chart; stock only moves through orders.
type UpdateMerchItemRequest struct {
	Name        *string
	Description *string
	PriceCents  *int64
	ImageURL    *string
}

type MerchCommands interface {
	CreateMerchItem(ctx context.Context, req CreateMerchItemRequest, organizer user.Requester) (uuid.UUID, error)
	UpdateMerchItem(ctx context.Context, merchID uuid.UUID, req UpdateMerchItemRequest, organizer user.Requester) error
	RemoveMerchItem(ctx context.Context, merchID uuid.UUID, organizer user.Requester) error
}

type merchUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMerchUseCase(uow shared.UnitOfWork, clk clock.Clock) MerchCommands {
	return &merchUseCaseImpl{uow: uow, clock: clk}
}

func (uc *merchUseCaseImpl) CreateMerchItem(ctx context.Context, req CreateMerchItemRequest, organizer user.Requester) (uuid.UUID, error) {
	if err := requireOrganizer(organizer); err != nil {
		return uuid.Nil, err
	}
	details := merch.Details{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	}
	item, err := merch.NewItem(details, req.Sizes, organizer, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err)
	}
	if err := uc.uow.Repositories().Merch().Create(ctx, item); err != nil {
		return uuid.Nil, translate(err)
	}
	return item.ID(), nil
}

func (uc *merchUseCaseImpl) UpdateMerchItem(ctx context.Context, merchID uuid.UUID, req UpdateMerchItemRequest, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	// Runs in a transaction because Save rewrites the buckets it read.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Repositories) error {
		item, err := tx.Merch().FindByID(ctx, merchID)
		if err != nil {
			return err
		}
		current := item.Details()
		next := merch.Details{
			Name:        patch.Coalesce(req.Name, current.Name),
			Description: patch.Coalesce(req.Description, current.Description),
			PriceCents:  patch.Coalesce(req.PriceCents, current.PriceCents),
			ImageURL:    patch.Coalesce(req.ImageURL, current.ImageURL),
		}
		if err := item.UpdateDetails(next, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Merch().Save(ctx, item)
	})
	return translate(err)
}

func (uc *merchUseCaseImpl) RemoveMerchItem(ctx context.Context, merchID uuid.UUID, organizer user.Requester) error {
	if err := requireOrganizer(organizer); err != nil {
		return err
	}
	return translate(uc.uow.Repositories().Merch().Delete(ctx, merchID))
}
