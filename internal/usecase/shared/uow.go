package shared

import (
	"context"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn as one atomic transaction. A store-level conflict re-runs
	// the whole of fn, so fn must not have side effects outside tx.
	// Any error returned by fn aborts the transaction without retry.
	Within(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error
	// Repositories gives non-transactional access for single-document reads and writes.
	Repositories() Repositories
}

type Repositories interface {
	Events() EventRepository
	Fests() FestRepository
	Registrations() RegistrationRepository
	Merch() MerchRepository
	Orders() OrderRepository
}

// Lookups return an infra.RepositoryError of kind NOT_FOUND when the document is absent.

type EventFilter struct {
	FestID *uuid.UUID
	// PublishedOnly hides drafts from public listings.
	PublishedOnly bool
	OrganizerID   *string
}

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	List(ctx context.Context, filter EventFilter) ([]*event.Event, error)
	Create(ctx context.Context, e *event.Event) error
	Save(ctx context.Context, e *event.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*fest.Fest, error)
	List(ctx context.Context) ([]*fest.Fest, error)
	Create(ctx context.Context, f *fest.Fest) error
	Save(ctx context.Context, f *fest.Fest) error
}

type RegistrationRepository interface {
	Find(ctx context.Context, eventID uuid.UUID, requesterID string) (*registration.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*registration.Registration, error)
	// Create fails with DUPLICATE_KEY when the requester already holds a registration.
	Create(ctx context.Context, r *registration.Registration) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}

type MerchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*merch.Item, error)
	List(ctx context.Context) ([]*merch.Item, error)
	Create(ctx context.Context, item *merch.Item) error
	// Save persists details, every size bucket and the aggregate stock.
	Save(ctx context.Context, item *merch.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, merchID, orderID uuid.UUID) (*order.Order, error)
	ListByMerch(ctx context.Context, merchID uuid.UUID) ([]*order.Order, error)
	Create(ctx context.Context, o *order.Order) error
	Save(ctx context.Context, o *order.Order) error
}
