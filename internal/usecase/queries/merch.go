package queries

import (
	"bytes"
	"context"
	"sort"

	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderFilters struct {
	Status string
}

type MerchQueries interface {
	ListMerch(ctx context.Context) ([]*MerchView, error)
	GetMerch(ctx context.Context, id uuid.UUID) (*MerchView, error)
	// ListOrders pages newest first using a (created_at, id) keyset cursor.
	ListOrders(ctx context.Context, merchID uuid.UUID, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	GetOrder(ctx context.Context, merchID, orderID uuid.UUID) (*OrderView, error)
}

type merchQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewMerchQueries(uow shared.UnitOfWork) MerchQueries {
	return &merchQueriesImpl{uow: uow}
}

func (q *merchQueriesImpl) ListMerch(ctx context.Context) ([]*MerchView, error) {
	items, err := q.uow.Repositories().Merch().List(ctx)
	if err != nil {
		return nil, lookupErr(err)
	}
	return mapAll(items, toMerchView)
}

func (q *merchQueriesImpl) GetMerch(ctx context.Context, id uuid.UUID) (*MerchView, error) {
	item, err := q.uow.Repositories().Merch().FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return toMerchView(item)
}

func (q *merchQueriesImpl) GetOrder(ctx context.Context, merchID, orderID uuid.UUID) (*OrderView, error) {
	o, err := q.uow.Repositories().Orders().FindByID(ctx, merchID, orderID)
	if err != nil {
		return nil, lookupErr(err)
	}
	return toOrderView(o)
}

func (q *merchQueriesImpl) ListOrders(ctx context.Context, merchID uuid.UUID, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if filters.Status != "" && !order.Status(filters.Status).IsValid() {
		return nil, nil, errs.Mark(errs.New("unknown order status filter"), errs.ErrInvalidStatus)
	}
	limit = ValidateLimit(limit)

	repos := q.uow.Repositories()
	if _, err := repos.Merch().FindByID(ctx, merchID); err != nil {
		return nil, nil, lookupErr(err)
	}
	orders, err := repos.Orders().ListByMerch(ctx, merchID)
	if err != nil {
		return nil, nil, lookupErr(err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return newerThan(orders[i], orders[j].CreatedAt().UnixMicro(), orders[j].ID())
	})

	rows := orders[:0:0]
	for _, o := range orders {
		if filters.Status != "" && o.Status().String() != filters.Status {
			continue
		}
		rows = append(rows, o)
	}

	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		start := len(rows)
		for i, o := range rows {
			if o.ID() != lastID && !newerThan(o, lastCreatedAt.UnixMicro(), lastID) {
				start = i
				break
			}
		}
		rows = rows[start:]
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		rows = rows[:limit]
	}

	views, err := mapAll(rows, toOrderView)
	if err != nil {
		return nil, nil, err
	}
	return views, next, nil
}

// newerThan orders by created_at desc then id desc, at microsecond precision.
func newerThan(o *order.Order, micros int64, id uuid.UUID) bool {
	created := o.CreatedAt().UnixMicro()
	if created != micros {
		return created > micros
	}
	oid := o.ID()
	return bytes.Compare(oid[:], id[:]) > 0
}
