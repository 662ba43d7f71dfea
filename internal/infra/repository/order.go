package repository

import (
	"context"
	"errors"
	"time"

	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"
	"campus-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, merch_id, requester_id, requester_email, name, student_id, phone,
	selected_size, transaction_id, proof_ref, status, created_at, reviewed_at`

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) FindByID(ctx context.Context, merchID, orderID uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM merch_orders WHERE id = $1 AND merch_id = $2`,
		orderID, merchID,
	)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "order not found")
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return o, nil
}

func (r *OrderRepository) ListByMerch(ctx context.Context, merchID uuid.UUID) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM merch_orders
		 WHERE merch_id = $1
		 ORDER BY created_at DESC, id DESC`,
		merchID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	f := o.Form()
	_, err := r.db.Exec(ctx,
		`INSERT INTO merch_orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID(), o.MerchID(), o.RequesterID(), o.RequesterEmail(), f.Name, f.StudentID, f.Phone,
		f.SelectedSize, f.TransactionID, f.ProofRef, o.Status().String(), o.CreatedAt(),
		pgconv.TimePtrToPgtype(o.ReviewedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE merch_orders SET status = $3, reviewed_at = $4 WHERE id = $1 AND merch_id = $2`,
		o.ID(), o.MerchID(), o.Status().String(), pgconv.TimePtrToPgtype(o.ReviewedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id             uuid.UUID
		merchID        uuid.UUID
		requesterID    string
		requesterEmail string
		f              order.Form
		status         string
		createdAt      time.Time
		reviewedAt     pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &merchID, &requesterID, &requesterEmail, &f.Name, &f.StudentID, &f.Phone,
		&f.SelectedSize, &f.TransactionID, &f.ProofRef, &status, &createdAt, &reviewedAt,
	); err != nil {
		return nil, err
	}
	return order.ReconstructOrder(
		id, merchID, requesterID, requesterEmail, f, order.Status(status),
		createdAt.UTC(), pgconv.TimePtrFromPgtype(reviewedAt),
	), nil
}
