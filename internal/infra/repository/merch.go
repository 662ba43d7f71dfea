package repository

import (
	"context"
	"errors"
	"time"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const merchColumns = `id, name, description, price_cents, image_url, stock,
	created_by, created_by_email, created_at, updated_at`

// MerchRepository keeps the item row and its merch_sizes rows in step; the
// aggregate stock column always equals the sum of available units.
type MerchRepository struct {
	db db.DBTX
}

func NewMerchRepository(dbtx db.DBTX) *MerchRepository {
	return &MerchRepository{db: dbtx}
}

type merchRow struct {
	id             uuid.UUID
	details        merch.Details
	stock          int
	createdBy      string
	createdByEmail string
	createdAt      time.Time
	updatedAt      time.Time
}

func (row merchRow) toDomain(buckets []merch.SizeBucket) (*merch.Item, error) {
	return merch.ReconstructItem(
		row.id, row.details, buckets, row.stock,
		row.createdBy, row.createdByEmail, row.createdAt.UTC(), row.updatedAt.UTC(),
	)
}

func (r *MerchRepository) FindByID(ctx context.Context, id uuid.UUID) (*merch.Item, error) {
	row, err := scanMerchRow(r.db.QueryRow(ctx, `SELECT `+merchColumns+` FROM merch_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "merch item not found")
		}
		return nil, infra.WrapRepoErr("failed to get merch item", err)
	}

	sizes, err := r.sizes(ctx, `WHERE merch_id = $1`, id)
	if err != nil {
		return nil, err
	}

	item, err := row.toDomain(sizes[id])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load merch item", err)
	}
	return item, nil
}

func (r *MerchRepository) List(ctx context.Context) ([]*merch.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+merchColumns+` FROM merch_items ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list merch items", err)
	}
	defer rows.Close()

	var items []merchRow
	for rows.Next() {
		row, err := scanMerchRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan merch item", err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list merch items", err)
	}

	sizes, err := r.sizes(ctx, "")
	if err != nil {
		return nil, err
	}

	out := make([]*merch.Item, 0, len(items))
	for _, row := range items {
		item, err := row.toDomain(sizes[row.id])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load merch item", err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MerchRepository) Create(ctx context.Context, item *merch.Item) error {
	d := item.Details()
	_, err := r.db.Exec(ctx,
		`INSERT INTO merch_items (`+merchColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID(), d.Name, d.Description, d.PriceCents, d.ImageURL, item.Stock(),
		item.CreatedBy(), item.CreatedByEmail(), item.CreatedAt(), item.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create merch item", err)
	}

	for pos, b := range item.Buckets() {
		_, err := r.db.Exec(ctx,
			`INSERT INTO merch_sizes (merch_id, size, position, capacity, available) VALUES ($1, $2, $3, $4, $5)`,
			item.ID(), b.Size, pos, b.Capacity, b.Available,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create merch size", err)
		}
	}
	return nil
}

func (r *MerchRepository) Save(ctx context.Context, item *merch.Item) error {
	d := item.Details()
	tag, err := r.db.Exec(ctx,
		`UPDATE merch_items
		 SET name = $2, description = $3, price_cents = $4, image_url = $5, stock = $6, updated_at = $7
		 WHERE id = $1`,
		item.ID(), d.Name, d.Description, d.PriceCents, d.ImageURL, item.Stock(), item.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save merch item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "merch item not found")
	}

	for _, b := range item.Buckets() {
		_, err := r.db.Exec(ctx,
			`UPDATE merch_sizes SET capacity = $3, available = $4 WHERE merch_id = $1 AND size = $2`,
			item.ID(), b.Size, b.Capacity, b.Available,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to save merch size", err)
		}
	}
	return nil
}

// Delete removes the item; its sizes and orders go with it (ON DELETE CASCADE).
func (r *MerchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM merch_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete merch item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "merch item not found")
	}
	return nil
}

func (r *MerchRepository) sizes(ctx context.Context, where string, args ...any) (map[uuid.UUID][]merch.SizeBucket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT merch_id, size, capacity, available FROM merch_sizes `+where+` ORDER BY merch_id, position`,
		args...,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list merch sizes", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]merch.SizeBucket)
	for rows.Next() {
		var (
			merchID uuid.UUID
			b       merch.SizeBucket
		)
		if err := rows.Scan(&merchID, &b.Size, &b.Capacity, &b.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan merch size", err)
		}
		out[merchID] = append(out[merchID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list merch sizes", err)
	}
	return out, nil
}

func scanMerchRow(row pgx.Row) (merchRow, error) {
	var m merchRow
	err := row.Scan(
		&m.id, &m.details.Name, &m.details.Description, &m.details.PriceCents, &m.details.ImageURL, &m.stock,
		&m.createdBy, &m.createdByEmail, &m.createdAt, &m.updatedAt,
	)
	return m, err
}
