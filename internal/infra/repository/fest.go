package repository

import (
	"context"
	"errors"
	"time"

	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const festColumns = `id, name, description, venue, starts_at, ends_at, created_by, created_at, updated_at`

type FestRepository struct {
	db db.DBTX
}

func NewFestRepository(dbtx db.DBTX) *FestRepository {
	return &FestRepository{db: dbtx}
}

func (r *FestRepository) FindByID(ctx context.Context, id uuid.UUID) (*fest.Fest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+festColumns+` FROM fests WHERE id = $1`, id)
	f, err := scanFest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "fest not found")
		}
		return nil, infra.WrapRepoErr("failed to get fest", err)
	}
	return f, nil
}

func (r *FestRepository) List(ctx context.Context) ([]*fest.Fest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+festColumns+` FROM fests ORDER BY starts_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fests", err)
	}
	defer rows.Close()

	var fests []*fest.Fest
	for rows.Next() {
		f, err := scanFest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan fest", err)
		}
		fests = append(fests, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list fests", err)
	}
	return fests, nil
}

func (r *FestRepository) Create(ctx context.Context, f *fest.Fest) error {
	d := f.Details()
	_, err := r.db.Exec(ctx,
		`INSERT INTO fests (`+festColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID(), d.Name, d.Description, d.Venue, d.StartsAt, d.EndsAt, f.CreatedBy(), f.CreatedAt(), f.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create fest", err)
	}
	return nil
}

func (r *FestRepository) Save(ctx context.Context, f *fest.Fest) error {
	d := f.Details()
	tag, err := r.db.Exec(ctx,
		`UPDATE fests
		 SET name = $2, description = $3, venue = $4, starts_at = $5, ends_at = $6, updated_at = $7
		 WHERE id = $1`,
		f.ID(), d.Name, d.Description, d.Venue, d.StartsAt, d.EndsAt, f.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save fest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "fest not found")
	}
	return nil
}

func scanFest(row pgx.Row) (*fest.Fest, error) {
	var (
		id        uuid.UUID
		d         fest.Details
		createdBy string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &d.Name, &d.Description, &d.Venue, &d.StartsAt, &d.EndsAt, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	d.StartsAt = d.StartsAt.UTC()
	d.EndsAt = d.EndsAt.UTC()
	return fest.ReconstructFest(id, d, createdBy, createdAt.UTC(), updatedAt.UTC()), nil
}
