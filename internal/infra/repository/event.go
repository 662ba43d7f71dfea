package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"
	"campus-reserve/internal/pkg/pgconv"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const eventColumns = `id, fest_id, title, description, venue, starts_at, capacity,
	registered_count, organizer_id, organizer_email, is_published, created_at, updated_at`

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "event not found")
		}
		return nil, infra.WrapRepoErr("failed to get event", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter shared.EventFilter) ([]*event.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.FestID != nil {
		args = append(args, *filter.FestID)
		conds = append(conds, fmt.Sprintf("fest_id = $%d", len(args)))
	}
	if filter.OrganizerID != nil {
		args = append(args, *filter.OrganizerID)
		conds = append(conds, fmt.Sprintf("organizer_id = $%d", len(args)))
	}
	if filter.PublishedOnly {
		conds = append(conds, "is_published")
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY starts_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	d := e.Details()
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.ID(), pgconv.UUIDPtrToPgtype(e.FestID()), d.Title, d.Description, d.Venue, d.StartsAt,
		e.Capacity(), e.RegisteredCount(), e.OrganizerID(), e.OrganizerEmail(), e.IsPublished(),
		e.CreatedAt(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) Save(ctx context.Context, e *event.Event) error {
	d := e.Details()
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, venue = $4, starts_at = $5, capacity = $6,
		     registered_count = $7, is_published = $8, updated_at = $9
		 WHERE id = $1`,
		e.ID(), d.Title, d.Description, d.Venue, d.StartsAt, e.Capacity(),
		e.RegisteredCount(), e.IsPublished(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	return nil
}

func scanEvent(row pgx.Row) (*event.Event, error) {
	var (
		id              uuid.UUID
		festID          pgtype.UUID
		d               event.Details
		capacity        int
		registeredCount int
		organizerID     string
		organizerEmail  string
		isPublished     bool
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(
		&id, &festID, &d.Title, &d.Description, &d.Venue, &d.StartsAt, &capacity,
		&registeredCount, &organizerID, &organizerEmail, &isPublished, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	d.StartsAt = d.StartsAt.UTC()
	return event.ReconstructEvent(
		id, pgconv.UUIDPtrFromPgtype(festID), d, capacity, registeredCount,
		organizerID, organizerEmail, isPublished, createdAt.UTC(), updatedAt.UTC(),
	)
}
