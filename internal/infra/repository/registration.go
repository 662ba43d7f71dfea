package repository

import (
	"context"
	"errors"
	"time"

	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const registrationColumns = `event_id, requester_id, name, student_id, email, registered_at`

type RegistrationRepository struct {
	db db.DBTX
}

func NewRegistrationRepository(dbtx db.DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: dbtx}
}

func (r *RegistrationRepository) Find(ctx context.Context, eventID uuid.UUID, requesterID string) (*registration.Registration, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1 AND requester_id = $2`,
		eventID, requesterID,
	)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "registration not found")
		}
		return nil, infra.WrapRepoErr("failed to get registration", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		 WHERE event_id = $1
		 ORDER BY registered_at, requester_id`,
		eventID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations", err)
	}
	defer rows.Close()

	var regs []*registration.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations", err)
	}
	return regs, nil
}

// Create relies on the (event_id, requester_id) primary key; a second
// registration surfaces as KindDuplicateKey.
func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (`+registrationColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		reg.EventID(), reg.RequesterID(), reg.Name(), reg.StudentID(), reg.Email(), reg.RegisteredAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create registration", err)
	}
	return nil
}

func (r *RegistrationRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE event_id = $1`, eventID); err != nil {
		return infra.WrapRepoErr("failed to delete registrations", err)
	}
	return nil
}

func scanRegistration(row pgx.Row) (*registration.Registration, error) {
	var (
		eventID      uuid.UUID
		requesterID  string
		form         registration.Form
		email        string
		registeredAt time.Time
	)
	if err := row.Scan(&eventID, &requesterID, &form.Name, &form.StudentID, &email, &registeredAt); err != nil {
		return nil, err
	}
	return registration.ReconstructRegistration(eventID, requesterID, form, email, registeredAt.UTC()), nil
}
