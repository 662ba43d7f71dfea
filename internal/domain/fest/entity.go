package fest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("fest name is required")
	ErrInvalidPeriod = errors.New("fest must end after it starts")
)

type Details struct {
	Name        string
	Description string
	Venue       string
	StartsAt    time.Time
	EndsAt      time.Time
}

func (d Details) normalize() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Venue = strings.TrimSpace(d.Venue)
	if d.Name == "" {
		return Details{}, ErrEmptyName
	}
	if !d.StartsAt.IsZero() && !d.EndsAt.IsZero() && d.EndsAt.Before(d.StartsAt) {
		return Details{}, ErrInvalidPeriod
	}
	return d, nil
}

// Fest groups events; it carries no capacity of its own.
type Fest struct {
	id        uuid.UUID
	details   Details
	createdBy string
	createdAt time.Time
	updatedAt time.Time
}

func NewFest(details Details, createdBy string, now time.Time) (*Fest, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Fest{
		id:        uuid.New(),
		details:   d,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFest(id uuid.UUID, details Details, createdBy string, createdAt, updatedAt time.Time) *Fest {
	return &Fest{
		id:        id,
		details:   details,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Fest) Update(details Details, now time.Time) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	f.details = d
	f.updatedAt = now
	return nil
}

func (f *Fest) ID() uuid.UUID        { return f.id }
func (f *Fest) Details() Details     { return f.details }
func (f *Fest) CreatedBy() string    { return f.createdBy }
func (f *Fest) CreatedAt() time.Time { return f.createdAt }
func (f *Fest) UpdatedAt() time.Time { return f.updatedAt }
