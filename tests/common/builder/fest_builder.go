//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/fest"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type FestBuilder struct {
	Name        string
	Description string
	Venue       string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedBy   string
	Now         time.Time
}

func NewFestBuilder() *FestBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &FestBuilder{
		Name:        "Spring Tech Fest",
		Description: "Three days of talks, hackathons and games",
		Venue:       "North Campus",
		StartsAt:    now.Add(30 * 24 * time.Hour),
		EndsAt:      now.Add(33 * 24 * time.Hour),
		CreatedBy:   "organizer-001",
		Now:         now,
	}
}

func (f *FestBuilder) With(mutate func(*FestBuilder)) *FestBuilder {
	mutate(f)
	return f
}

func (f *FestBuilder) WithName(name string) *FestBuilder {
	f.Name = name
	return f
}

func (f *FestBuilder) WithPeriod(startsAt, endsAt time.Time) *FestBuilder {
	f.StartsAt = startsAt
	f.EndsAt = endsAt
	return f
}

// Build methods
func (f *FestBuilder) BuildDomain() (*fest.Fest, error) {
	return fest.NewFest(fest.Details{
		Name:        f.Name,
		Description: f.Description,
		Venue:       f.Venue,
		StartsAt:    f.StartsAt,
		EndsAt:      f.EndsAt,
	}, f.CreatedBy, f.Now)
}

func (f *FestBuilder) BuildCommand() commands.CreateFestRequest {
	return commands.CreateFestRequest{
		Name:        f.Name,
		Description: f.Description,
		Venue:       f.Venue,
		StartsAt:    f.StartsAt,
		EndsAt:      f.EndsAt,
	}
}

func (f *FestBuilder) BuildCreateRequestDTO() reqdto.CreateFestRequest {
	return reqdto.CreateFestRequest{
		Name:        f.Name,
		Description: f.Description,
		Venue:       f.Venue,
		StartsAt:    f.StartsAt,
		EndsAt:      f.EndsAt,
	}
}

func (f *FestBuilder) BuildView() *queries.FestView {
	return &queries.FestView{
		ID:          uuid.New(),
		Name:        f.Name,
		Description: f.Description,
		Venue:       f.Venue,
		StartsAt:    f.StartsAt,
		EndsAt:      f.EndsAt,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.Now,
		UpdatedAt:   f.Now,
	}
}
