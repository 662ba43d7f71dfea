package request

import (
	"time"

	"campus-reserve/internal/usecase/commands"
)

type CreateFestRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=5000"`
	Venue       string    `json:"venue" binding:"max=200"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

func (r CreateFestRequest) ToCommand() commands.CreateFestRequest {
	return commands.CreateFestRequest{
		Name:        r.Name,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
}

type UpdateFestRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	Venue       *string    `json:"venue" binding:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (r UpdateFestRequest) ToCommand() commands.UpdateFestRequest {
	return commands.UpdateFestRequest{
		Name:        r.Name,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
}
