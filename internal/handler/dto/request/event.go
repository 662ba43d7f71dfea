package request

import (
	"time"

	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/usecase/commands"
)

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=5000"`
	Venue       string    `json:"venue" binding:"max=200"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
}

func (r CreateEventRequest) ToCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
		Capacity:    r.Capacity,
	}
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	Venue       *string    `json:"venue" binding:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
	IsPublished *bool      `json:"is_published"`
}

func (r UpdateEventRequest) ToCommand() commands.UpdateEventRequest {
	return commands.UpdateEventRequest{
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
		Capacity:    r.Capacity,
		IsPublished: r.IsPublished,
	}
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StudentID string `json:"student_id" binding:"required,max=50"`
}

func (r RegisterRequest) ToDomain() registration.Form {
	return registration.Form{Name: r.Name, StudentID: r.StudentID}
}
