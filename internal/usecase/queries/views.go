package queries

import (
	"time"

	"github.com/google/uuid"
)

type EventView struct {
	ID              uuid.UUID  `json:"id"`
	FestID          *uuid.UUID `json:"fest_id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Venue           string     `json:"venue"`
	StartsAt        time.Time  `json:"starts_at"`
	Capacity        int        `json:"capacity"`
	RegisteredCount int        `json:"registered_count"`
	SeatsLeft       int        `json:"seats_left"`
	OrganizerID     string     `json:"organizer_id"`
	OrganizerEmail  string     `json:"organizer_email"`
	IsPublished     bool       `json:"is_published"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type FestView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegistrationView struct {
	EventID      uuid.UUID `json:"event_id"`
	RequesterID  string    `json:"requester_id"`
	Name         string    `json:"name"`
	StudentID    string    `json:"student_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

type SizeView struct {
	Size      string `json:"size"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

type MerchView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	PriceCents     int64      `json:"price_cents"`
	ImageURL       string     `json:"image_url"`
	Sizes          []SizeView `json:"sizes"`
	Stock          int        `json:"stock"`
	CreatedBy      string     `json:"created_by"`
	CreatedByEmail string     `json:"created_by_email"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type OrderView struct {
	ID             uuid.UUID  `json:"id"`
	MerchID        uuid.UUID  `json:"merch_id"`
	RequesterID    string     `json:"requester_id"`
	RequesterEmail string     `json:"requester_email"`
	Name           string     `json:"name"`
	StudentID      string     `json:"student_id"`
	Phone          string     `json:"phone"`
	SelectedSize   string     `json:"selected_size"`
	TransactionID  string     `json:"transaction_id"`
	ProofRef       string     `json:"proof_ref"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}
