package memstore

import (
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"

	"github.com/google/uuid"
)

// Records are stored by value so that a committed document can never be
// changed through an entity pointer held by a caller.

type eventRecord struct {
	ID              uuid.UUID
	FestID          *uuid.UUID
	Details         event.Details
	Capacity        int
	RegisteredCount int
	OrganizerID     string
	OrganizerEmail  string
	IsPublished     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toEventRecord(e *event.Event) eventRecord {
	var festID *uuid.UUID
	if e.FestID() != nil {
		id := *e.FestID()
		festID = &id
	}
	return eventRecord{
		ID:              e.ID(),
		FestID:          festID,
		Details:         e.Details(),
		Capacity:        e.Capacity(),
		RegisteredCount: e.RegisteredCount(),
		OrganizerID:     e.OrganizerID(),
		OrganizerEmail:  e.OrganizerEmail(),
		IsPublished:     e.IsPublished(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}

func (r eventRecord) toDomain() (*event.Event, error) {
	return event.ReconstructEvent(
		r.ID, r.FestID, r.Details, r.Capacity, r.RegisteredCount,
		r.OrganizerID, r.OrganizerEmail, r.IsPublished, r.CreatedAt, r.UpdatedAt,
	)
}

type festRecord struct {
	ID        uuid.UUID
	Details   fest.Details
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toFestRecord(f *fest.Fest) festRecord {
	return festRecord{
		ID:        f.ID(),
		Details:   f.Details(),
		CreatedBy: f.CreatedBy(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func (r festRecord) toDomain() *fest.Fest {
	return fest.ReconstructFest(r.ID, r.Details, r.CreatedBy, r.CreatedAt, r.UpdatedAt)
}

type registrationRecord struct {
	EventID      uuid.UUID
	RequesterID  string
	Name         string
	StudentID    string
	Email        string
	RegisteredAt time.Time
}

func registrationID(eventID uuid.UUID, requesterID string) string {
	return eventID.String() + "/" + requesterID
}

func toRegistrationRecord(r *registration.Registration) registrationRecord {
	return registrationRecord{
		EventID:      r.EventID(),
		RequesterID:  r.RequesterID(),
		Name:         r.Name(),
		StudentID:    r.StudentID(),
		Email:        r.Email(),
		RegisteredAt: r.RegisteredAt(),
	}
}

func (r registrationRecord) toDomain() *registration.Registration {
	form := registration.Form{Name: r.Name, StudentID: r.StudentID}
	return registration.ReconstructRegistration(r.EventID, r.RequesterID, form, r.Email, r.RegisteredAt)
}

type merchRecord struct {
	ID             uuid.UUID
	Details        merch.Details
	Sizes          []merch.SizeBucket
	Stock          int
	CreatedBy      string
	CreatedByEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toMerchRecord(item *merch.Item) merchRecord {
	return merchRecord{
		ID:             item.ID(),
		Details:        item.Details(),
		Sizes:          item.Buckets(),
		Stock:          item.Stock(),
		CreatedBy:      item.CreatedBy(),
		CreatedByEmail: item.CreatedByEmail(),
		CreatedAt:      item.CreatedAt(),
		UpdatedAt:      item.UpdatedAt(),
	}
}

func (r merchRecord) toDomain() (*merch.Item, error) {
	sizes := append([]merch.SizeBucket(nil), r.Sizes...)
	return merch.ReconstructItem(r.ID, r.Details, sizes, r.Stock, r.CreatedBy, r.CreatedByEmail, r.CreatedAt, r.UpdatedAt)
}

type orderRecord struct {
	ID             uuid.UUID
	MerchID        uuid.UUID
	RequesterID    string
	RequesterEmail string
	Form           order.Form
	Status         order.Status
	CreatedAt      time.Time
	ReviewedAt     *time.Time
}

func toOrderRecord(o *order.Order) orderRecord {
	var reviewedAt *time.Time
	if o.ReviewedAt() != nil {
		t := *o.ReviewedAt()
		reviewedAt = &t
	}
	return orderRecord{
		ID:             o.ID(),
		MerchID:        o.MerchID(),
		RequesterID:    o.RequesterID(),
		RequesterEmail: o.RequesterEmail(),
		Form:           o.Form(),
		Status:         o.Status(),
		CreatedAt:      o.CreatedAt(),
		ReviewedAt:     reviewedAt,
	}
}

func (r orderRecord) toDomain() *order.Order {
	return order.ReconstructOrder(r.ID, r.MerchID, r.RequesterID, r.RequesterEmail, r.Form, r.Status, r.CreatedAt, r.ReviewedAt)
}
