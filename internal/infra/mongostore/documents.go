package mongostore

import (
	"time"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"

	"github.com/google/uuid"
)

// Identifiers are stored as their canonical string form.

type eventDoc struct {
	ID              string    `bson:"_id"`
	FestID          *string   `bson:"fest_id,omitempty"`
	Title           string    `bson:"title"`
	Description     string    `bson:"description"`
	Venue           string    `bson:"venue"`
	StartsAt        time.Time `bson:"starts_at"`
	Capacity        int       `bson:"capacity"`
	RegisteredCount int       `bson:"registered_count"`
	OrganizerID     string    `bson:"organizer_id"`
	OrganizerEmail  string    `bson:"organizer_email"`
	IsPublished     bool      `bson:"is_published"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func toEventDoc(e *event.Event) eventDoc {
	d := e.Details()
	doc := eventDoc{
		ID:              e.ID().String(),
		Title:           d.Title,
		Description:     d.Description,
		Venue:           d.Venue,
		StartsAt:        d.StartsAt,
		Capacity:        e.Capacity(),
		RegisteredCount: e.RegisteredCount(),
		OrganizerID:     e.OrganizerID(),
		OrganizerEmail:  e.OrganizerEmail(),
		IsPublished:     e.IsPublished(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
	if id := e.FestID(); id != nil {
		s := id.String()
		doc.FestID = &s
	}
	return doc
}

func (d eventDoc) toDomain() (*event.Event, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	var festID *uuid.UUID
	if d.FestID != nil {
		fid, err := uuid.Parse(*d.FestID)
		if err != nil {
			return nil, err
		}
		festID = &fid
	}
	details := event.Details{
		Title:       d.Title,
		Description: d.Description,
		Venue:       d.Venue,
		StartsAt:    d.StartsAt.UTC(),
	}
	return event.ReconstructEvent(
		id, festID, details, d.Capacity, d.RegisteredCount,
		d.OrganizerID, d.OrganizerEmail, d.IsPublished, d.CreatedAt.UTC(), d.UpdatedAt.UTC(),
	)
}

type festDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Venue       string    `bson:"venue"`
	StartsAt    time.Time `bson:"starts_at"`
	EndsAt      time.Time `bson:"ends_at"`
	CreatedBy   string    `bson:"created_by"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toFestDoc(f *fest.Fest) festDoc {
	d := f.Details()
	return festDoc{
		ID:          f.ID().String(),
		Name:        d.Name,
		Description: d.Description,
		Venue:       d.Venue,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		CreatedBy:   f.CreatedBy(),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

func (d festDoc) toDomain() (*fest.Fest, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	details := fest.Details{
		Name:        d.Name,
		Description: d.Description,
		Venue:       d.Venue,
		StartsAt:    d.StartsAt.UTC(),
		EndsAt:      d.EndsAt.UTC(),
	}
	return fest.ReconstructFest(id, details, d.CreatedBy, d.CreatedAt.UTC(), d.UpdatedAt.UTC()), nil
}

type registrationDoc struct {
	ID           string    `bson:"_id"`
	EventID      string    `bson:"event_id"`
	RequesterID  string    `bson:"requester_id"`
	Name         string    `bson:"name"`
	StudentID    string    `bson:"student_id"`
	Email        string    `bson:"email"`
	RegisteredAt time.Time `bson:"registered_at"`
}

// registrationKey makes the document id itself enforce one registration per
// requester and event.
func registrationKey(eventID uuid.UUID, requesterID string) string {
	return eventID.String() + "/" + requesterID
}

func toRegistrationDoc(r *registration.Registration) registrationDoc {
	return registrationDoc{
		ID:           registrationKey(r.EventID(), r.RequesterID()),
		EventID:      r.EventID().String(),
		RequesterID:  r.RequesterID(),
		Name:         r.Name(),
		StudentID:    r.StudentID(),
		Email:        r.Email(),
		RegisteredAt: r.RegisteredAt(),
	}
}

func (d registrationDoc) toDomain() (*registration.Registration, error) {
	eventID, err := uuid.Parse(d.EventID)
	if err != nil {
		return nil, err
	}
	form := registration.Form{Name: d.Name, StudentID: d.StudentID}
	return registration.ReconstructRegistration(eventID, d.RequesterID, form, d.Email, d.RegisteredAt.UTC()), nil
}

type sizeDoc struct {
	Capacity  int `bson:"capacity"`
	Available int `bson:"available"`
}

type merchDoc struct {
	ID             string             `bson:"_id"`
	Name           string             `bson:"name"`
	Description    string             `bson:"description"`
	PriceCents     int64              `bson:"price_cents"`
	ImageURL       string             `bson:"image_url"`
	Sizes          map[string]sizeDoc `bson:"sizes"`
	SizeOrder      []string           `bson:"size_order"`
	Stock          int                `bson:"stock"`
	CreatedBy      string             `bson:"created_by"`
	CreatedByEmail string             `bson:"created_by_email"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func toMerchDoc(item *merch.Item) merchDoc {
	d := item.Details()
	buckets := item.Buckets()
	doc := merchDoc{
		ID:             item.ID().String(),
		Name:           d.Name,
		Description:    d.Description,
		PriceCents:     d.PriceCents,
		ImageURL:       d.ImageURL,
		Sizes:          make(map[string]sizeDoc, len(buckets)),
		SizeOrder:      make([]string, 0, len(buckets)),
		Stock:          item.Stock(),
		CreatedBy:      item.CreatedBy(),
		CreatedByEmail: item.CreatedByEmail(),
		CreatedAt:      item.CreatedAt(),
		UpdatedAt:      item.UpdatedAt(),
	}
	for _, b := range buckets {
		doc.Sizes[b.Size] = sizeDoc{Capacity: b.Capacity, Available: b.Available}
		doc.SizeOrder = append(doc.SizeOrder, b.Size)
	}
	return doc
}

func (d merchDoc) toDomain() (*merch.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	buckets := make([]merch.SizeBucket, 0, len(d.SizeOrder))
	for _, size := range d.SizeOrder {
		s := d.Sizes[size]
		buckets = append(buckets, merch.SizeBucket{Size: size, Capacity: s.Capacity, Available: s.Available})
	}
	details := merch.Details{
		Name:        d.Name,
		Description: d.Description,
		PriceCents:  d.PriceCents,
		ImageURL:    d.ImageURL,
	}
	return merch.ReconstructItem(id, details, buckets, d.Stock, d.CreatedBy, d.CreatedByEmail, d.CreatedAt.UTC(), d.UpdatedAt.UTC())
}

type orderDoc struct {
	ID             string     `bson:"_id"`
	MerchID        string     `bson:"merch_id"`
	RequesterID    string     `bson:"requester_id"`
	RequesterEmail string     `bson:"requester_email"`
	Name           string     `bson:"name"`
	StudentID      string     `bson:"student_id"`
	Phone          string     `bson:"phone"`
	SelectedSize   string     `bson:"selected_size"`
	TransactionID  string     `bson:"transaction_id"`
	ProofRef       string     `bson:"proof_ref"`
	Status         string     `bson:"status"`
	CreatedAt      time.Time  `bson:"created_at"`
	ReviewedAt     *time.Time `bson:"reviewed_at,omitempty"`
}

func toOrderDoc(o *order.Order) orderDoc {
	f := o.Form()
	return orderDoc{
		ID:             o.ID().String(),
		MerchID:        o.MerchID().String(),
		RequesterID:    o.RequesterID(),
		RequesterEmail: o.RequesterEmail(),
		Name:           f.Name,
		StudentID:      f.StudentID,
		Phone:          f.Phone,
		SelectedSize:   f.SelectedSize,
		TransactionID:  f.TransactionID,
		ProofRef:       f.ProofRef,
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
		ReviewedAt:     o.ReviewedAt(),
	}
}

func (d orderDoc) toDomain() (*order.Order, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	merchID, err := uuid.Parse(d.MerchID)
	if err != nil {
		return nil, err
	}
	form := order.Form{
		Name:          d.Name,
		StudentID:     d.StudentID,
		Phone:         d.Phone,
		SelectedSize:  d.SelectedSize,
		TransactionID: d.TransactionID,
		ProofRef:      d.ProofRef,
	}
	var reviewedAt *time.Time
	if d.ReviewedAt != nil {
		t := d.ReviewedAt.UTC()
		reviewedAt = &t
	}
	return order.ReconstructOrder(id, merchID, d.RequesterID, d.RequesterEmail, form, order.Status(d.Status), d.CreatedAt.UTC(), reviewedAt), nil
}
