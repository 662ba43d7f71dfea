package order

import (
	"errors"
	"strings"
	"time"

	"campus-reserve/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyStudentID     = errors.New("student id is required")
	ErrEmptySize          = errors.New("selected size is required")
	ErrEmptyTransactionID = errors.New("transaction id is required")
	ErrAnonymous          = errors.New("order requires an identified requester")
	ErrInvalidDecision    = errors.New("order can only be approved or rejected")
	ErrAlreadyProcessed   = errors.New("order has already been processed")
)

type Form struct {
	Name          string
	StudentID     string
	Phone         string
	SelectedSize  string
	TransactionID string
	ProofRef      string
}

func (f Form) normalize() (Form, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.StudentID = strings.TrimSpace(f.StudentID)
	f.Phone = strings.TrimSpace(f.Phone)
	f.SelectedSize = strings.TrimSpace(f.SelectedSize)
	f.TransactionID = strings.TrimSpace(f.TransactionID)
	f.ProofRef = strings.TrimSpace(f.ProofRef)
	switch {
	case f.Name == "":
		return Form{}, ErrEmptyName
	case f.StudentID == "":
		return Form{}, ErrEmptyStudentID
	case f.SelectedSize == "":
		return Form{}, ErrEmptySize
	case f.TransactionID == "":
		return Form{}, ErrEmptyTransactionID
	}
	return f, nil
}

type Order struct {
	id             uuid.UUID
	merchID        uuid.UUID
	requesterID    string
	requesterEmail string
	form           Form
	status         Status
	createdAt      time.Time
	reviewedAt     *time.Time
}

func NewOrder(merchID uuid.UUID, requester user.Requester, form Form, now time.Time) (*Order, error) {
	if requester.IsAnonymous() {
		return nil, ErrAnonymous
	}
	f, err := form.normalize()
	if err != nil {
		return nil, err
	}
	return &Order{
		id:             uuid.New(),
		merchID:        merchID,
		requesterID:    requester.ID(),
		requesterEmail: requester.Email().Value(),
		form:           f,
		status:         StatusPending,
		createdAt:      now,
	}, nil
}

func ReconstructOrder(
	id, merchID uuid.UUID,
	requesterID, requesterEmail string,
	form Form,
	status Status,
	createdAt time.Time,
	reviewedAt *time.Time,
) *Order {
	return &Order{
		id:             id,
		merchID:        merchID,
		requesterID:    requesterID,
		requesterEmail: requesterEmail,
		form:           form,
		status:         status,
		createdAt:      createdAt,
		reviewedAt:     reviewedAt,
	}
}

// Decide moves a pending order to a terminal status. It is one-shot.
func (o *Order) Decide(to Status, now time.Time) error {
	if !to.IsTerminal() {
		return ErrInvalidDecision
	}
	if o.status != StatusPending {
		return ErrAlreadyProcessed
	}
	o.status = to
	o.reviewedAt = &now
	return nil
}

// ReturnsStock reports whether the order's unit has to go back on the shelf.
func (o *Order) ReturnsStock() bool {
	return o.status == StatusRejected
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) MerchID() uuid.UUID     { return o.merchID }
func (o *Order) RequesterID() string    { return o.requesterID }
func (o *Order) RequesterEmail() string { return o.requesterEmail }
func (o *Order) Form() Form             { return o.form }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) ReviewedAt() *time.Time { return o.reviewedAt }
