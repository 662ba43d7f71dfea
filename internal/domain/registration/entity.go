// Package registration models the reservation record proving a requester
// holds one seat of an event. Its key is (event id, requester id).
package registration

import (
	"errors"
	"strings"
	"time"

	"campus-reserve/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyStudentID = errors.New("student id is required")
	ErrAnonymous      = errors.New("registration requires an identified requester")
)

// Form is what the registrant fills in.
type Form struct {
	Name      string
	StudentID string
}

func (f Form) normalize() (Form, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.StudentID = strings.TrimSpace(f.StudentID)
	if f.Name == "" {
		return Form{}, ErrEmptyName
	}
	if f.StudentID == "" {
		return Form{}, ErrEmptyStudentID
	}
	return f, nil
}

type Registration struct {
	eventID      uuid.UUID
	requesterID  string
	form         Form
	email        string
	registeredAt time.Time
}

func NewRegistration(eventID uuid.UUID, requester user.Requester, form Form, now time.Time) (*Registration, error) {
	if requester.IsAnonymous() {
		return nil, ErrAnonymous
	}
	f, err := form.normalize()
	if err != nil {
		return nil, err
	}
	return &Registration{
		eventID:      eventID,
		requesterID:  requester.ID(),
		form:         f,
		email:        requester.Email().Value(),
		registeredAt: now,
	}, nil
}

func ReconstructRegistration(eventID uuid.UUID, requesterID string, form Form, email string, registeredAt time.Time) *Registration {
	return &Registration{
		eventID:      eventID,
		requesterID:  requesterID,
		form:         form,
		email:        email,
		registeredAt: registeredAt,
	}
}

func (r *Registration) EventID() uuid.UUID      { return r.eventID }
func (r *Registration) RequesterID() string     { return r.requesterID }
func (r *Registration) Name() string            { return r.form.Name }
func (r *Registration) StudentID() string       { return r.form.StudentID }
func (r *Registration) Email() string           { return r.email }
func (r *Registration) RegisteredAt() time.Time { return r.registeredAt }
