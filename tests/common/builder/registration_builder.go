//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegistrationBuilder struct {
	EventID   uuid.UUID
	Requester user.Requester
	Name      string
	StudentID string
	Now       time.Time
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		EventID:   uuid.New(),
		Requester: NewRequesterBuilder().MustBuild(),
		Name:      "Asha Verma",
		StudentID: "CS2024-117",
		Now:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (r *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(r)
	return r
}

func (r *RegistrationBuilder) WithForm(name, studentID string) *RegistrationBuilder {
	r.Name = name
	r.StudentID = studentID
	return r
}

// Build methods
func (r *RegistrationBuilder) BuildDomain() (*registration.Registration, error) {
	return registration.NewRegistration(r.EventID, r.Requester, r.BuildForm(), r.Now)
}

func (r *RegistrationBuilder) BuildForm() registration.Form {
	return registration.Form{Name: r.Name, StudentID: r.StudentID}
}

func (r *RegistrationBuilder) BuildRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Name: r.Name, StudentID: r.StudentID}
}

func (r *RegistrationBuilder) BuildView() *queries.RegistrationView {
	return &queries.RegistrationView{
		EventID:      r.EventID,
		RequesterID:  r.Requester.ID(),
		Name:         r.Name,
		StudentID:    r.StudentID,
		Email:        r.Requester.Email().Value(),
		RegisteredAt: r.Now,
	}
}
