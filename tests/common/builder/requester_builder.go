//go:build unit || e2e

package builder

import (
	"campus-reserve/internal/domain/user"
)

type RequesterBuilder struct {
	ID    string
	Email string
	Role  string
}

func NewRequesterBuilder() *RequesterBuilder {
	return &RequesterBuilder{
		ID:    "student-001",
		Email: "student@campus.example.edu",
		Role:  user.RoleStudent.String(),
	}
}

func (r *RequesterBuilder) With(mutate func(*RequesterBuilder)) *RequesterBuilder {
	mutate(r)
	return r
}

func (r *RequesterBuilder) WithID(id string) *RequesterBuilder {
	r.ID = id
	return r
}

func (r *RequesterBuilder) WithEmail(email string) *RequesterBuilder {
	r.Email = email
	return r
}

func (r *RequesterBuilder) WithRole(role string) *RequesterBuilder {
	r.Role = role
	return r
}

func (r *RequesterBuilder) AsOrganizer() *RequesterBuilder {
	r.ID = "organizer-001"
	r.Email = "organizer@campus.example.edu"
	r.Role = user.RoleOrganizer.String()
	return r
}

func (r *RequesterBuilder) AsAdmin() *RequesterBuilder {
	r.ID = "admin-001"
	r.Email = "admin@campus.example.edu"
	r.Role = user.RoleAdmin.String()
	return r
}

// Build methods
func (r *RequesterBuilder) BuildDomain() (user.Requester, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Requester{}, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return user.Requester{}, err
	}
	return user.NewRequester(r.ID, email, role)
}

// MustBuild panics on invalid input; use it only with known-good values.
func (r *RequesterBuilder) MustBuild() user.Requester {
	requester, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return requester
}
