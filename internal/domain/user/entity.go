package user

import "strings"

// Requester is the caller identity handed to every reservation call.
// The id is opaque and owned by the external identity provider.
type Requester struct {
	id    string
	email Email
	role  Role
}

func NewRequester(id string, email Email, role Role) (Requester, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Requester{}, ErrMissingRequesterID
	}
	if !role.IsValid() {
		return Requester{}, ErrInvalidRole
	}
	return Requester{id: id, email: email, role: role}, nil
}

// Anonymous is the zero Requester; reservation commands reject it.
func Anonymous() Requester { return Requester{} }

func (r Requester) ID() string        { return r.id }
func (r Requester) Email() Email      { return r.email }
func (r Requester) Role() Role        { return r.role }
func (r Requester) IsAnonymous() bool { return r.id == "" }
