//go:build unit

package user_test

import (
	"testing"

	"campus-reserve/internal/domain/user"
	"campus-reserve/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Requester{}, user.Email{}),
}

type testCase struct {
	name   string
	mutate func(*builder.RequesterBuilder)
	errIs  error
}

func TestRequester(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRequesterBuilder().BuildDomain()
		require.NoError(t, err)

		email, _ := user.NewEmail("student@campus.example.edu")
		expected, _ := user.NewRequester("student-001", email, user.RoleStudent)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Requester mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, actual.IsAnonymous())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.RequesterBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.RequesterBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "invalid format",
				mutate: func(b *builder.RequesterBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.RequesterBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "student role",
				mutate: func(b *builder.RequesterBuilder) { b.WithRole("student") },
			},
			{
				name:   "organizer role",
				mutate: func(b *builder.RequesterBuilder) { b.WithRole("organizer") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.RequesterBuilder) { b.WithRole("admin") },
			},
			{
				name:   "invalid role",
				mutate: func(b *builder.RequesterBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.RequesterBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "opaque provider id",
				mutate: func(b *builder.RequesterBuilder) { b.WithID("auth0|5f7c8ec7c33c6c004bbafe82") },
			},
			{
				name:   "blank id",
				mutate: func(b *builder.RequesterBuilder) { b.WithID("  ") },
				errIs:  user.ErrMissingRequesterID,
			},
		})
	})

	t.Run("anonymous", func(t *testing.T) {
		anon := user.Anonymous()
		assert.True(t, anon.IsAnonymous())
		assert.False(t, anon.Role().AtLeast(user.RoleStudent))
	})
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleStudent, user.RoleStudent, true},
		{user.RoleStudent, user.RoleOrganizer, false},
		{user.RoleOrganizer, user.RoleOrganizer, true},
		{user.RoleOrganizer, user.RoleAdmin, false},
		{user.RoleAdmin, user.RoleOrganizer, true},
		{user.Role("viewer"), user.RoleStudent, false},
		{user.RoleAdmin, user.Role("viewer"), false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+">="+tt.min.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewRequesterBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
