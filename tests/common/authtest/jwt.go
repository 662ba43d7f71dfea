//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the external identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, email string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) StudentToken(t *testing.T, userID string) string {
	t.Helper()
	return h.GenerateToken(t, userID, userID+"@campus.example.edu", user.RoleStudent)
}

func (h *JWTHelper) OrganizerToken(t *testing.T, userID string) string {
	t.Helper()
	return h.GenerateToken(t, userID, userID+"@campus.example.edu", user.RoleOrganizer)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, userID+"@campus.example.edu", role, -time.Minute)
	require.NoError(t, err)
	return token
}
