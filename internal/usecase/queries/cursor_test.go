//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 10, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	decodedAt, decodedID, err := DecodeAfterCursor(EncodeAfterCursor(createdAt, id))
	require.NoError(t, err)
	assert.Equal(t, createdAt.Truncate(time.Microsecond), decodedAt)
	assert.Equal(t, id, decodedID)

	invalid := []string{
		"",
		"%%%",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		base64.URLEncoding.EncodeToString([]byte("v1:12345-not-a-uuid")),
	}
	for _, c := range invalid {
		_, _, err := DecodeAfterCursor(c)
		assert.Error(t, err, c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
