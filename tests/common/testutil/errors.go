//go:build unit || e2e

package testutil

import (
	"testing"

	"campus-reserve/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// RequireKind asserts that err carries the failure kind, either as its cause or as a mark.
func RequireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errs.Is(err, kind), "expected %q, got: %v", kind, err)
}

func AssertKind(t *testing.T, err error, kind error) bool {
	t.Helper()
	if err == nil {
		t.Errorf("expected %q, got nil", kind)
		return false
	}
	if !errs.Is(err, kind) {
		t.Errorf("expected %q, got: %v", kind, err)
		return false
	}
	return true
}
