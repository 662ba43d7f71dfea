//go:build unit

package retry_test

import (
	"context"
	"testing"
	"time"

	"campus-reserve/internal/infra/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff(t *testing.T) {
	base := 10 * time.Millisecond

	tests := []struct {
		attempt int
		min     time.Duration
	}{
		{attempt: 0, min: base},
		{attempt: 1, min: 2 * base},
		{attempt: 3, min: 8 * base},
		{attempt: 10, min: 1024 * base},
		{attempt: 50, min: 1024 * base},
	}

	for _, tt := range tests {
		got := retry.Backoff(tt.attempt, base)
		assert.GreaterOrEqual(t, got, tt.min, "attempt %d", tt.attempt)
		assert.LessOrEqual(t, got, tt.min+tt.min/5, "attempt %d", tt.attempt)
	}

	assert.Equal(t, time.Duration(0), retry.Backoff(3, 0))
}

func TestSleep(t *testing.T) {
	require.NoError(t, retry.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := retry.Sleep(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
