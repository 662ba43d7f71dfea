//go:build unit

package capacity_test

import (
	"testing"

	"campus-reserve/internal/domain/capacity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		used     int
		errIs    error
	}{
		{name: "empty counter", capacity: 10, used: 0},
		{name: "full counter", capacity: 10, used: 10},
		{name: "zero capacity", capacity: 0, used: 0},
		{name: "negative capacity", capacity: -1, used: 0, errIs: capacity.ErrInvalidCapacity},
		{name: "negative usage", capacity: 10, used: -1, errIs: capacity.ErrInvalidUsage},
		{name: "usage above capacity", capacity: 10, used: 11, errIs: capacity.ErrInvalidUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := capacity.NewCounter(tt.capacity, tt.used)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, c.Capacity())
			assert.Equal(t, tt.used, c.Used())
			assert.Equal(t, tt.capacity-tt.used, c.Remaining())
		})
	}
}

func TestFromAvailable(t *testing.T) {
	c, err := capacity.FromAvailable(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Used())
	assert.Equal(t, 3, c.Remaining())

	_, err = capacity.FromAvailable(10, 11)
	require.ErrorIs(t, err, capacity.ErrInvalidUsage)
}

func TestCounter_Claim(t *testing.T) {
	t.Run("claims until exhausted", func(t *testing.T) {
		c, err := capacity.NewCounter(2, 0)
		require.NoError(t, err)

		c, err = c.Claim()
		require.NoError(t, err)
		c, err = c.Claim()
		require.NoError(t, err)
		assert.True(t, c.IsFull())

		next, err := c.Claim()
		require.ErrorIs(t, err, capacity.ErrExhausted)
		assert.Equal(t, c, next)
		assert.Equal(t, 2, next.Used())
	})

	t.Run("zero capacity is always full", func(t *testing.T) {
		c, err := capacity.NewCounter(0, 0)
		require.NoError(t, err)
		assert.True(t, c.IsFull())

		_, err = c.Claim()
		require.ErrorIs(t, err, capacity.ErrExhausted)
	})

	t.Run("original value is unchanged", func(t *testing.T) {
		c, err := capacity.NewCounter(5, 1)
		require.NoError(t, err)

		next, err := c.Claim()
		require.NoError(t, err)
		assert.Equal(t, 1, c.Used())
		assert.Equal(t, 2, next.Used())
	})
}

func TestCounter_Release(t *testing.T) {
	c, err := capacity.NewCounter(3, 1)
	require.NoError(t, err)

	c, err = c.Release()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Used())

	_, err = c.Release()
	require.ErrorIs(t, err, capacity.ErrNothingClaimed)
}

func TestCounter_Resize(t *testing.T) {
	base, err := capacity.NewCounter(10, 4)
	require.NoError(t, err)

	tests := []struct {
		name     string
		capacity int
		errIs    error
	}{
		{name: "grow", capacity: 20},
		{name: "shrink above usage", capacity: 5},
		{name: "shrink to usage", capacity: 4},
		{name: "shrink below usage", capacity: 3, errIs: capacity.ErrBelowClaimed},
		{name: "negative", capacity: -1, errIs: capacity.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := base.Resize(tt.capacity)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, base, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, next.Capacity())
			assert.Equal(t, 4, next.Used())
		})
	}
}
