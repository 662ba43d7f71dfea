//go:build unit

package order_test

import (
	"testing"
	"time"

	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/user"
	"campus-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.MerchID, actual.MerchID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Nil(t, actual.ReviewedAt())
		assert.Equal(t, "M", actual.Form().SelectedSize)
		assert.Equal(t, "student@campus.example.edu", actual.RequesterEmail())
		assert.False(t, actual.ReturnsStock())
	})

	runCases(t, []testCase{
		{
			name:   "anonymous requester",
			mutate: func(b *builder.OrderBuilder) { b.Requester = user.Anonymous() },
			errIs:  order.ErrAnonymous,
		},
		{
			name:   "empty name",
			mutate: func(b *builder.OrderBuilder) { b.Name = "" },
			errIs:  order.ErrEmptyName,
		},
		{
			name:   "empty student id",
			mutate: func(b *builder.OrderBuilder) { b.StudentID = "" },
			errIs:  order.ErrEmptyStudentID,
		},
		{
			name:   "empty size",
			mutate: func(b *builder.OrderBuilder) { b.WithSize(" ") },
			errIs:  order.ErrEmptySize,
		},
		{
			name:   "empty transaction id",
			mutate: func(b *builder.OrderBuilder) { b.WithTransactionID("") },
			errIs:  order.ErrEmptyTransactionID,
		},
		{
			name:   "phone and proof are optional",
			mutate: func(b *builder.OrderBuilder) { b.Phone, b.ProofRef = "", "" },
		},
	})
}

func TestOrder_Decide(t *testing.T) {
	decidedAt := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		to           order.Status
		errIs        error
		returnsStock bool
	}{
		{name: "approve", to: order.StatusApproved},
		{name: "reject", to: order.StatusRejected, returnsStock: true},
		{name: "back to pending", to: order.StatusPending, errIs: order.ErrInvalidDecision},
		{name: "unknown status", to: order.Status("shipped"), errIs: order.ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := builder.NewOrderBuilder().BuildDomain()
			require.NoError(t, err)

			err = o.Decide(tt.to, decidedAt)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, order.StatusPending, o.Status())
				assert.Nil(t, o.ReviewedAt())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, o.Status())
			require.NotNil(t, o.ReviewedAt())
			assert.Equal(t, decidedAt, *o.ReviewedAt())
			assert.Equal(t, tt.returnsStock, o.ReturnsStock())
		})
	}

	t.Run("decision is one-shot", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Decide(order.StatusApproved, decidedAt))

		require.ErrorIs(t, o.Decide(order.StatusRejected, decidedAt.Add(time.Hour)), order.ErrAlreadyProcessed)
		require.ErrorIs(t, o.Decide(order.StatusApproved, decidedAt.Add(time.Hour)), order.ErrAlreadyProcessed)
		assert.Equal(t, order.StatusApproved, o.Status())
		assert.Equal(t, decidedAt, *o.ReviewedAt())
	})
}

func TestParseDecision(t *testing.T) {
	for _, s := range []string{"approved", "rejected"} {
		status, err := order.ParseDecision(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}
	for _, s := range []string{"pending", "", "APPROVED", "cancelled"} {
		_, err := order.ParseDecision(s)
		require.ErrorIs(t, err, order.ErrInvalidDecision, s)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
