//go:build unit

package merch_test

import (
	"testing"
	"time"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.MerchBuilder)
	errIs  error
}

func TestItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewMerchBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 18, actual.Stock())
		assert.Equal(t, "organizer-001", actual.CreatedBy())

		expected := []merch.SizeBucket{
			{Size: "S", Capacity: 5, Available: 5},
			{Size: "M", Capacity: 10, Available: 10},
			{Size: "L", Capacity: 3, Available: 3},
		}
		if diff := cmp.Diff(expected, actual.Buckets()); diff != "" {
			t.Errorf("size chart mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("details validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.MerchBuilder) { b.WithName("") },
				errIs:  merch.ErrEmptyName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.MerchBuilder) { b.PriceCents = -1 },
				errIs:  merch.ErrNegativePrice,
			},
			{
				name:   "free item",
				mutate: func(b *builder.MerchBuilder) { b.PriceCents = 0 },
			},
		})
	})

	t.Run("size chart validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no sizes",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes() },
				errIs:  merch.ErrEmptySizeChart,
			},
			{
				name:   "blank size label",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: " ", Quantity: 1}) },
				errIs:  merch.ErrEmptySizeLabel,
			},
			{
				name: "duplicate size label",
				mutate: func(b *builder.MerchBuilder) {
					b.WithSizes(merch.SizeSpec{Size: "M", Quantity: 1}, merch.SizeSpec{Size: " M", Quantity: 2})
				},
				errIs: merch.ErrDuplicateSize,
			},
			{
				name:   "dotted size label",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: "X.L", Quantity: 1}) },
				errIs:  merch.ErrSizeLabelFormat,
			},
			{
				name:   "operator-like size label",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: "$set", Quantity: 1}) },
				errIs:  merch.ErrSizeLabelFormat,
			},
			{
				name:   "dollar inside label is fine",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: "M$", Quantity: 1}) },
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: "M", Quantity: -1}) },
				errIs:  merch.ErrNegativeQuantity,
			},
			{
				name:   "sold out size",
				mutate: func(b *builder.MerchBuilder) { b.WithSizes(merch.SizeSpec{Size: "XL", Quantity: 0}) },
			},
		})
	})
}

func TestItem_TakeAndReturnUnit(t *testing.T) {
	item, err := builder.NewMerchBuilder().
		WithSizes(merch.SizeSpec{Size: "M", Quantity: 1}, merch.SizeSpec{Size: "L", Quantity: 2}).
		BuildDomain()
	require.NoError(t, err)
	later := item.CreatedAt().Add(time.Minute)

	t.Run("take decrements bucket and stock together", func(t *testing.T) {
		require.NoError(t, item.TakeUnit("M", later))
		bucket, ok := item.Bucket("M")
		require.True(t, ok)
		assert.Equal(t, 0, bucket.Available)
		assert.Equal(t, 2, item.Stock())
		assert.Equal(t, later, item.UpdatedAt())
	})

	t.Run("exhausted size", func(t *testing.T) {
		require.ErrorIs(t, item.TakeUnit("M", later), merch.ErrOutOfStock)
		assert.Equal(t, 2, item.Stock())
	})

	t.Run("unknown size", func(t *testing.T) {
		require.ErrorIs(t, item.TakeUnit("XXL", later), merch.ErrInvalidSize)
		require.ErrorIs(t, item.ReturnUnit("XXL", later), merch.ErrInvalidSize)
	})

	t.Run("return restores bucket and stock", func(t *testing.T) {
		require.NoError(t, item.ReturnUnit("M", later))
		bucket, _ := item.Bucket("M")
		assert.Equal(t, 1, bucket.Available)
		assert.Equal(t, 3, item.Stock())
	})

	t.Run("return beyond capacity", func(t *testing.T) {
		require.ErrorIs(t, item.ReturnUnit("M", later), merch.ErrNothingToReturn)
		assert.Equal(t, 3, item.Stock())
	})
}

func TestReconstructItem(t *testing.T) {
	now := time.Now().UTC()
	buckets := []merch.SizeBucket{
		{Size: "S", Capacity: 4, Available: 1},
		{Size: "M", Capacity: 2, Available: 2},
	}
	details := merch.Details{Name: "Tee"}

	item, err := merch.ReconstructItem(uuid.New(), details, buckets, 3, "org", "org@campus.example.edu", now, now)
	require.NoError(t, err)
	assert.Equal(t, buckets, item.Buckets())

	_, err = merch.ReconstructItem(uuid.New(), details, buckets, 5, "org", "", now, now)
	require.ErrorIs(t, err, merch.ErrStockMismatch)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewMerchBuilder().With(c.mutate).BuildDomain()

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
