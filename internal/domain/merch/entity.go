package merch

import (
	"errors"
	"strings"
	"time"

	"campus-reserve/internal/domain/capacity"
	"campus-reserve/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("merch name is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrEmptySizeChart   = errors.New("size chart must contain at least one size")
	ErrEmptySizeLabel   = errors.New("size label is required")
	ErrDuplicateSize    = errors.New("size label appears more than once")
	ErrSizeLabelFormat  = errors.New("size label must not contain '.' or start with '$'")
	ErrNegativeQuantity = errors.New("size quantity cannot be negative")
	ErrInvalidSize      = errors.New("selected size is not available")
	ErrOutOfStock       = errors.New("selected size is out of stock")
	ErrNothingToReturn  = errors.New("no unit of this size has been taken")
	ErrStockMismatch    = errors.New("aggregate stock does not match size chart")
)

type Details struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
}

func (d Details) normalize() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	if d.Name == "" {
		return Details{}, ErrEmptyName
	}
	if d.PriceCents < 0 {
		return Details{}, ErrNegativePrice
	}
	return d, nil
}

// SizeSpec is one row of the size chart supplied at creation.
type SizeSpec struct {
	Size     string
	Quantity int
}

// SizeBucket is the read view of one size: how many were stocked and how many are left.
type SizeBucket struct {
	Size      string
	Capacity  int
	Available int
}

// Item is a merch product whose size chart is keyed by size label.
// stock always equals the sum of bucket availability; both move together.
type Item struct {
	id             uuid.UUID
	details        Details
	sizes          map[string]capacity.Counter
	sizeOrder      []string
	stock          int
	createdBy      string
	createdByEmail string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewItem(details Details, chart []SizeSpec, creator user.Requester, now time.Time) (*Item, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if len(chart) == 0 {
		return nil, ErrEmptySizeChart
	}

	buckets := make([]SizeBucket, 0, len(chart))
	for _, spec := range chart {
		if spec.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		buckets = append(buckets, SizeBucket{
			Size:      strings.TrimSpace(spec.Size),
			Capacity:  spec.Quantity,
			Available: spec.Quantity,
		})
	}

	item := &Item{
		id:             uuid.New(),
		details:        d,
		createdBy:      creator.ID(),
		createdByEmail: creator.Email().Value(),
		createdAt:      now,
		updatedAt:      now,
	}
	if err := item.loadBuckets(buckets); err != nil {
		return nil, err
	}
	for _, b := range buckets {
		item.stock += b.Available
	}
	return item, nil
}

// ReconstructItem rebuilds an item from storage. The stored aggregate stock is
// trusted only when it agrees with the buckets.
func ReconstructItem(
	id uuid.UUID,
	details Details,
	buckets []SizeBucket,
	stock int,
	createdBy, createdByEmail string,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	item := &Item{
		id:             id,
		details:        details,
		stock:          stock,
		createdBy:      createdBy,
		createdByEmail: createdByEmail,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
	if err := item.loadBuckets(buckets); err != nil {
		return nil, err
	}
	sum := 0
	for _, b := range buckets {
		sum += b.Available
	}
	if sum != stock {
		return nil, ErrStockMismatch
	}
	return item, nil
}

func (i *Item) loadBuckets(buckets []SizeBucket) error {
	i.sizes = make(map[string]capacity.Counter, len(buckets))
	i.sizeOrder = make([]string, 0, len(buckets))
	for _, b := range buckets {
		if b.Size == "" {
			return ErrEmptySizeLabel
		}
		// Labels double as document field names in the mongo store.
		if strings.HasPrefix(b.Size, "$") || strings.Contains(b.Size, ".") {
			return ErrSizeLabelFormat
		}
		if _, dup := i.sizes[b.Size]; dup {
			return ErrDuplicateSize
		}
		counter, err := capacity.FromAvailable(b.Capacity, b.Available)
		if err != nil {
			return err
		}
		i.sizes[b.Size] = counter
		i.sizeOrder = append(i.sizeOrder, b.Size)
	}
	return nil
}

// TakeUnit reserves one unit of the given size, decrementing the bucket and the aggregate stock.
func (i *Item) TakeUnit(size string, now time.Time) error {
	counter, ok := i.sizes[size]
	if !ok {
		return ErrInvalidSize
	}
	next, err := counter.Claim()
	if err != nil {
		return ErrOutOfStock
	}
	i.sizes[size] = next
	i.stock--
	i.updatedAt = now
	return nil
}

// ReturnUnit undoes TakeUnit for a rejected order.
func (i *Item) ReturnUnit(size string, now time.Time) error {
	counter, ok := i.sizes[size]
	if !ok {
		return ErrInvalidSize
	}
	next, err := counter.Release()
	if err != nil {
		return ErrNothingToReturn
	}
	i.sizes[size] = next
	i.stock++
	i.updatedAt = now
	return nil
}

func (i *Item) UpdateDetails(details Details, now time.Time) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	i.details = d
	i.updatedAt = now
	return nil
}

func (i *Item) Bucket(size string) (SizeBucket, bool) {
	counter, ok := i.sizes[size]
	if !ok {
		return SizeBucket{}, false
	}
	return SizeBucket{Size: size, Capacity: counter.Capacity(), Available: counter.Remaining()}, true
}

// Buckets returns the size chart in its original order.
func (i *Item) Buckets() []SizeBucket {
	out := make([]SizeBucket, 0, len(i.sizeOrder))
	for _, size := range i.sizeOrder {
		b, _ := i.Bucket(size)
		out = append(out, b)
	}
	return out
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) Details() Details       { return i.details }
func (i *Item) Stock() int             { return i.stock }
func (i *Item) CreatedBy() string      { return i.createdBy }
func (i *Item) CreatedByEmail() string { return i.createdByEmail }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }
