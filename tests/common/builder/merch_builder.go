//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type MerchBuilder struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Sizes       []merch.SizeSpec
	Creator     user.Requester
	Now         time.Time
}

func NewMerchBuilder() *MerchBuilder {
	return &MerchBuilder{
		Name:        "Fest Hoodie",
		Description: "Navy hoodie with the fest logo",
		PriceCents:  89900,
		ImageURL:    "https://cdn.campus.example.edu/merch/hoodie.png",
		Sizes: []merch.SizeSpec{
			{Size: "S", Quantity: 5},
			{Size: "M", Quantity: 10},
			{Size: "L", Quantity: 3},
		},
		Creator: NewRequesterBuilder().AsOrganizer().MustBuild(),
		Now:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *MerchBuilder) With(mutate func(*MerchBuilder)) *MerchBuilder {
	mutate(m)
	return m
}

func (m *MerchBuilder) WithName(name string) *MerchBuilder {
	m.Name = name
	return m
}

func (m *MerchBuilder) WithSizes(sizes ...merch.SizeSpec) *MerchBuilder {
	m.Sizes = sizes
	return m
}

// Build methods
func (m *MerchBuilder) BuildDomain() (*merch.Item, error) {
	return merch.NewItem(merch.Details{
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		ImageURL:    m.ImageURL,
	}, m.Sizes, m.Creator, m.Now)
}

func (m *MerchBuilder) BuildCommand() commands.CreateMerchItemRequest {
	return commands.CreateMerchItemRequest{
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		ImageURL:    m.ImageURL,
		Sizes:       m.Sizes,
	}
}

func (m *MerchBuilder) BuildCreateRequestDTO() reqdto.CreateMerchItemRequest {
	sizes := make([]reqdto.SizeQuantity, 0, len(m.Sizes))
	for _, s := range m.Sizes {
		sizes = append(sizes, reqdto.SizeQuantity{Size: s.Size, Quantity: s.Quantity})
	}
	return reqdto.CreateMerchItemRequest{
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		ImageURL:    m.ImageURL,
		Sizes:       sizes,
	}
}

func (m *MerchBuilder) BuildView() *queries.MerchView {
	view := &queries.MerchView{
		ID:             uuid.New(),
		Name:           m.Name,
		Description:    m.Description,
		PriceCents:     m.PriceCents,
		ImageURL:       m.ImageURL,
		CreatedBy:      m.Creator.ID(),
		CreatedByEmail: m.Creator.Email().Value(),
		CreatedAt:      m.Now,
		UpdatedAt:      m.Now,
	}
	for _, s := range m.Sizes {
		view.Sizes = append(view.Sizes, queries.SizeView{Size: s.Size, Capacity: s.Quantity, Available: s.Quantity})
		view.Stock += s.Quantity
	}
	return view
}
