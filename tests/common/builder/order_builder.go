//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	MerchID       uuid.UUID
	Requester     user.Requester
	Name          string
	StudentID     string
	Phone         string
	SelectedSize  string
	TransactionID string
	ProofRef      string
	Now           time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		MerchID:       uuid.New(),
		Requester:     NewRequesterBuilder().MustBuild(),
		Name:          "Asha Verma",
		StudentID:     "CS2024-117",
		Phone:         "+91-98765-43210",
		SelectedSize:  "M",
		TransactionID: "UPI-20260302-0042",
		ProofRef:      "proofs/0042.png",
		Now:           time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithSize(size string) *OrderBuilder {
	o.SelectedSize = size
	return o
}

func (o *OrderBuilder) WithTransactionID(id string) *OrderBuilder {
	o.TransactionID = id
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.NewOrder(o.MerchID, o.Requester, o.BuildForm(), o.Now)
}

func (o *OrderBuilder) BuildForm() order.Form {
	return order.Form{
		Name:          o.Name,
		StudentID:     o.StudentID,
		Phone:         o.Phone,
		SelectedSize:  o.SelectedSize,
		TransactionID: o.TransactionID,
		ProofRef:      o.ProofRef,
	}
}

func (o *OrderBuilder) BuildRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		Name:          o.Name,
		StudentID:     o.StudentID,
		Phone:         o.Phone,
		SelectedSize:  o.SelectedSize,
		TransactionID: o.TransactionID,
		ProofRef:      o.ProofRef,
	}
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:             uuid.New(),
		MerchID:        o.MerchID,
		RequesterID:    o.Requester.ID(),
		RequesterEmail: o.Requester.Email().Value(),
		Name:           o.Name,
		StudentID:      o.StudentID,
		Phone:          o.Phone,
		SelectedSize:   o.SelectedSize,
		TransactionID:  o.TransactionID,
		ProofRef:       o.ProofRef,
		Status:         order.StatusPending.String(),
		CreatedAt:      o.Now,
	}
}
