package request

import (
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/usecase/commands"
)

type SizeQuantity struct {
	Size     string `json:"size" binding:"required,max=20"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

type CreateMerchItemRequest struct {
	Name        string         `json:"name" binding:"required,max=200"`
	Description string         `json:"description" binding:"max=5000"`
	PriceCents  int64          `json:"price_cents" binding:"min=0"`
	ImageURL    string         `json:"image_url" binding:"omitempty,url"`
	Sizes       []SizeQuantity `json:"sizes" binding:"required,min=1,dive"`
}

func (r CreateMerchItemRequest) ToCommand() commands.CreateMerchItemRequest {
	sizes := make([]merch.SizeSpec, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, merch.SizeSpec{Size: s.Size, Quantity: s.Quantity})
	}
	return commands.CreateMerchItemRequest{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		Sizes:       sizes,
	}
}

type UpdateMerchItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	PriceCents  *int64  `json:"price_cents" binding:"omitempty,min=0"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

func (r UpdateMerchItemRequest) ToCommand() commands.UpdateMerchItemRequest {
	return commands.UpdateMerchItemRequest{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
	}
}

type PlaceOrderRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	StudentID     string `json:"student_id" binding:"required,max=50"`
	Phone         string `json:"phone" binding:"max=20"`
	SelectedSize  string `json:"selected_size" binding:"required,max=20"`
	TransactionID string `json:"transaction_id" binding:"required,max=100"`
	ProofRef      string `json:"proof_ref" binding:"max=500"`
}

func (r PlaceOrderRequest) ToDomain() order.Form {
	return order.Form{
		Name:          r.Name,
		StudentID:     r.StudentID,
		Phone:         r.Phone,
		SelectedSize:  r.SelectedSize,
		TransactionID: r.TransactionID,
		ProofRef:      r.ProofRef,
	}
}

// Status is validated by the usecase so that an unknown value maps to the invalid status error.
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
