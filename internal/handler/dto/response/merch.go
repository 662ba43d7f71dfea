package response

import (
	"campus-reserve/internal/usecase/queries"
)

type SizeResponse struct {
	Size      string `json:"size"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

type MerchResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	PriceCents     int64          `json:"price_cents"`
	ImageURL       string         `json:"image_url"`
	Sizes          []SizeResponse `json:"sizes" copier:"-"`
	Stock          int            `json:"stock"`
	CreatedBy      string         `json:"created_by"`
	CreatedByEmail string         `json:"created_by_email"`
	CreatedAt      int64          `json:"created_at"`
	UpdatedAt      int64          `json:"updated_at"`
}

func FromMerchView(v *queries.MerchView) *MerchResponse {
	res := build[MerchResponse](v)
	res.Sizes = make([]SizeResponse, len(v.Sizes))
	for i, s := range v.Sizes {
		res.Sizes[i] = SizeResponse(s)
	}
	return res
}

func FromMerchViews(views []*queries.MerchView) []*MerchResponse {
	res := make([]*MerchResponse, len(views))
	for i, v := range views {
		res[i] = FromMerchView(v)
	}
	return res
}

type OrderResponse struct {
	ID             string `json:"id"`
	MerchID        string `json:"merch_id"`
	RequesterID    string `json:"requester_id"`
	RequesterEmail string `json:"requester_email"`
	Name           string `json:"name"`
	StudentID      string `json:"student_id"`
	Phone          string `json:"phone"`
	SelectedSize   string `json:"selected_size"`
	TransactionID  string `json:"transaction_id"`
	ProofRef       string `json:"proof_ref"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
	ReviewedAt     *int64 `json:"reviewed_at,omitempty" copier:"-"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := build[OrderResponse](v)
	res.ReviewedAt = optionalUnix(v.ReviewedAt)
	return res
}

type OrderListResponse struct {
	Items      []*OrderResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func FromOrderViews(views []*queries.OrderView, next *queries.Cursor) *OrderListResponse {
	res := &OrderListResponse{Items: make([]*OrderResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromOrderView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
