package response

import (
	"campus-reserve/internal/usecase/queries"
)

type FestResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	StartsAt    int64  `json:"starts_at"`
	EndsAt      int64  `json:"ends_at"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromFestView(v *queries.FestView) *FestResponse {
	return build[FestResponse](v)
}

func FromFestViews(views []*queries.FestView) []*FestResponse {
	res := make([]*FestResponse, len(views))
	for i, v := range views {
		res[i] = FromFestView(v)
	}
	return res
}
