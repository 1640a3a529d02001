package response

import (
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	WorkingDays []int     `json:"workingDays"`
	OpenTime    string    `json:"openTime"`
	CloseTime   string    `json:"closeTime"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreatedShopResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromShopView(v *queries.ShopView) *ShopResponse {
	days := v.WorkingDays
	if days == nil {
		days = []int{}
	}
	return &ShopResponse{
		ID:          v.ID,
		Name:        v.Name,
		WorkingDays: days,
		OpenTime:    availability.WallClock(v.OpenMinute).String(),
		CloseTime:   availability.WallClock(v.CloseMinute).String(),
		UpdatedAt:   v.UpdatedAt,
	}
}
