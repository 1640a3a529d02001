package request

import (
	"shop-booking/internal/domain/availability"
	"shop-booking/internal/pkg/patch"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"
)

type ShopHoursRequest struct {
	WorkingDays []int  `json:"workingDays" binding:"required,dive,min=0,max=6"`
	OpenTime    string `json:"openTime" binding:"required"`
	CloseTime   string `json:"closeTime" binding:"required"`
}

func (r ShopHoursRequest) ToInput() commands.ShopHoursInput {
	return commands.ShopHoursInput{
		WorkingDays: r.WorkingDays,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
	}
}

type CreateShopRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	WorkingDays []int  `json:"workingDays" binding:"required,dive,min=0,max=6"`
	OpenTime    string `json:"openTime" binding:"required"`
	CloseTime   string `json:"closeTime" binding:"required"`
}

func (r CreateShopRequest) ToInput() commands.ShopHoursInput {
	return commands.ShopHoursInput{
		WorkingDays: r.WorkingDays,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
	}
}

// PatchShopHoursRequest changes only the fields that are present.
type PatchShopHoursRequest struct {
	WorkingDays *[]int  `json:"workingDays,omitempty"`
	OpenTime    *string `json:"openTime,omitempty"`
	CloseTime   *string `json:"closeTime,omitempty"`
}

func (r PatchShopHoursRequest) ToInput(existing *queries.ShopView) commands.ShopHoursInput {
	return commands.ShopHoursInput{
		WorkingDays: patch.Coalesce(r.WorkingDays, existing.WorkingDays),
		OpenTime:    patch.Coalesce(r.OpenTime, availability.WallClock(existing.OpenMinute).String()),
		CloseTime:   patch.Coalesce(r.CloseTime, availability.WallClock(existing.CloseMinute).String()),
	}
}
