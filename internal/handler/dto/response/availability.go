package response

import (
	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ShopID     uuid.UUID `json:"shopId"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
	TotalSlots int       `json:"totalSlots"`
	Available  int       `json:"available"`
	Message    string    `json:"message,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := v.Slots
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		ShopID:     v.ShopID,
		Date:       v.Date,
		Slots:      slots,
		TotalSlots: v.TotalSlots,
		Available:  v.Available,
		Message:    v.Message,
	}
}
