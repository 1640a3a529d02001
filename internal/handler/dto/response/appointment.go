package response

import (
	"time"

	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID              uuid.UUID   `json:"id"`
	ShopID          uuid.UUID   `json:"shopId"`
	ServiceIDs      []uuid.UUID `json:"serviceIds"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   *string     `json:"customerEmail,omitempty"`
	Date            string      `json:"date"`
	StartTime       string      `json:"startTime"`
	EndTime         string      `json:"endTime"`
	DurationMinutes int         `json:"durationMinutes"`
	StartsAt        time.Time   `json:"startsAt"`
	EndsAt          time.Time   `json:"endsAt"`
	Status          string      `json:"status"`
	Note            *string     `json:"note,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	res := &AppointmentResponse{}
	_ = copier.CopyWithOption(res, v, copier.Option{DeepCopy: true})
	return res
}

func FromAppointmentList(views []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		res[i] = FromAppointmentView(v)
	}
	return res
}
