package response

import (
	"shop-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	AppointmentID   uuid.UUID `json:"appointmentId"`
	Status          string    `json:"status"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

func FromAdmitResult(r *commands.AdmitBookingResult) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, r)
	return res
}
