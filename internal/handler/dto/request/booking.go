package request

import (
	"shop-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"max=255"`
	Phone string `json:"phone" binding:"max=50"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}

type ServiceLineRequest struct {
	ServiceID       uuid.UUID `json:"serviceId" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=1,max=1440"`
}

// Presence of shop, customer, service, date and time is checked by the
// admission usecase so that every missing field is reported at once.
type CreateBookingRequest struct {
	ShopID          uuid.UUID            `json:"shopId"`
	Date            string               `json:"date"`
	StartTime       string               `json:"startTime"`
	DurationMinutes int                  `json:"durationMinutes" binding:"min=0,max=1440"`
	ServiceID       *uuid.UUID           `json:"serviceId,omitempty"`
	Services        []ServiceLineRequest `json:"services,omitempty" binding:"omitempty,dive"`
	Customer        CustomerRequest      `json:"customer"`
	Note            string               `json:"note,omitempty" binding:"max=1000"`
}

func (r CreateBookingRequest) ToCommand() commands.AdmitBookingRequest {
	var services []commands.ServiceLine
	if len(r.Services) > 0 {
		services = make([]commands.ServiceLine, len(r.Services))
		for i, s := range r.Services {
			services[i] = commands.ServiceLine{ServiceID: s.ServiceID, DurationMinutes: s.DurationMinutes}
		}
	}

	return commands.AdmitBookingRequest{
		ShopID:          r.ShopID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		ServiceID:       r.ServiceID,
		Services:        services,
		CustomerName:    r.Customer.Name,
		CustomerPhone:   r.Customer.Phone,
		CustomerEmail:   r.Customer.Email,
		Note:            r.Note,
	}
}
