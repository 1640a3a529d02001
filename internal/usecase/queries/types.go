package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ShopView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	WorkingDays []int     `json:"working_days"`
	OpenMinute  int       `json:"open_minute"`
	CloseMinute int       `json:"close_minute"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentView struct {
	ID              uuid.UUID   `json:"id"`
	ShopID          uuid.UUID   `json:"shop_id"`
	ServiceIDs      []uuid.UUID `json:"service_ids"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   *string     `json:"customer_email,omitempty"`
	Date            string      `json:"date"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	DurationMinutes int         `json:"duration_minutes"`
	StartsAt        time.Time   `json:"starts_at"`
	EndsAt          time.Time   `json:"ends_at"`
	Status          string      `json:"status"`
	Note            *string     `json:"note,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type AvailabilityView struct {
	ShopID     uuid.UUID `json:"shop_id"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
	TotalSlots int       `json:"total_slots"`
	Available  int       `json:"available"`
	Message    string    `json:"message,omitempty"`
}
