package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Shops struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	WorkingDays []int16            `json:"working_days"`
	OpenMinute  int32              `json:"open_minute"`
	CloseMinute int32              `json:"close_minute"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Appointments struct {
	ID              uuid.UUID          `json:"id"`
	ShopID          uuid.UUID          `json:"shop_id"`
	ServiceIds      []uuid.UUID        `json:"service_ids"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   pgtype.Text        `json:"customer_email"`
	AppointmentDate pgtype.Date        `json:"appointment_date"`
	StartMinute     int32              `json:"start_minute"`
	DurationMinutes int32              `json:"duration_minutes"`
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	EndsAt          pgtype.Timestamptz `json:"ends_at"`
	Status          string             `json:"status"`
	Note            string             `json:"note"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}
