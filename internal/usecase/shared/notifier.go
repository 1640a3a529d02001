package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/shared/notifier_mock.go -package=sharedmock

const EventAppointmentCreated = "appointment_created"

type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	ShopID        uuid.UUID `json:"shop_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Status        string    `json:"status"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Notifier delivers booking events to customers or downstream systems.
// Delivery is best effort; callers never roll back on failure.
type Notifier interface {
	Notify(ctx context.Context, event AppointmentEvent) error
}
