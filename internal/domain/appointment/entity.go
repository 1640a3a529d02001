package appointment

import (
	"errors"
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
	ErrInvalidStatus           = errors.New("invalid appointment status")
)

type Appointment struct {
	id        uuid.UUID
	shopID    uuid.UUID
	services  Services
	customer  Customer
	date      time.Time
	interval  availability.Interval
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewAppointment creates a pending appointment occupying one contiguous block
// whose length is the sum of the booked services.
func NewAppointment(
	clk clock.Clock,
	shopID uuid.UUID,
	date time.Time,
	start availability.WallClock,
	services Services,
	customer Customer,
	note Note,
) (*Appointment, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	now := clk.Now()
	return &Appointment{
		id:        uuid.New(),
		shopID:    shopID,
		services:  services,
		customer:  customer,
		date:      date,
		interval:  availability.NewInterval(start, services.TotalDuration()),
		status:    StatusPending,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppointment(
	id, shopID uuid.UUID,
	services Services,
	customer Customer,
	date time.Time,
	interval availability.Interval,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		shopID:    shopID,
		services:  services,
		customer:  customer,
		date:      date,
		interval:  interval,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Appointment) Confirm(now time.Time) error {
	switch a.status {
	case StatusConfirmed:
		return nil
	case StatusPending:
		a.status = StatusConfirmed
		a.updatedAt = now
		return nil
	default:
		return ErrInvalidStatusTransition
	}
}

// Cancel frees the slot. A cancelled appointment cannot be reactivated;
// rescheduling means booking again.
func (a *Appointment) Cancel(now time.Time) error {
	if !a.status.IsActive() {
		return ErrInvalidStatusTransition
	}
	a.status = StatusCancelled
	a.updatedAt = now
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) StartAt() time.Time {
	return a.interval.Start.On(a.date)
}

func (a *Appointment) EndAt() time.Time {
	return a.StartAt().Add(time.Duration(a.interval.Duration()) * time.Minute)
}

func (a *Appointment) Booked() availability.BookedInterval {
	return availability.BookedInterval{Interval: a.interval, Cancelled: !a.IsActive()}
}

func (a *Appointment) ID() uuid.UUID                   { return a.id }
func (a *Appointment) ShopID() uuid.UUID               { return a.shopID }
func (a *Appointment) Services() Services              { return a.services }
func (a *Appointment) Customer() Customer              { return a.customer }
func (a *Appointment) Date() time.Time                 { return a.date }
func (a *Appointment) Interval() availability.Interval { return a.interval }
func (a *Appointment) Status() Status                  { return a.status }
func (a *Appointment) Note() Note                      { return a.note }
func (a *Appointment) CreatedAt() time.Time            { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time            { return a.updatedAt }
