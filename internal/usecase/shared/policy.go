package shared

import (
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/pkg/config"
)

type BookingPolicy struct {
	Location               *time.Location
	StepMinutes            int
	DefaultDurationMinutes int
	SerializeAdmission     bool
	NotifyTimeout          time.Duration
}

func NewBookingPolicy(cfg config.Config) (BookingPolicy, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return BookingPolicy{}, err
	}

	p := BookingPolicy{
		Location:               loc,
		StepMinutes:            cfg.Booking.SlotStepMinutes,
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		SerializeAdmission:     cfg.Booking.SerializeAdmission,
		NotifyTimeout:          cfg.Notify.Timeout,
	}
	if p.StepMinutes <= 0 {
		p.StepMinutes = availability.DefaultStepMinutes
	}
	if p.DefaultDurationMinutes <= 0 {
		p.DefaultDurationMinutes = availability.DefaultDurationMinutes
	}
	if p.NotifyTimeout <= 0 {
		p.NotifyTimeout = 5 * time.Second
	}
	return p, nil
}
