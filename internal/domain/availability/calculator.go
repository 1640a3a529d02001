package availability

import "time"

const ClosedMessage = "Shop is closed on this day"

type Result struct {
	Date       time.Time
	Slots      []WallClock
	TotalSlots int
	Available  int
	Closed     bool
}

func (r Result) Message() string {
	if r.Closed {
		return ClosedMessage
	}
	return ""
}

// Calculator turns shop hours and the bookings of one day into open start
// times. It holds no mutable state and may be shared between goroutines.
type Calculator struct {
	stepMinutes int
}

func NewCalculator(stepMinutes int) *Calculator {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	return &Calculator{stepMinutes: stepMinutes}
}

func (c *Calculator) StepMinutes() int {
	return c.stepMinutes
}

func (c *Calculator) Calculate(hours ShopHours, date time.Time, durationMinutes int, booked []BookedInterval) Result {
	if !hours.IsWorkingDay(date.Weekday()) {
		return Result{Date: date, Slots: []WallClock{}, Closed: true}
	}

	active := ActiveIntervals(booked)
	candidates := GenerateSlots(hours.Open(), hours.Close(), c.stepMinutes)

	slots := make([]WallClock, 0, len(candidates))
	for _, start := range candidates {
		iv := NewInterval(start, durationMinutes)
		if iv.End() > hours.Close() {
			continue
		}
		if Overlaps(start, durationMinutes, active) {
			continue
		}
		slots = append(slots, start)
	}

	return Result{
		Date:       date,
		Slots:      slots,
		TotalSlots: len(candidates),
		Available:  len(slots),
	}
}

// Admissible reports why an interval cannot be booked on date, or nil when it
// fits the shop's hours and collides with none of booked.
func Admissible(hours ShopHours, date time.Time, iv Interval, booked []BookedInterval) error {
	if !hours.IsWorkingDay(date.Weekday()) {
		return ErrClosedDay
	}
	if !hours.Contains(iv) {
		return ErrOutsideHours
	}
	if Overlaps(iv.Start, iv.Duration(), ActiveIntervals(booked)) {
		return ErrOverlap
	}
	return nil
}
