package availability

import (
	"errors"
	"time"
)

var (
	ErrOverlap      = errors.New("interval overlaps an existing booking")
	ErrClosedDay    = errors.New("shop is closed on this day")
	ErrOutsideHours = errors.New("interval is outside opening hours")
)

// DefaultDurationMinutes is assumed for a booking whose duration is unknown.
// Treating it as zero-width would let a second booking land on top of it.
const DefaultDurationMinutes = 30

// Interval is the half-open range [Start, Start+DurationMinutes).
type Interval struct {
	Start           WallClock
	DurationMinutes int
}

func NewInterval(start WallClock, durationMinutes int) Interval {
	return Interval{Start: start, DurationMinutes: durationMinutes}
}

func (i Interval) Duration() int {
	if i.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return i.DurationMinutes
}

func (i Interval) End() WallClock {
	return i.Start.Add(i.Duration())
}

// Overlaps reports whether the two intervals share any minute.
// An interval ending exactly when the other starts does not overlap it.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End() && o.Start < i.End()
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End().String()
}

// Overlaps reports whether a candidate of the given duration starting at start
// collides with any of booked. booked must not contain cancelled bookings.
func Overlaps(start WallClock, durationMinutes int, booked []Interval) bool {
	candidate := NewInterval(start, durationMinutes)
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// BookedInterval is an existing appointment as seen by the availability engine.
type BookedInterval struct {
	Interval
	Cancelled bool
}

// BookedAt places an absolute booking on the wall clock of the day starting at
// dayStart. A booking carried over from the previous day gets a negative start.
func BookedAt(dayStart, startsAt time.Time, durationMinutes int, cancelled bool) BookedInterval {
	offset := int(startsAt.Sub(dayStart) / time.Minute)
	return BookedInterval{
		Interval:  NewInterval(WallClock(offset), durationMinutes),
		Cancelled: cancelled,
	}
}

// ActiveIntervals drops cancelled bookings.
func ActiveIntervals(booked []BookedInterval) []Interval {
	active := make([]Interval, 0, len(booked))
	for _, b := range booked {
		if b.Cancelled {
			continue
		}
		active = append(active, b.Interval)
	}
	return active
}
