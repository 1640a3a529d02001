package queries

import "time"

type Settings struct {
	Location               *time.Location
	StepMinutes            int
	DefaultDurationMinutes int
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
