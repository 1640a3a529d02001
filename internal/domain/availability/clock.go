package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidWallClock = errors.New("wall clock time must be formatted as HH:mm")

const (
	minutesPerDay = 24 * 60
	layoutDate    = "2006-01-02"
)

// WallClock is a local time of day stored as minutes since midnight.
// Values past 24:00 are allowed so that an interval end can be represented.
type WallClock int

func ParseWallClock(s string) (WallClock, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidWallClock
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidWallClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidWallClock
	}

	// 24:00 is accepted as a closing time
	if h == 24 && m == 0 {
		return minutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidWallClock
	}

	return WallClock(h*60 + m), nil
}

func MustParseWallClock(s string) WallClock {
	w, err := ParseWallClock(s)
	if err != nil {
		panic(fmt.Sprintf("availability: invalid wall clock %q", s))
	}
	return w
}

func WallClockOf(t time.Time) WallClock {
	return WallClock(t.Hour()*60 + t.Minute())
}

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", int(w)/60, int(w)%60)
}

func (w WallClock) Minutes() int {
	return int(w)
}

func (w WallClock) Add(minutes int) WallClock {
	return w + WallClock(minutes)
}

func (w WallClock) Before(o WallClock) bool {
	return w < o
}

// On places the wall clock on the calendar day of date, in date's location.
func (w WallClock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(w) * time.Minute)
}

// ParseDate parses a "YYYY-MM-DD" calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), loc)
}

func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// DayWindow returns [start-of-day, start-of-next-day) for date in its location.
func DayWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
