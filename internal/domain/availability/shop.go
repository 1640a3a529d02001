package availability

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrInvalidWeekday     = errors.New("working day must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidShopHours   = errors.New("open time must be before close time")
	ErrCloseAfterMidnight = errors.New("close time cannot be later than 24:00")
)

// ShopHours is a shop's weekly availability: the days it works and the
// wall-clock window it is open on each of them.
type ShopHours struct {
	workingDays []time.Weekday
	open        WallClock
	close       WallClock
}

func NewShopHours(workingDays []int, open, close string) (ShopHours, error) {
	openAt, err := ParseWallClock(open)
	if err != nil {
		return ShopHours{}, err
	}
	closeAt, err := ParseWallClock(close)
	if err != nil {
		return ShopHours{}, err
	}
	return NewShopHoursFromClock(workingDays, openAt, closeAt)
}

func NewShopHoursFromClock(workingDays []int, open, close WallClock) (ShopHours, error) {
	if !open.Before(close) {
		return ShopHours{}, ErrInvalidShopHours
	}
	if close > minutesPerDay {
		return ShopHours{}, ErrCloseAfterMidnight
	}

	days := make([]time.Weekday, 0, len(workingDays))
	for _, d := range workingDays {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return ShopHours{}, ErrInvalidWeekday
		}
		if !slices.Contains(days, time.Weekday(d)) {
			days = append(days, time.Weekday(d))
		}
	}
	slices.Sort(days)

	return ShopHours{workingDays: days, open: open, close: close}, nil
}

func (h ShopHours) IsWorkingDay(d time.Weekday) bool {
	return slices.Contains(h.workingDays, d)
}

// Contains reports whether the interval lies entirely inside opening hours.
func (h ShopHours) Contains(iv Interval) bool {
	return !iv.Start.Before(h.open) && iv.End() <= h.close
}

func (h ShopHours) WorkingDays() []int {
	days := make([]int, len(h.workingDays))
	for i, d := range h.workingDays {
		days[i] = int(d)
	}
	return days
}

func (h ShopHours) Open() WallClock  { return h.open }
func (h ShopHours) Close() WallClock { return h.close }
