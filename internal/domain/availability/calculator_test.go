//go:build unit

package availability_test

import (
	"testing"
	"time"

	"shop-booking/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wednesday = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
)

func monToSat(t *testing.T) availability.ShopHours {
	t.Helper()
	hours, err := availability.NewShopHours([]int{1, 2, 3, 4, 5, 6}, "09:00", "18:00")
	require.NoError(t, err)
	return hours
}

func TestCalculator_Calculate(t *testing.T) {
	calc := availability.NewCalculator(30)

	t.Run("empty day yields every half hour until 17:30", func(t *testing.T) {
		res := calc.Calculate(monToSat(t), wednesday, 30, nil)

		require.Len(t, res.Slots, 18)
		assert.Equal(t, at("09:00"), res.Slots[0])
		assert.Equal(t, at("17:30"), res.Slots[17])
		assert.Equal(t, 18, res.TotalSlots)
		assert.Equal(t, 18, res.Available)
		assert.False(t, res.Closed)
		assert.Empty(t, res.Message())
	})

	t.Run("45 minute booking at noon removes 12:00 and 12:30", func(t *testing.T) {
		booked := []availability.BookedInterval{{Interval: iv("12:00", 45)}}

		res := calc.Calculate(monToSat(t), wednesday, 30, booked)

		assert.NotContains(t, res.Slots, at("12:00"))
		assert.NotContains(t, res.Slots, at("12:30"))
		assert.Contains(t, res.Slots, at("11:30"))
		assert.Contains(t, res.Slots, at("13:00"))
		assert.Equal(t, 18, res.TotalSlots)
		assert.Equal(t, 16, res.Available)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		booked := []availability.BookedInterval{{Interval: iv("14:00", 30), Cancelled: true}}

		res := calc.Calculate(monToSat(t), wednesday, 30, booked)

		assert.Contains(t, res.Slots, at("14:00"))
		assert.Equal(t, 18, res.Available)
	})

	t.Run("service must finish before closing", func(t *testing.T) {
		res := calc.Calculate(monToSat(t), wednesday, 90, nil)

		assert.Equal(t, at("16:30"), res.Slots[len(res.Slots)-1])
		assert.NotContains(t, res.Slots, at("17:00"))
		assert.Equal(t, 18, res.TotalSlots)
		assert.Equal(t, 16, res.Available)
	})

	t.Run("closed day short-circuits regardless of input", func(t *testing.T) {
		booked := []availability.BookedInterval{{Interval: iv("10:00", 30)}}

		for _, duration := range []int{15, 30, 120} {
			res := calc.Calculate(monToSat(t), sunday, duration, booked)

			assert.True(t, res.Closed)
			assert.Empty(t, res.Slots)
			assert.NotNil(t, res.Slots)
			assert.Zero(t, res.TotalSlots)
			assert.Zero(t, res.Available)
			assert.Equal(t, availability.ClosedMessage, res.Message())
		}
	})

	t.Run("shop closed every day", func(t *testing.T) {
		hours, err := availability.NewShopHours(nil, "09:00", "18:00")
		require.NoError(t, err)

		res := calc.Calculate(hours, wednesday, 30, nil)
		assert.True(t, res.Closed)
	})

	t.Run("results are chronological", func(t *testing.T) {
		booked := []availability.BookedInterval{{Interval: iv("10:00", 60)}, {Interval: iv("15:15", 20)}}

		res := calc.Calculate(monToSat(t), wednesday, 30, booked)

		for i := 1; i < len(res.Slots); i++ {
			assert.True(t, res.Slots[i-1].Before(res.Slots[i]))
		}
	})
}

func TestNewCalculator_DefaultStep(t *testing.T) {
	assert.Equal(t, availability.DefaultStepMinutes, availability.NewCalculator(0).StepMinutes())
}

func TestAdmissible(t *testing.T) {
	hours := monToSat(t)
	booked := []availability.BookedInterval{
		{Interval: iv("10:00", 30)},
		{Interval: iv("14:00", 30), Cancelled: true},
	}

	testCases := []struct {
		name  string
		date  time.Time
		iv    availability.Interval
		errIs error
	}{
		{name: "adjacent after booking", date: wednesday, iv: iv("10:30", 30)},
		{name: "adjacent before booking", date: wednesday, iv: iv("09:30", 30)},
		{name: "over cancelled booking", date: wednesday, iv: iv("14:00", 30)},
		{name: "ends exactly at close", date: wednesday, iv: iv("17:30", 30)},
		{name: "overlap", date: wednesday, iv: iv("10:15", 30), errIs: availability.ErrOverlap},
		{name: "closed day with no bookings", date: sunday, iv: iv("11:00", 30), errIs: availability.ErrClosedDay},
		{name: "crosses closing time", date: wednesday, iv: iv("17:45", 30), errIs: availability.ErrOutsideHours},
		{name: "before opening", date: wednesday, iv: iv("08:30", 30), errIs: availability.ErrOutsideHours},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := availability.Admissible(hours, tc.date, tc.iv, booked)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
