//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shop-booking/internal/handler/dto/request"
	"shop-booking/internal/handler/dto/response"
	"shop-booking/tests/common/builder"
	"shop-booking/tests/common/dbtest"
	"shop-booking/tests/common/httptest"
	"shop-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	shopsURL        = "/api/shops"
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/shops/%s/availability?date=%s"
	appointmentURL  = "/api/appointments/%s"
	cancelURL       = "/api/appointments/%s/cancel"

	// Wednesday and Sunday
	workingDay = "2026-10-14"
	closedDay  = "2026-10-18"
)

var mondayToSaturday = []int16{1, 2, 3, 4, 5, 6}

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func bookingRequest(shopID uuid.UUID, start string, minutes int) request.CreateBookingRequest {
	return builder.NewBookingBuilder().
		WithShopID(shopID).
		WithDate(workingDay).
		WithSlot(start, minutes).
		BuildRequestDTO()
}

// =============================================================================
// TestShopLifecycle
// =============================================================================

func (s *BookingSuite) TestShopLifecycle() {
	s.Run("Normal case: registered shop is readable with its hours", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, builder.NewShopBuilder().BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreatedShopResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, shopsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ShopResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		expected := &response.ShopResponse{
			ID:          created.ID,
			Name:        "Barber Kanda",
			WorkingDays: []int{1, 2, 3, 4, 5, 6},
			OpenTime:    "09:00",
			CloseTime:   "18:00",
		}
		opts := []cmp.Option{cmpopts.IgnoreFields(response.ShopResponse{}, "UpdatedAt")}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Shop response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: patched hours keep unspecified fields", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Patch Shop", mondayToSaturday, 540, 1080)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, shopsURL+"/"+shopID.String()+"/hours",
			map[string]any{"closeTime": "20:00"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ShopResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "09:00", actual.OpenTime)
		require.Equal(t, "20:00", actual.CloseTime)
		require.Equal(t, []int{1, 2, 3, 4, 5, 6}, actual.WorkingDays)
	})

	s.Run("Error case: close before open is rejected", func() {
		t := s.T()
		reqBody := builder.NewShopBuilder().WithHours("18:00", "09:00").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shopsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid shop settings")
	})
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: booked interval is removed from the grid", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Grid Shop", mondayToSaturday, 540, 1080)
		dbtest.CreateTestAppointment(t, s.DB, shopID, time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC), 60, "confirmed")
		dbtest.CreateTestAppointment(t, s.DB, shopID, time.Date(2026, 10, 14, 14, 0, 0, 0, time.UTC), 30, "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, shopID, workingDay), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, 18, actual.TotalSlots)
		require.Equal(t, 16, actual.Available)
		require.NotContains(t, actual.Slots, "10:00")
		require.NotContains(t, actual.Slots, "10:30")
		require.Contains(t, actual.Slots, "11:00")
		require.Contains(t, actual.Slots, "14:00")
	})

	s.Run("Normal case: closed day returns no slots and a message", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Closed Sunday", mondayToSaturday, 540, 1080)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, shopID, closedDay), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Empty(t, actual.Slots)
		require.Equal(t, "Shop is closed on this day", actual.Message)
	})

	s.Run("Error case: unknown shop", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, uuid.New(), workingDay), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Shop not found")
	})
}

// =============================================================================
// TestBooking
// =============================================================================

func (s *BookingSuite) TestBooking() {
	s.Run("Normal case: booking is stored as pending", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Booking Shop", mondayToSaturday, 540, 1080)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "10:00", 60))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &response.BookingResponse{
			Status:          "pending",
			Date:            workingDay,
			StartTime:       "10:00",
			EndTime:         "11:00",
			DurationMinutes: 60,
		}
		opts := []cmp.Option{cmpopts.IgnoreFields(response.BookingResponse{}, "AppointmentID")}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(appointmentURL, created.AppointmentID), nil)
		require.Equal(t, http.StatusOK, dw.Code)
		require.Equal(t, 1, dbtest.CountActiveAppointments(t, s.DB, shopID))
	})

	s.Run("Error case: overlapping booking is rejected", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Overlap Shop", mondayToSaturday, 540, 1080)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "10:00", 60))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "10:30", 30))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer available")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "11:00", 30))
		require.Equal(t, http.StatusCreated, w.Code, "adjacent booking should be admitted")
	})

	s.Run("Error case: closed day and outside hours", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Hours Shop", mondayToSaturday, 540, 1080)

		sunday := builder.NewBookingBuilder().WithShopID(shopID).WithDate(closedDay).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, sunday)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "closed")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "17:30", 60))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "outside business hours")
	})

	s.Run("Error case: missing fields are reported together", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields")
	})
}

// =============================================================================
// TestConcurrentAdmission
// =============================================================================

func (s *BookingSuite) TestConcurrentAdmission() {
	s.Run("Normal case: only one of many simultaneous requests wins the slot", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Busy Shop", mondayToSaturday, 540, 1080)

		const attempts = 10
		codes := make([]int, attempts)
		var g errgroup.Group
		for i := range attempts {
			g.Go(func() error {
				reqBody := builder.NewBookingBuilder().
					WithShopID(shopID).
					WithDate(workingDay).
					WithSlot("13:00", 60).
					WithCustomer(fmt.Sprintf("Customer %d", i), "090-0000-0000").
					BuildRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
				codes[i] = w.Code
				return nil
			})
		}
		require.NoError(t, g.Wait())

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicted, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountActiveAppointments(t, s.DB, shopID))
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *BookingSuite) TestCancel() {
	s.Run("Normal case: cancelled booking frees its slot", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cancel Shop", mondayToSaturday, 540, 1080)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "15:00", 30))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.AppointmentID), nil)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var cancelled response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(shopID, "15:00", 30))
		require.Equal(t, http.StatusCreated, w.Code, "slot should be bookable again")
	})

	s.Run("Error case: cancelling twice conflicts", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Twice Shop", mondayToSaturday, 540, 1080)
		apptID := dbtest.CreateTestAppointment(t, s.DB, shopID, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), 30, "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, apptID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "cannot change")
	})
}
