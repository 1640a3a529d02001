//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/clock"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/shared"
	"shop-booking/tests/common/builder"
	sharedmock "shop-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func testPolicy() shared.BookingPolicy {
	return shared.BookingPolicy{
		Location:               time.UTC,
		StepMinutes:            30,
		DefaultDurationMinutes: 30,
		SerializeAdmission:     true,
		NotifyTimeout:          time.Second,
	}
}

type bookingMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	appts    *sharedmock.MockAppointmentRepository
	notifier *sharedmock.MockNotifier
}

func newBookingMocks(ctrl *gomock.Controller) *bookingMocks {
	m := &bookingMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		appts:    sharedmock.NewMockAppointmentRepository(ctrl),
		notifier: sharedmock.NewMockNotifier(ctrl),
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Appointments().Return(m.appts).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

// expectTx runs the transactional closure against the mocked Tx.
func (m *bookingMocks) expectTx() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func (m *bookingMocks) expectShop(shop *shared.ShopSnapshot) {
	m.reads.EXPECT().ShopHoursByID(gomock.Any(), shop.ID).Return(shop, nil)
}

// expectNotify returns a channel that receives the dispatched event.
func (m *bookingMocks) expectNotify(err error) <-chan shared.AppointmentEvent {
	ch := make(chan shared.AppointmentEvent, 1)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e shared.AppointmentEvent) error {
			ch <- e
			return err
		})
	return ch
}

func waitEvent(t *testing.T, ch <-chan shared.AppointmentEvent) shared.AppointmentEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
		return shared.AppointmentEvent{}
	}
}

func booked(start string, minutes int, cancelled bool) availability.BookedInterval {
	return availability.BookedInterval{
		Interval:  availability.NewInterval(availability.MustParseWallClock(start), minutes),
		Cancelled: cancelled,
	}
}

func TestBookingCommands_Admit(t *testing.T) {
	shop := builder.NewShopBuilder().BuildSnapshot()

	newSUT := func(m *bookingMocks, policy shared.BookingPolicy) commands.BookingCommands {
		return commands.NewBookingCommands(m.uow, m.notifier, policy, clock.NewMockClock(testNow))
	}
	request := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().WithShopID(shop.ID)
	}

	t.Run("success: persists a pending appointment and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()

		dayStart := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
		var created *appointment.Appointment
		gomock.InOrder(
			m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), shop.ID, dayStart).Return(nil),
			m.reads.EXPECT().BookedIntervals(gomock.Any(), shop.ID, dayStart, dayStart.AddDate(0, 0, 1)).
				Return([]availability.BookedInterval{booked("09:00", 30, false)}, nil),
			m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
					created = a
					return a.ID(), nil
				}),
		)
		events := m.expectNotify(nil)

		res, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, created.ID(), res.AppointmentID)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, "2026-10-14", res.Date)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "10:30", res.EndTime)
		assert.Equal(t, 30, res.DurationMinutes)
		assert.Equal(t, "Sato Hanako", created.Customer().Name())

		e := waitEvent(t, events)
		assert.Equal(t, shared.EventAppointmentCreated, e.Type)
		assert.Equal(t, res.AppointmentID, e.AppointmentID)
		assert.Equal(t, shop.ID, e.ShopID)
		assert.Equal(t, time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC), e.StartsAt)
		assert.Equal(t, time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC), e.EndsAt)
		assert.Equal(t, testNow, e.OccurredAt)
	})

	t.Run("success: combined services are booked as one block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		events := m.expectNotify(nil)

		req := request().BuildCommand()
		req.ServiceID = nil
		req.Services = []commands.ServiceLine{
			{ServiceID: uuid.New(), DurationMinutes: 30},
			{ServiceID: uuid.New(), DurationMinutes: 60},
		}

		res, err := newSUT(m, testPolicy()).Admit(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 90, res.DurationMinutes)
		assert.Equal(t, "11:30", res.EndTime)
		waitEvent(t, events)
	})

	t.Run("success: missing duration falls back to the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		events := m.expectNotify(nil)

		res, err := newSUT(m, testPolicy()).Admit(context.Background(), request().WithSlot("10:00", 0).BuildCommand())
		require.NoError(t, err)
		assert.Equal(t, 30, res.DurationMinutes)
		waitEvent(t, events)
	})

	t.Run("success: adjacent and cancelled bookings do not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]availability.BookedInterval{
				booked("09:30", 30, false),
				booked("10:30", 30, false),
				booked("10:00", 60, true),
			}, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		events := m.expectNotify(nil)

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		require.NoError(t, err)
		waitEvent(t, events)
	})

	t.Run("success: notification failure does not undo the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		events := m.expectNotify(errors.New("broker down"))

		res, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.AppointmentID)
		waitEvent(t, events)
	})

	t.Run("success: admission lock is skipped when serialization is off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		events := m.expectNotify(nil)

		policy := testPolicy()
		policy.SerializeAdmission = false
		_, err := newSUT(m, policy).Admit(context.Background(), request().BuildCommand())
		require.NoError(t, err)
		waitEvent(t, events)
	})

	t.Run("error: missing fields are all reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), commands.AdmitBookingRequest{})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrMissingFields))
		for _, f := range []string{"shopId", "name", "phone", "serviceId", "date", "startTime"} {
			assert.Contains(t, err.Error(), f)
		}
	})

	t.Run("error: malformed input", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
		}{
			{name: "date not YYYY-MM-DD", mutate: func(b *builder.BookingBuilder) { b.WithDate("14/10/2026") }},
			{name: "impossible date", mutate: func(b *builder.BookingBuilder) { b.WithDate("2026-02-30") }},
			{name: "time not HH:mm", mutate: func(b *builder.BookingBuilder) { b.WithSlot("9:00", 30) }},
			{name: "start at 24:00", mutate: func(b *builder.BookingBuilder) { b.WithSlot("24:00", 30) }},
			{name: "negative duration", mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:00", -30) }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := newBookingMocks(ctrl)

				_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().With(tc.mutate).BuildCommand())
				assert.True(t, errs.Is(err, commands.ErrInvalidBookingRequest), "got %v", err)
			})
		}
	})

	t.Run("error: unknown shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.reads.EXPECT().ShopHoursByID(gomock.Any(), shop.ID).
			Return(nil, infra.WrapRepoErr("shop not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrShopNotFound))
	})

	t.Run("error: shop lookup failure is reported as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.reads.EXPECT().ShopHoursByID(gomock.Any(), shop.ID).
			Return(nil, infra.WrapRepoErr("failed to load shop", errors.New("connection refused")))

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
	})

	t.Run("error: closed day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)

		// Sunday
		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().WithDate("2026-10-18").BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrShopClosed))
	})

	t.Run("error: outside business hours", func(t *testing.T) {
		for _, slot := range []struct {
			start   string
			minutes int
		}{{"08:30", 30}, {"17:45", 30}, {"17:00", 120}} {
			t.Run(slot.start, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := newBookingMocks(ctrl)
				m.expectShop(shop)

				_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().WithSlot(slot.start, slot.minutes).BuildCommand())
				assert.True(t, errs.Is(err, commands.ErrOutsideBusinessHours))
			})
		}
	})

	t.Run("error: overlapping booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]availability.BookedInterval{booked("10:15", 30, false)}, nil)

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrSlotConflict))
	})

	t.Run("error: exclusion constraint violation maps to slot conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create appointment", &pgconn.PgError{Code: "23P01"}))

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrSlotConflict))
	})

	t.Run("error: shop deleted during admission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().BookedIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create appointment", &pgconn.PgError{Code: "23503"}))

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrShopNotFound))
	})

	t.Run("error: store failure inside the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)
		m.expectShop(shop)
		m.expectTx()
		m.appts.EXPECT().LockShopDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to lock shop day", errors.New("timeout")))

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
		assert.False(t, errs.Is(err, commands.ErrSlotConflict))
	})

	t.Run("error: blank customer name is a missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newBookingMocks(ctrl)

		_, err := newSUT(m, testPolicy()).Admit(context.Background(), request().WithCustomer("  ", "090").BuildCommand())
		assert.True(t, errs.Is(err, commands.ErrMissingFields))
		assert.True(t, strings.Contains(err.Error(), "name"))
	})
}
