package queries

import (
	"context"
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	"shop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

var (
	ErrShopNotFound     = errs.ErrShopNotFound
	ErrInvalidQuery     = errs.New("invalid availability query")
	ErrStoreUnavailable = errs.ErrStoreUnavailable
)

type ShopReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
}

type AvailabilityQueries interface {
	GetAvailableSlots(ctx context.Context, shopID uuid.UUID, date string, durationMinutes int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	shops        ShopReadStore
	appointments AppointmentReadStore
	calc         *availability.Calculator
	loc          *time.Location
	defaultDur   int
}

func NewAvailabilityQueries(shops ShopReadStore, appointments AppointmentReadStore, settings Settings) AvailabilityQueries {
	return &availabilityQueriesImpl{
		shops:        shops,
		appointments: appointments,
		calc:         availability.NewCalculator(settings.StepMinutes),
		loc:          settings.location(),
		defaultDur:   settings.DefaultDurationMinutes,
	}
}

func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, shopID uuid.UUID, date string, durationMinutes int) (*AvailabilityView, error) {
	day, err := availability.ParseDate(date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	if durationMinutes < 0 {
		return nil, errs.Mark(errs.New("duration must not be negative"), ErrInvalidQuery)
	}
	if durationMinutes == 0 {
		durationMinutes = q.defaultDur
	}

	shop, err := q.shops.FindByID(ctx, shopID)
	if err != nil {
		return nil, translateReadErr(err, ErrShopNotFound)
	}
	hours, err := availability.NewShopHoursFromClock(
		shop.WorkingDays,
		availability.WallClock(shop.OpenMinute),
		availability.WallClock(shop.CloseMinute),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view := &AvailabilityView{ShopID: shopID, Date: availability.FormatDate(day)}

	// Skip the appointment lookup entirely on days the shop does not work
	if !hours.IsWorkingDay(day.Weekday()) {
		res := q.calc.Calculate(hours, day, durationMinutes, nil)
		view.Slots = []string{}
		view.Message = res.Message()
		return view, nil
	}

	dayStart, dayEnd := availability.DayWindow(day)
	booked, err := q.appointments.FindBookedIntervals(ctx, shopID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	res := q.calc.Calculate(hours, day, durationMinutes, booked)
	view.Slots = make([]string, len(res.Slots))
	for i, s := range res.Slots {
		view.Slots[i] = s.String()
	}
	view.TotalSlots = res.TotalSlots
	view.Available = res.Available
	view.Message = res.Message()
	return view, nil
}

func translateReadErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrStoreUnavailable)
}
