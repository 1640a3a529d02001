package commands

import (
	"context"
	"log/slog"
	"strings"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	"shop-booking/internal/pkg/clock"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

var (
	ErrMissingFields         = errs.New("missing required fields")
	ErrInvalidBookingRequest = errs.New("invalid booking request")
	ErrShopNotFound          = errs.ErrShopNotFound
	ErrShopClosed            = errs.New("shop does not take bookings on this day")
	ErrOutsideBusinessHours  = errs.New("requested time is outside business hours")
	ErrSlotConflict          = errs.New("requested time slot is already booked")
	ErrStoreUnavailable      = errs.ErrStoreUnavailable
)

type ServiceLine struct {
	ServiceID       uuid.UUID
	DurationMinutes int
}

type AdmitBookingRequest struct {
	ShopID          uuid.UUID
	Date            string // YYYY-MM-DD in the shop's local time
	StartTime       string // HH:mm
	DurationMinutes int
	ServiceID       *uuid.UUID
	// Services books several services back to back; their durations are summed
	Services      []ServiceLine
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Note          string
}

type AdmitBookingResult struct {
	AppointmentID   uuid.UUID
	Status          string
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int
}

type BookingCommands interface {
	Admit(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	policy   shared.BookingPolicy
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, notifier shared.Notifier, policy shared.BookingPolicy, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		policy:   policy,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) Admit(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error) {
	if missing := req.missingFields(); len(missing) > 0 {
		return nil, errs.Mark(errs.New("missing: "+strings.Join(missing, ", ")), ErrMissingFields)
	}

	appt, err := uc.buildAppointment(req)
	if err != nil {
		return nil, err
	}

	shop, err := uc.loadShop(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}
	if !shop.Hours.IsWorkingDay(appt.Date().Weekday()) {
		return nil, ErrShopClosed
	}
	if !shop.Hours.Contains(appt.Interval()) {
		return nil, ErrOutsideBusinessHours
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uc.policy.SerializeAdmission {
			if lerr := tx.Appointments().LockShopDay(ctx, tx.DB(), appt.ShopID(), appt.Date()); lerr != nil {
				return lerr
			}
		}

		dayStart, dayEnd := availability.DayWindow(appt.Date())
		booked, rerr := tx.Reads().BookedIntervals(ctx, appt.ShopID(), dayStart, dayEnd)
		if rerr != nil {
			return rerr
		}

		iv := appt.Interval()
		if availability.Overlaps(iv.Start, iv.Duration(), availability.ActiveIntervals(booked)) {
			return ErrSlotConflict
		}

		_, cerr := tx.Appointments().Create(ctx, tx.DB(), appt)
		return cerr
	})
	if err != nil {
		return nil, uc.admissionError(req, err)
	}

	slog.Info("booking admitted",
		"appointment_id", appt.ID(),
		"shop_id", appt.ShopID(),
		"date", req.Date,
		"slot", appt.Interval().String())

	uc.dispatchCreated(ctx, appt)

	iv := appt.Interval()
	return &AdmitBookingResult{
		AppointmentID:   appt.ID(),
		Status:          appt.Status().String(),
		Date:            availability.FormatDate(appt.Date()),
		StartTime:       iv.Start.String(),
		EndTime:         iv.End().String(),
		DurationMinutes: iv.Duration(),
	}, nil
}

func (r AdmitBookingRequest) missingFields() []string {
	var missing []string
	if r.ShopID == uuid.Nil {
		missing = append(missing, "shopId")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.CustomerPhone) == "" {
		missing = append(missing, "phone")
	}
	if r.ServiceID == nil && len(r.Services) == 0 {
		missing = append(missing, "serviceId")
	}
	if strings.TrimSpace(r.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(r.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	return missing
}

func (uc *bookingUseCaseImpl) buildAppointment(req AdmitBookingRequest) (*appointment.Appointment, error) {
	date, err := availability.ParseDate(req.Date, uc.policy.Location)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	start, err := availability.ParseWallClock(req.StartTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	if start.Minutes() >= 24*60 {
		return nil, errs.Mark(errs.New("start time must be before 24:00"), ErrInvalidBookingRequest)
	}

	services, err := uc.serviceLines(req)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	customer, err := appointment.NewCustomer(req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	appt, err := appointment.NewAppointment(uc.clock, req.ShopID, date, start, services, customer, appointment.NewNote(req.Note))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	return appt, nil
}

func (uc *bookingUseCaseImpl) serviceLines(req AdmitBookingRequest) (appointment.Services, error) {
	if len(req.Services) > 0 {
		lines := make([]appointment.ServiceLine, 0, len(req.Services))
		for _, s := range req.Services {
			lines = append(lines, appointment.ServiceLine{ServiceID: s.ServiceID, DurationMinutes: s.DurationMinutes})
		}
		return appointment.NewServices(lines...)
	}

	if req.DurationMinutes < 0 {
		return nil, appointment.ErrInvalidDuration
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.policy.DefaultDurationMinutes
	}
	return appointment.NewServices(appointment.ServiceLine{ServiceID: *req.ServiceID, DurationMinutes: duration})
}

func (uc *bookingUseCaseImpl) loadShop(ctx context.Context, shopID uuid.UUID) (*shared.ShopSnapshot, error) {
	shop, err := uc.uow.CommandReads().ShopHoursByID(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return shop, nil
}

func (uc *bookingUseCaseImpl) admissionError(req AdmitBookingRequest, err error) error {
	switch {
	case errs.Is(err, ErrSlotConflict), infra.IsKind(err, infra.KindConflict):
		slog.Warn("booking rejected: slot conflict",
			"shop_id", req.ShopID,
			"date", req.Date,
			"start_time", req.StartTime)
		if errs.Is(err, ErrSlotConflict) {
			return err
		}
		return errs.Mark(err, ErrSlotConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrShopNotFound)
	default:
		return errs.Mark(err, ErrStoreUnavailable)
	}
}

// dispatchCreated runs after commit; the booking stands whatever happens here.
func (uc *bookingUseCaseImpl) dispatchCreated(ctx context.Context, appt *appointment.Appointment) {
	event := shared.AppointmentEvent{
		Type:          shared.EventAppointmentCreated,
		AppointmentID: appt.ID(),
		ShopID:        appt.ShopID(),
		CustomerName:  appt.Customer().Name(),
		CustomerPhone: appt.Customer().Phone(),
		CustomerEmail: appt.Customer().Email(),
		Status:        appt.Status().String(),
		StartsAt:      appt.StartAt(),
		EndsAt:        appt.EndAt(),
		OccurredAt:    uc.clock.Now(),
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.policy.NotifyTimeout)
	go func() {
		defer cancel()
		if err := uc.notifier.Notify(nctx, event); err != nil {
			slog.Warn("failed to dispatch booking notification",
				"appointment_id", event.AppointmentID,
				"error", err.Error())
		}
	}()
}
