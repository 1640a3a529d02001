package commands

import (
	"context"
	"log/slog"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/infra"
	"shop-booking/internal/pkg/clock"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/commands/appointment_mock.go -package=commandsmock

var (
	ErrAppointmentNotFound     = errs.ErrAppointmentNotFound
	ErrInvalidStatusTransition = errs.New("appointment cannot change to the requested status")
)

type AppointmentCommands interface {
	Cancel(ctx context.Context, id uuid.UUID) error
	Confirm(ctx context.Context, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "cancel", func(a *appointment.Appointment) error {
		return a.Cancel(uc.clock.Now())
	})
}

func (uc *appointmentUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "confirm", func(a *appointment.Appointment) error {
		return a.Confirm(uc.clock.Now())
	})
}

func (uc *appointmentUseCaseImpl) transition(ctx context.Context, id uuid.UUID, action string, apply func(*appointment.Appointment) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, ferr := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if ferr != nil {
			return ferr
		}
		if aerr := apply(appt); aerr != nil {
			return errs.Mark(aerr, ErrInvalidStatusTransition)
		}
		return tx.Appointments().UpdateStatus(ctx, tx.DB(), appt)
	})
	if err == nil {
		slog.Info("appointment status changed", "appointment_id", id, "action", action)
		return nil
	}

	switch {
	case errs.Is(err, ErrInvalidStatusTransition):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrAppointmentNotFound)
	default:
		return errs.Mark(err, ErrStoreUnavailable)
	}
}
