package repository

import (
	"context"
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	"shop-booking/internal/infra/repository/converter"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/repository/appointment_mock.go -package=repositorymock

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	LockShopDay(ctx context.Context, db sqlc.DBTX, key string) error
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	loc     *time.Location
}

func NewAppointmentRepository(queries AppointmentWriteQueries, loc *time.Location) *AppointmentRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentRepository{
		queries: queries,
		loc:     loc,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	params := converter.AppointmentToCreateParams(appt)
	id, err := r.queries.CreateAppointment(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	appt, err := converter.AppointmentFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment row", err, infra.KindDBFailure)
	}
	return appt, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) error {
	params := sqlc.UpdateAppointmentStatusParams{
		ID:        appt.ID(),
		Status:    appt.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(appt.UpdatedAt()),
	}
	affected, err := r.queries.UpdateAppointmentStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) LockShopDay(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, date time.Time) error {
	if err := r.queries.LockShopDay(ctx, tx, DayLockKey(shopID, date)); err != nil {
		return infra.WrapRepoErr("failed to take shop day lock", err)
	}
	return nil
}

// DayLockKey names the advisory lock guarding one shop's calendar day.
func DayLockKey(shopID uuid.UUID, date time.Time) string {
	return "booking:" + shopID.String() + ":" + availability.FormatDate(date)
}
