package readstore

import (
	"context"
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/pgconv"
	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/readstore/appointment_mock.go -package=readstoremock

type AppointmentReadQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	ListAppointmentsByShopDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByShopDateParams) ([]sqlc.Appointments, error)
	ListBookedIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedIntervalsParams) ([]sqlc.ListBookedIntervalsRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX, loc *time.Location) *AppointmentReadStore {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment by id", err)
	}
	return r.toView(row), nil
}

func (r *AppointmentReadStore) FindByShopDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByShopDate(ctx, r.db, sqlc.ListAppointmentsByShopDateParams{
		ShopID:          shopID,
		AppointmentDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by shop and date", err)
	}

	views := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, r.toView(row))
	}
	return views, nil
}

// FindBookedIntervals positions each non-cancelled appointment overlapping
// [dayStart, dayEnd) on the wall clock of dayStart.
func (r *AppointmentReadStore) FindBookedIntervals(ctx context.Context, shopID uuid.UUID, dayStart, dayEnd time.Time) ([]availability.BookedInterval, error) {
	rows, err := r.queries.ListBookedIntervals(ctx, r.db, sqlc.ListBookedIntervalsParams{
		ShopID:   shopID,
		DayStart: pgconv.TimeToPgtype(dayStart),
		DayEnd:   pgconv.TimeToPgtype(dayEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked intervals", err)
	}

	booked := make([]availability.BookedInterval, 0, len(rows))
	for _, row := range rows {
		booked = append(booked, availability.BookedAt(
			dayStart,
			pgconv.TimeFromPgtype(row.StartsAt),
			int(row.DurationMinutes),
			row.Status == "cancelled",
		))
	}
	return booked, nil
}

func (r *AppointmentReadStore) toView(row sqlc.Appointments) *queries.AppointmentView {
	date := pgconv.DateFromPgtype(row.AppointmentDate, r.loc)
	iv := availability.NewInterval(availability.WallClock(row.StartMinute), int(row.DurationMinutes))

	var note *string
	if row.Note != "" {
		n := row.Note
		note = &n
	}

	return &queries.AppointmentView{
		ID:              row.ID,
		ShopID:          row.ShopID,
		ServiceIDs:      row.ServiceIds,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerEmail:   pgconv.StringPtrFromPgtype(row.CustomerEmail),
		Date:            availability.FormatDate(date),
		StartTime:       iv.Start.String(),
		EndTime:         iv.End().String(),
		DurationMinutes: iv.Duration(),
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:          pgconv.TimeFromPgtype(row.EndsAt),
		Status:          row.Status,
		Note:            note,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
