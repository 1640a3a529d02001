package queries

import (
	"context"
	"time"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment_mock.go -package=queriesmock

var ErrAppointmentNotFound = errs.ErrAppointmentNotFound

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByShopDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*AppointmentView, error)
	FindBookedIntervals(ctx context.Context, shopID uuid.UUID, dayStart, dayEnd time.Time) ([]availability.BookedInterval, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByShopDate(ctx context.Context, shopID uuid.UUID, date string) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentReadStore
	loc  *time.Location
}

func NewAppointmentQueries(repo AppointmentReadStore, settings Settings) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo, loc: settings.location()}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, ErrAppointmentNotFound)
	}
	return v, nil
}

func (q *appointmentQueriesImpl) ListByShopDate(ctx context.Context, shopID uuid.UUID, date string) ([]*AppointmentView, error) {
	day, err := availability.ParseDate(date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	rows, err := q.repo.FindByShopDate(ctx, shopID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return rows, nil
}
