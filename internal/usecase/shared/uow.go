package shared

import (
	"context"
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	sqlc "shop-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Shops() ShopRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ShopHoursByID(ctx context.Context, id uuid.UUID) (*ShopSnapshot, error)
	// BookedIntervals returns the shop's non-cancelled appointments that touch
	// [dayStart, dayEnd), positioned relative to dayStart.
	BookedIntervals(ctx context.Context, shopID uuid.UUID, dayStart, dayEnd time.Time) ([]availability.BookedInterval, error)
}

// Minimal snapshot for command read operations
type ShopSnapshot struct {
	ID    uuid.UUID
	Name  string
	Hours availability.ShopHours
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) error
	// LockShopDay serializes admissions for one shop and calendar day until the
	// surrounding transaction ends.
	LockShopDay(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, date time.Time) error
}

type ShopRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, name string, hours availability.ShopHours) (uuid.UUID, error)
	UpdateHours(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, hours availability.ShopHours) error
}
