package components

import (
	"time"

	"shop-booking/internal/infra/readstore"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/usecase/queries"
	"shop-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewBookingLocation,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Shop
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ShopReadQueries)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// Dates in requests and the stored calendar day are read in this zone
func NewBookingLocation(policy shared.BookingPolicy) *time.Location {
	if policy.Location == nil {
		return time.UTC
	}
	return policy.Location
}
