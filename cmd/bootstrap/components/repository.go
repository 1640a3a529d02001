package components

import (
	"shop-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
