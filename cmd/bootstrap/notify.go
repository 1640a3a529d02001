package bootstrap

import (
	"context"
	"log/slog"

	"shop-booking/internal/infra/notify"
	"shop-booking/internal/pkg/config"
	"shop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	dispatcher, err := notify.New(cfg.Notify, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("notification dispatcher initialized", "driver", cfg.Notify.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return dispatcher.Close()
		},
	})
	return dispatcher, nil
}
