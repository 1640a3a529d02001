package bootstrap

import (
	"log/slog"

	"shop-booking/internal/handler/middleware"
	"shop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger also installs the logger as the slog default so that
// usecases and repositories logging through slog share its handler.
func NewLogger(cfg config.Config) *middleware.Logger {
	l := middleware.NewLogger(cfg.Log)
	slog.SetDefault(l.GetSlogLogger())
	return l
}
