package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"shop-booking/internal/pkg/config"
	"shop-booking/internal/usecase/shared"
)

const (
	DriverLog   = "log"
	DriverRedis = "redis"
	DriverKafka = "kafka"
)

// Dispatcher is the Notifier handed to usecases. Close releases the
// underlying client and is called once on shutdown.
type Dispatcher interface {
	shared.Notifier
	Close() error
}

func New(cfg config.NotifyConfig, logger *slog.Logger) (Dispatcher, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLog:
		return NewLogNotifier(logger), nil
	case DriverRedis:
		return NewRedisNotifier(cfg.Redis), nil
	case DriverKafka:
		n, err := NewKafkaNotifier(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", cfg.Driver)
	}
}

func encode(event shared.AppointmentEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return payload, nil
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event shared.AppointmentEvent) error {
	n.logger.InfoContext(ctx, "booking notification",
		"type", event.Type,
		"appointment_id", event.AppointmentID,
		"shop_id", event.ShopID,
		"customer_phone", event.CustomerPhone,
		"starts_at", event.StartsAt,
		"ends_at", event.EndsAt)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
