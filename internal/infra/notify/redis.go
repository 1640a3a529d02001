package notify

import (
	"context"

	"shop-booking/internal/pkg/config"
	"shop-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const redisStreamMaxLen = 100_000

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisNotifier appends events to a Redis stream for a delivery worker.
type RedisNotifier struct {
	client streamAdder
	closer func() error
	stream string
}

func NewRedisNotifier(cfg config.RedisConfig) *RedisNotifier {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisNotifier{client: rdb, closer: rdb.Close, stream: cfg.Stream}
}

func NewRedisNotifierWithClient(client streamAdder, stream string) *RedisNotifier {
	return &RedisNotifier{client: client, closer: func() error { return nil }, stream: stream}
}

func (n *RedisNotifier) Notify(ctx context.Context, event shared.AppointmentEvent) error {
	payload, err := encode(event)
	if err != nil {
		return err
	}
	return n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: redisStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			"type":           event.Type,
			"appointment_id": event.AppointmentID.String(),
			"payload":        string(payload),
		},
	}).Err()
}

func (n *RedisNotifier) Close() error {
	return n.closer()
}
