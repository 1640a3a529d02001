package notify

import (
	"context"
	"errors"
	"strings"

	"shop-booking/internal/pkg/config"
	"shop-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

var errNoBrokers = errors.New("kafka notifier requires at least one broker")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes events keyed by shop so one shop's events stay ordered.
type KafkaNotifier struct {
	writer messageWriter
	topic  string
}

func NewKafkaNotifier(cfg config.KafkaConfig) (*KafkaNotifier, error) {
	var brokers []string
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errNoBrokers
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Balancer: &kafka.Hash{},
	})
	return &KafkaNotifier{writer: writer, topic: cfg.Topic}, nil
}

func NewKafkaNotifierWithWriter(writer messageWriter, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, topic: topic}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event shared.AppointmentEvent) error {
	payload, err := encode(event)
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, kafka.Message{
		Topic: n.topic,
		Key:   []byte(event.ShopID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.AppointmentID.String())},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
