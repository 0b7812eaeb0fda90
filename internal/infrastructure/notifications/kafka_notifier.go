package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"instacar/internal/domain/entities"
	"instacar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const defaultNotificationsTopic = "quote-notifications"

// envelope is the wire format consumed by the notification sender.
type envelope struct {
	EventID    string                `json:"event_id"`
	EventType  string                `json:"event_type"`
	OccurredAt time.Time             `json:"occurred_at"`
	Producer   string                `json:"producer"`
	Payload    entities.Notification `json:"payload"`
}

// KafkaNotifier publishes notification requests to a Kafka topic.
//
// The writer runs async: Notify hands the message to the writer's
// buffer and returns; delivery errors surface in the writer's error
// logger, not to the caller. Retry and fan-out (customer email vs.
// admin alert) belong to the consumer.

type KafkaNotifier struct {
	w *kafka.Writer
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	if topic == "" {
		topic = defaultNotificationsTopic
	}
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				log.Printf("[notify][kafka] "+msg, args...)
			}),
		},
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, notif entities.Notification) error {
	b, err := json.Marshal(envelope{
		EventID:    uuid.NewString(),
		EventType:  string(notif.Kind),
		OccurredAt: time.Now().UTC(),
		Producer:   "quote-api",
		Payload:    notif,
	})
	if err != nil {
		return err
	}
	// Keyed by quote id so one quote's events stay ordered per partition.
	return n.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notif.QuoteID),
		Value: b,
	})
}

func (n *KafkaNotifier) Close() error {
	return n.w.Close()
}
