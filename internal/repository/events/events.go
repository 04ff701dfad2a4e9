package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	eventVersion = 1

	// одно сообщение на запрос: пачка не копится, повторов нет
	batchSize    = 1
	batchTimeout = 10 * time.Millisecond
	maxAttempts  = 1
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Key          string          `json:"key"`
	Payload      json.RawMessage `json:"payload"`
}

// Publisher - синхронная публикация событий заказов, ключ партиции = folio или id станции
type Publisher struct {
	w        *kafka.Writer
	producer string
}

func New(brokers []string, topic, producer string) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchSize:    batchSize,
			BatchTimeout: batchTimeout,
			MaxAttempts:  maxAttempts,
		},
		producer: producer,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	env, err := newEnvelope(p.producer, eventType, key, payload, time.Now())
	if err != nil {
		return err
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	return nil
}

func (p *Publisher) Shutdown() error {
	return p.w.Close()
}

func newEnvelope(producer, eventType, key string, payload any, now time.Time) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode payload %s: %w", eventType, err)
	}

	return Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: eventVersion,
		OccurredAt:   now.UTC(),
		Producer:     producer,
		Key:          key,
		Payload:      raw,
	}, nil
}

// Nop - публикация отключена
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }

func (Nop) Shutdown() error { return nil }
