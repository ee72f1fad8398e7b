// Package events publishes cart lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental-cart/internal/pkg/config"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase/shared"

	"github.com/IBM/sarama"
)

const EventTypeCartSubmitted = "CartSubmitted"

// KafkaPublisher writes submission events to a single topic, keyed by
// session so one visitor's events stay ordered.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ shared.SubmissionPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.EventsConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	sc := sarama.NewConfig()
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = cfg.Retries
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return NewKafkaPublisherWithProducer(producer, cfg.Topic, logger), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishSubmitted(ctx context.Context, event shared.SubmittedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal submitted event")
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.SessionID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(EventTypeCartSubmitted)},
			{Key: []byte("event-id"), Value: []byte(event.EventID.String())},
			{Key: []byte("timestamp"), Value: []byte(event.SubmittedAt.UTC().Format(time.RFC3339))},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errs.Wrap(err, "failed to publish submitted event")
	}

	p.logger.InfoContext(ctx, "event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"event_type", EventTypeCartSubmitted,
		"reservation_id", event.ReservationID,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
