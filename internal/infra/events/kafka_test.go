//go:build unit

package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental-cart/internal/infra/events"
	"rental-cart/internal/usecase/shared"
	"rental-cart/tests/common/testutil"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedEvent() shared.SubmittedEvent {
	return shared.SubmittedEvent{
		EventID:       uuid.New(),
		SessionID:     "session-1",
		ReservationID: 42,
		Reference:     "DEV-2025-0042",
		AutoValidate:  false,
		LineCount:     1,
		TotalItems:    2,
		TotalAmount:   decimal.RequireFromString("93"),
		SubmittedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_PublishSubmitted(t *testing.T) {
	t.Run("sends the event as JSON", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		event := submittedEvent()
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got map[string]any
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			if got["reference"] != "DEV-2025-0042" || got["sessionId"] != "session-1" {
				return errors.New("unexpected payload: " + string(val))
			}
			return nil
		})
		p := events.NewKafkaPublisherWithProducer(producer, "cart.submitted", testutil.DiscardLogger())

		require.NoError(t, p.PublishSubmitted(context.Background(), event))
		require.NoError(t, p.Close())
	})

	t.Run("message is keyed by session with event headers", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		event := submittedEvent()
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			key, err := msg.Key.Encode()
			if err != nil {
				return err
			}
			assert.Equal(t, "cart.submitted", msg.Topic)
			assert.Equal(t, "session-1", string(key))
			headers := map[string]string{}
			for _, h := range msg.Headers {
				headers[string(h.Key)] = string(h.Value)
			}
			assert.Equal(t, events.EventTypeCartSubmitted, headers["event-type"])
			assert.Equal(t, event.EventID.String(), headers["event-id"])
			assert.Equal(t, "2025-03-01T10:00:00Z", headers["timestamp"])
			return nil
		})
		p := events.NewKafkaPublisherWithProducer(producer, "cart.submitted", testutil.DiscardLogger())

		require.NoError(t, p.PublishSubmitted(context.Background(), event))
		require.NoError(t, p.Close())
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
		p := events.NewKafkaPublisherWithProducer(producer, "cart.submitted", testutil.DiscardLogger())

		err := p.PublishSubmitted(context.Background(), submittedEvent())

		assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
		require.NoError(t, p.Close())
	})

	t.Run("cancelled context sends nothing", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		p := events.NewKafkaPublisherWithProducer(producer, "cart.submitted", testutil.DiscardLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.PublishSubmitted(ctx, submittedEvent())

		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, p.Close())
	})
}

func TestNopPublisher(t *testing.T) {
	var p events.NopPublisher
	assert.NoError(t, p.PublishSubmitted(context.Background(), submittedEvent()))
	assert.NoError(t, p.Close())
}
