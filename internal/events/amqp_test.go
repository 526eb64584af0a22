package events

import (
	"context"
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	t.Run("Success - routes by event type", func(t *testing.T) {
		// Arrange
		ch := &fakeChannel{}
		publisher := newAMQPPublisher(ch, nil, "pos.events")

		// Act
		err := publisher.Publish(t.Context(), SaleCompleted, map[string]string{"number": "S-1"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pos.events", ch.exchange)
		assert.Equal(t, SaleCompleted, ch.key)
		assert.Equal(t, "application/json", ch.msg.ContentType)
		assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

		var envelope struct {
			ID   string            `json:"id"`
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(ch.msg.Body, &envelope))
		assert.Equal(t, SaleCompleted, envelope.Type)
		assert.Equal(t, ch.msg.MessageId, envelope.ID)
		assert.Equal(t, "S-1", envelope.Data["number"])
	})

	t.Run("Failure - broker rejects", func(t *testing.T) {
		ch := &fakeChannel{err: amqp.ErrClosed}
		publisher := newAMQPPublisher(ch, nil, "pos.events")

		err := publisher.Publish(t.Context(), GRNReceived, nil)

		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("Failure - unmarshalable payload", func(t *testing.T) {
		publisher := newAMQPPublisher(&fakeChannel{}, nil, "pos.events")

		err := publisher.Publish(t.Context(), GRNReceived, make(chan int))

		assert.Error(t, err)
	})
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}

	require.NoError(t, newAMQPPublisher(ch, nil, "pos.events").Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()

	assert.NoError(t, p.Publish(t.Context(), SaleCompleted, nil))
	assert.NoError(t, p.Close())
}
