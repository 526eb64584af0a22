package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	ch       channel
	conn     io.Closer
	exchange string
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
// Event types double as routing keys.
func NewAMQPPublisher(url, exchange string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return newAMQPPublisher(ch, conn, exchange), nil
}

func newAMQPPublisher(ch channel, conn io.Closer, exchange string) *amqpPublisher {
	return &amqpPublisher{ch: ch, conn: conn, exchange: exchange}
}

func (p *amqpPublisher) Publish(ctx context.Context, eventType string, data any) error {
	envelope := NewEnvelope(eventType, data)

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    envelope.ID.String(),
		Type:         eventType,
		Timestamp:    envelope.OccurredAt,
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, eventType, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	chErr := p.ch.Close()
	if p.conn == nil {
		return chErr
	}

	if err := p.conn.Close(); err != nil {
		return err
	}

	return chErr
}
