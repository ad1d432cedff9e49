// Package service holds the outbound integrations of the booking flow.
// Errors are logged and returned so callers can decide to carry on without
// interrupting the request.
package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/coworking-space-booking/internal/logger"
    q "github.com/iliyamo/coworking-space-booking/internal/queue"
)

// BookingPublisher announces confirmed bookings.
type BookingPublisher interface {
    PublishBookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error
}

// RabbitPublisher publishes to the booking.confirmed queue on RabbitMQ.
// Each call opens its own connection; confirmations are rare enough that a
// pooled connection is not worth the reconnect handling.
type RabbitPublisher struct {
    URL string
    Log *logger.Logger
}

func NewRabbitPublisher(url string, log *logger.Logger) *RabbitPublisher {
    return &RabbitPublisher{URL: url, Log: log}
}

// PublishBookingConfirmed publishes event as a persistent JSON message.
func (p *RabbitPublisher) PublishBookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error {
    conn, err := amqp.Dial(p.URL)
    if err != nil {
        p.Log.Error("rabbitmq: dial failed", "err", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.Log.Error("rabbitmq: channel open failed", "err", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        q.BookingQueueName, // name
        true,               // durable
        false,              // autoDelete
        false,              // exclusive
        false,              // noWait
        nil,                // args
    ); err != nil {
        p.Log.Error("rabbitmq: queue declare failed", "err", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        p.Log.Error("rabbitmq: marshal event failed", "err", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        MessageId:    event.Reference,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", q.BookingQueueName, false, false, pub); err != nil {
        p.Log.Error("rabbitmq: publish failed", "err", err, "reference", event.Reference)
        return err
    }
    p.Log.Info("booking event published", "reference", event.Reference)
    return nil
}
