package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/coworking-space-booking/internal/logger"
)

// BookingConsumer appends every booking.confirmed message to
// <Dir>/booking.log in a single-line, human-friendly format.
type BookingConsumer struct {
    URL string
    Dir string
    Log *logger.Logger
}

// Run dials the broker, declares the queue (durable) and consumes until ctx
// is cancelled.  Broken connections are retried with exponential backoff
// capped at 30s.  Messages that cannot be handled are rejected without
// requeue so a poison message cannot spin the loop.
func (bc *BookingConsumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(bc.URL)
        if err != nil {
            bc.Log.Warn("booking-consumer: dial failed", "err", err, "retry_in", backoff.String())
            if !sleepCtx(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = bc.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        bc.Log.Warn("booking-consumer: consume loop ended, reconnecting", "err", err)
        if !sleepCtx(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (bc *BookingConsumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        bc.Log.Warn("booking-consumer: set QoS failed", "err", err)
    }
    if _, err := ch.QueueDeclare(BookingQueueName, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.ConsumeWithContext(ctx, BookingQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := bc.Handle(d.Body); err != nil {
            bc.Log.Error("booking-consumer: handle message failed", "err", err)
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

// Handle decodes one message body and appends it to the booking log.
func (bc *BookingConsumer) Handle(body []byte) error {
    var ev BookingConfirmedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if err := os.MkdirAll(bc.Dir, 0o755); err != nil {
        return fmt.Errorf("mkdir %s: %w", bc.Dir, err)
    }
    f, err := os.OpenFile(filepath.Join(bc.Dir, "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(FormatLogLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatLogLine renders an event as one booking.log line.
func FormatLogLine(ev BookingConfirmedEvent) string {
    return fmt.Sprintf("[%s] Booking confirmed | reference=%s | email=%q | plan=%q | date=%s | time=%q | seats=[%s] | total=%d VND\n",
        ev.ConfirmedAt, ev.Reference, ev.Email, ev.Plan, ev.Date, ev.TimeSlot, strings.Join(ev.SeatLabels, ","), ev.Total)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
