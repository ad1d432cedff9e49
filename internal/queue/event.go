// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// BookingQueueName is the durable queue carrying confirmed bookings.
const BookingQueueName = "booking.confirmed"

// BookingConfirmedEvent is published when a visitor confirms a booking.  It
// carries everything a downstream consumer needs to log or notify without
// asking the API for the draft again.
type BookingConfirmedEvent struct {
    Reference   string   `json:"reference"`
    SessionID   string   `json:"session_id"`
    Email       string   `json:"email"`
    Plan        string   `json:"plan"`
    SeatLabels  []string `json:"seats"`
    Date        string   `json:"date"`
    TimeSlot    string   `json:"time_slot"`
    UnitPrice   int64    `json:"unit_price"`
    Total       int64    `json:"total"`
    ConfirmedAt string   `json:"confirmed_at"`
}
