// Package queue publishes booking lifecycle events to RabbitMQ and
// hosts the background consumer that appends them to the audit log.
package queue

// Event names carried in BookingEvent.Event.
const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// bookingQueueName is the durable queue all lifecycle events go through.
const bookingQueueName = "booking.events"

// BookingEvent describes one booking lifecycle change.  Dates use the
// YYYY-MM-DD wire format; OccurredAt is RFC3339 UTC.
type BookingEvent struct {
	Event      string `json:"event"`
	BookingID  uint64 `json:"booking_id"`
	GuestEmail string `json:"guest_email,omitempty"`
	RoomNumber int    `json:"room_number,omitempty"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
