package model

import "time"

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// Booking links a guest to a room for an inclusive range of dates.
// The invariant CheckIn <= CheckOut always holds for persisted
// bookings, and for a fixed room no two bookings may have
// overlapping [CheckIn, CheckOut] intervals.
//
// Fields:
//  ID       – primary key identifier.
//  GuestID  – guest who owns the booking.
//  RoomID   – room being booked.
//  CheckIn  – first occupied day.
//  CheckOut – last occupied day (inclusive).
type Booking struct {
	ID       uint64    // bookings.id
	GuestID  uint64    // bookings.guest_id
	RoomID   uint64    // bookings.room_id
	CheckIn  time.Time // bookings.check_in
	CheckOut time.Time // bookings.check_out
}

// Overlaps reports whether the inclusive date ranges [aIn, aOut] and
// [bIn, bOut] intersect.  Boundaries count as conflicting: a booking
// checking out on the day another checks in is an overlap.  Both
// ranges must already be ordered (in <= out).
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}
