// Package repository defines sentinel error values shared across the
// individual repositories. Higher layers compare against these with
// errors.Is to decide which HTTP status and message to emit, instead
// of inspecting raw driver errors.
package repository

import "errors"

// ErrGuestNotFound is returned when no guest matches the given id or email.
var ErrGuestNotFound = errors.New("guest not found")

// ErrRoomNotFound is returned when no room matches the given id or number.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when no booking matches the given id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrTokenNotFound is returned when an auth token is unknown or revoked.
var ErrTokenNotFound = errors.New("token not found")
