package events

import (
	"context"
	"time"
)

type EventType string

const (
	BookingCreated   EventType = "booking.created"
	BookingConfirmed EventType = "booking.confirmed"
	BookingCancelled EventType = "booking.cancelled"
	BookingDeleted   EventType = "booking.deleted"
)

// BookingEvent is published after a booking transaction has committed.
type BookingEvent struct {
	Type          EventType `json:"type"`
	BookingID     int       `json:"bookingId"`
	UserID        int       `json:"userId"`
	ShowtimeID    int       `json:"showtimeId"`
	Seats         int       `json:"seats"`
	SeatsReleased int       `json:"seatsReleased,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) error {
	return nil
}
