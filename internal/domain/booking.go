package domain

import (
	"context"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}

	return false
}

// Holding reports whether the booking's seats are still taken out of the
// showtime's available_seats.
func (s BookingStatus) Holding() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID         int
	UserID     int
	ShowtimeID int
	Seats      int
	SeatLabels *string
	Status     BookingStatus
	BookedAt   time.Time
}

// BookingDetail is a booking joined with its showtime and movie.
type BookingDetail struct {
	Booking
	ShowDate    time.Time
	ShowTime    string
	MovieID     int
	MovieTitle  string
	MoviePoster *string
}

// BookingTransition describes what a lifecycle operation did to a booking.
// Changed is false when the operation hit an idempotent branch.
type BookingTransition struct {
	Booking       Booking
	Changed       bool
	SeatsReleased int
}

type BookingFilters struct {
	UserID     *int
	ShowtimeID *int
	Status     *BookingStatus
}

type BookingHistoryFilters struct {
	UserID     int
	Status     *BookingStatus
	From       *time.Time
	To         *time.Time
	Pagination Pagination
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	Confirm(ctx context.Context, id int) (*BookingTransition, error)
	Cancel(ctx context.Context, id int) (*BookingTransition, error)
	Delete(ctx context.Context, id int) (*BookingTransition, error)
	GetById(ctx context.Context, id int) (*BookingDetail, error)
	GetAll(ctx context.Context, filters BookingFilters) ([]BookingDetail, error)
	GetHistoryByUserId(ctx context.Context, filters BookingHistoryFilters) ([]BookingDetail, error)
}
