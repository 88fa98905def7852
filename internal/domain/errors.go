package domain

import "errors"

var (
	ErrShowtimeNotFound   = errors.New("showtime not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieInUse         = errors.New("movie still has showtimes")
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrDuplicateShowtime  = errors.New("showtime already exists for this movie at that date/time")
	ErrShowtimeInUse      = errors.New("showtime still has bookings")
	ErrInsufficientSeats  = errors.New("not enough seats")
	ErrInvalidTransition  = errors.New("cannot confirm a cancelled booking")
	ErrUnknownStatus      = errors.New("unknown booking status")
	ErrLedgerInconsistent = errors.New("seat ledger row missing for booking")
	ErrLockTimeout        = errors.New("timed out waiting for row lock")
)
