package domain

// Transition is the outcome of applying a lifecycle event to a booking status.
type Transition struct {
	To           BookingStatus
	Changed      bool
	ReleaseSeats bool
}

// ConfirmTransition applies the confirm event. Confirming twice is a no-op,
// confirming a cancelled booking is rejected.
func ConfirmTransition(from BookingStatus) (Transition, error) {
	switch from {
	case BookingPending:
		return Transition{To: BookingConfirmed, Changed: true}, nil
	case BookingConfirmed:
		return Transition{To: BookingConfirmed}, nil
	case BookingCancelled:
		return Transition{}, ErrInvalidTransition
	}

	return Transition{}, ErrUnknownStatus
}

// CancelTransition applies the cancel event. Held seats are released once;
// cancelling a cancelled booking changes nothing.
func CancelTransition(from BookingStatus) (Transition, error) {
	switch from {
	case BookingPending, BookingConfirmed:
		return Transition{To: BookingCancelled, Changed: true, ReleaseSeats: true}, nil
	case BookingCancelled:
		return Transition{To: BookingCancelled}, nil
	}

	return Transition{}, ErrUnknownStatus
}

// DeleteTransition reports whether removing a booking in the given status
// must credit its seats back to the showtime.
func DeleteTransition(from BookingStatus) (Transition, error) {
	if !from.Valid() {
		return Transition{}, ErrUnknownStatus
	}

	return Transition{Changed: true, ReleaseSeats: from.Holding()}, nil
}
