package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

const availableSeatsConstraint = "showtimes_available_seats_check"

// reserveSeats takes seats out of a showtime's pool. The showtime row stays
// locked until tx ends, so concurrent reservations on it are serialised.
func reserveSeats(ctx context.Context, tx pgx.Tx, showtimeID, seats int) error {
	query := `
		SELECT available_seats
		FROM showtimes
		WHERE id = $1
		FOR UPDATE
	`

	var available int

	err := tx.QueryRow(ctx, query, showtimeID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrShowtimeNotFound
		}

		return err
	}

	if available < seats {
		return domain.ErrInsufficientSeats
	}

	query = `
		UPDATE showtimes
		SET available_seats = available_seats - $1
		WHERE id = $2
	`

	_, err = tx.Exec(ctx, query, seats, showtimeID)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.CheckViolation && pgConstraint(err) == availableSeatsConstraint {
			return domain.ErrInsufficientSeats
		}

		return err
	}

	return nil
}

// releaseSeats credits seats back to a showtime. A missing showtime row means
// a booking outlived its showtime, which the schema forbids.
func releaseSeats(ctx context.Context, tx pgx.Tx, showtimeID, seats int) error {
	query := `
		UPDATE showtimes
		SET available_seats = available_seats + $1
		WHERE id = $2
	`

	tag, err := tx.Exec(ctx, query, seats, showtimeID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: showtime %d", domain.ErrLedgerInconsistent, showtimeID)
	}

	return nil
}
