package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

const bookingUserConstraint = "bookings_user_id_fkey"

const bookingDetailColumns = `
	b.id, b.user_id, b.showtime_id, b.seats, b.seat_labels, b.status, b.booked_at,
	s.show_date, to_char(s.show_time, 'HH24:MI:SS'), m.id, m.title, m.poster
`

type PostgresBookingRepository struct {
	db          *pgxpool.Pool
	logger      *slog.Logger
	lockTimeout time.Duration
}

func NewPostgresBookingRepository(
	db *pgxpool.Pool,
	logger *slog.Logger,
	lockTimeout time.Duration) *PostgresBookingRepository {

	return &PostgresBookingRepository{
		db:          db,
		logger:      logger,
		lockTimeout: lockTimeout,
	}
}

func (p *PostgresBookingRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return runInTx(ctx, p.db, p.logger, p.lockTimeout, fn)
}

// Create reserves the requested seats and stores a pending booking in one
// transaction. ID, Status and BookedAt are filled in on success.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		err := reserveSeats(ctx, tx, booking.ShowtimeID, booking.Seats)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO bookings (user_id, showtime_id, seats, seat_labels, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, booked_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.ShowtimeID,
			booking.Seats,
			booking.SeatLabels,
			string(domain.BookingPending)).Scan(&booking.ID, &booking.BookedAt)

		if err != nil {
			if pgErrorCode(err) == pgerrcode.ForeignKeyViolation && pgConstraint(err) == bookingUserConstraint {
				return domain.ErrUserNotFound
			}

			return err
		}

		booking.Status = domain.BookingPending

		return nil
	})
}

func (p *PostgresBookingRepository) Confirm(ctx context.Context, id int) (*domain.BookingTransition, error) {
	return p.applyTransition(ctx, id, domain.ConfirmTransition)
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, id int) (*domain.BookingTransition, error) {
	return p.applyTransition(ctx, id, domain.CancelTransition)
}

// applyTransition locks the booking row, runs the lifecycle event against its
// current status and writes the outcome together with any seat release.
func (p *PostgresBookingRepository) applyTransition(
	ctx context.Context,
	id int,
	event func(domain.BookingStatus) (domain.Transition, error)) (*domain.BookingTransition, error) {

	var result domain.BookingTransition

	err := p.inTx(ctx, func(tx pgx.Tx) error {
		booking, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		transition, err := event(booking.Status)
		if err != nil {
			return err
		}

		if transition.ReleaseSeats {
			err = releaseSeats(ctx, tx, booking.ShowtimeID, booking.Seats)
			if err != nil {
				return err
			}

			result.SeatsReleased = booking.Seats
		}

		if transition.Changed {
			_, err = tx.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, string(transition.To), id)
			if err != nil {
				return err
			}

			booking.Status = transition.To
		}

		result.Booking = *booking
		result.Changed = transition.Changed

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes a booking, crediting its seats back unless it was already
// cancelled.
func (p *PostgresBookingRepository) Delete(ctx context.Context, id int) (*domain.BookingTransition, error) {
	var result domain.BookingTransition

	err := p.inTx(ctx, func(tx pgx.Tx) error {
		booking, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		transition, err := domain.DeleteTransition(booking.Status)
		if err != nil {
			return err
		}

		if transition.ReleaseSeats {
			err = releaseSeats(ctx, tx, booking.ShowtimeID, booking.Seats)
			if err != nil {
				return err
			}

			result.SeatsReleased = booking.Seats
		}

		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
		if err != nil {
			return err
		}

		result.Booking = *booking
		result.Changed = true

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func lockBooking(ctx context.Context, tx pgx.Tx, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, showtime_id, seats, seat_labels, status, booked_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`

	var booking domain.Booking
	var status string

	err := tx.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.Seats,
		&booking.SeatLabels,
		&status,
		&booking.BookedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	booking.Status = domain.BookingStatus(status)

	return &booking, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		JOIN movies m ON m.id = s.movie_id
		WHERE b.id = $1
	`

	booking, err := scanBookingDetail(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context, filters domain.BookingFilters) ([]domain.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		JOIN movies m ON m.id = s.movie_id
		WHERE ($1::int IS NULL OR b.user_id = $1)
			AND ($2::int IS NULL OR b.showtime_id = $2)
			AND ($3::text IS NULL OR b.status = $3)
		ORDER BY b.booked_at DESC, b.id DESC
	`

	rows, err := p.db.Query(ctx, query, filters.UserID, filters.ShowtimeID, statusArg(filters.Status))
	if err != nil {
		return nil, err
	}

	return collectBookingDetails(rows)
}

func (p *PostgresBookingRepository) GetHistoryByUserId(
	ctx context.Context,
	filters domain.BookingHistoryFilters) ([]domain.BookingDetail, error) {

	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		JOIN movies m ON m.id = s.movie_id
		WHERE b.user_id = $1
			AND ($2::text IS NULL OR b.status = $2)
			AND ($3::timestamptz IS NULL OR b.booked_at >= $3)
			AND ($4::timestamptz IS NULL OR b.booked_at <= $4)
		ORDER BY b.booked_at DESC, b.id DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := p.db.Query(
		ctx,
		query,
		filters.UserID,
		statusArg(filters.Status),
		filters.From,
		filters.To,
		filters.Pagination.Limit,
		filters.Pagination.Offset())

	if err != nil {
		return nil, err
	}

	return collectBookingDetails(rows)
}

func statusArg(status *domain.BookingStatus) *string {
	if status == nil {
		return nil
	}

	s := string(*status)
	return &s
}

func scanBookingDetail(row pgx.Row) (*domain.BookingDetail, error) {
	var booking domain.BookingDetail
	var status string

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.Seats,
		&booking.SeatLabels,
		&status,
		&booking.BookedAt,
		&booking.ShowDate,
		&booking.ShowTime,
		&booking.MovieID,
		&booking.MovieTitle,
		&booking.MoviePoster,
	)

	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)

	return &booking, nil
}

func collectBookingDetails(rows pgx.Rows) ([]domain.BookingDetail, error) {
	defer rows.Close()

	bookings := make([]domain.BookingDetail, 0)

	for rows.Next() {
		booking, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
