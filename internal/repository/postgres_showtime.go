package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

const showtimeDetailColumns = `
	s.id, s.movie_id, s.show_date, to_char(s.show_time, 'HH24:MI:SS'), s.theater, s.available_seats,
	m.title, m.genre, m.duration, m.poster, m.review
`

type PostgresShowtimeRepository struct {
	db          *pgxpool.Pool
	logger      *slog.Logger
	lockTimeout time.Duration
}

func NewPostgresShowtimeRepository(
	db *pgxpool.Pool,
	logger *slog.Logger,
	lockTimeout time.Duration) *PostgresShowtimeRepository {

	return &PostgresShowtimeRepository{
		db:          db,
		logger:      logger,
		lockTimeout: lockTimeout,
	}
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, show_date, show_time, theater, available_seats)
		VALUES ($1, $2, CAST($3::text AS time), $4, $5)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.Theater,
		showtime.AvailableSeats).Scan(&showtime.ID)

	if err != nil {
		return showtimeWriteError(err)
	}

	return nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]domain.ShowtimeDetail, error) {
	query := `
		SELECT ` + showtimeDetailColumns + `
		FROM showtimes s
		JOIN movies m ON m.id = s.movie_id
		WHERE ($1::int IS NULL OR s.movie_id = $1)
			AND ($2::date IS NULL OR s.show_date = $2)
		ORDER BY s.show_date, s.show_time, s.id
	`

	rows, err := p.db.Query(ctx, query, filters.MovieID, filters.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.ShowtimeDetail, 0)

	for rows.Next() {
		showtime, err := scanShowtimeDetail(rows)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, *showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	query := `
		SELECT ` + showtimeDetailColumns + `
		FROM showtimes s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.id = $1
	`

	showtime, err := scanShowtimeDetail(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return showtime, nil
}

// Update applies a partial update. The showtime row is locked first so a
// capacity change cannot interleave with a booking on the same showtime.
func (p *PostgresShowtimeRepository) Update(ctx context.Context, id int, update domain.ShowtimeUpdate) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf(column, len(args)))
	}

	if update.MovieID != nil {
		add("movie_id = $%d", *update.MovieID)
	}
	if update.ShowDate != nil {
		add("show_date = $%d", *update.ShowDate)
	}
	if update.ShowTime != nil {
		add("show_time = CAST($%d::text AS time)", *update.ShowTime)
	}
	if update.AvailableSeats != nil {
		add("available_seats = $%d", *update.AvailableSeats)
	}
	if update.ClearTheater {
		sets = append(sets, "theater = NULL")
	} else if update.Theater != nil {
		add("theater = $%d", *update.Theater)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE showtimes SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	return runInTx(ctx, p.db, p.logger, p.lockTimeout, func(tx pgx.Tx) error {
		var locked int

		err := tx.QueryRow(ctx, `SELECT id FROM showtimes WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrShowtimeNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, query, args...)
		if err != nil {
			return showtimeWriteError(err)
		}

		return nil
	})
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return domain.ErrShowtimeInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}

func showtimeWriteError(err error) error {
	switch pgErrorCode(err) {
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrMovieNotFound
	case pgerrcode.UniqueViolation:
		return domain.ErrDuplicateShowtime
	case pgerrcode.CheckViolation:
		return domain.ErrInsufficientSeats
	}

	return err
}

func scanShowtimeDetail(row pgx.Row) (*domain.ShowtimeDetail, error) {
	var showtime domain.ShowtimeDetail

	err := row.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.ShowDate,
		&showtime.ShowTime,
		&showtime.Theater,
		&showtime.AvailableSeats,
		&showtime.Title,
		&showtime.Genre,
		&showtime.Duration,
		&showtime.Poster,
		&showtime.Review,
	)

	if err != nil {
		return nil, err
	}

	return &showtime, nil
}
