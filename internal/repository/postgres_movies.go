package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, duration, poster, review)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Poster,
		movie.Review).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, genre, duration, poster, review, created_at
		FROM movies
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectMovies(rows)
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, genre, duration, poster, review, created_at
		FROM movies
		WHERE id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	return movie, nil
}

// Search matches titles containing search.Title (case-insensitive) and genres
// equal to search.Genre. Empty fields are ignored.
func (p *PostgresMovieRepository) Search(ctx context.Context, search domain.MovieSearch) ([]*domain.Movie, error) {
	query := `SELECT id, title, genre, duration, poster, review, created_at
		FROM movies
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
			AND ($2 = '' OR genre = $2)
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, search.Title, search.Genre)
	if err != nil {
		return nil, err
	}

	return collectMovies(rows)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, genre = $2, duration = $3, poster = $4, review = $5
		WHERE id = $6
		RETURNING created_at`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Poster,
		movie.Review,
		movie.ID).Scan(&movie.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrMovieNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return domain.ErrMovieInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}

	return nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Poster,
		&movie.Review,
		&movie.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func collectMovies(rows pgx.Rows) ([]*domain.Movie, error) {
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
