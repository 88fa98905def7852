package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (nickname, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		user.Nickname,
		user.Username,
		user.Email,
		user.Password.Hash,
		string(user.Role)).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if pgErrorCode(err) == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, nickname, username, email, password_hash, role, created_at
		FROM users
		WHERE username = $1`

	return p.getOne(ctx, query, username)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, nickname, username, email, password_hash, role, created_at
		FROM users
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresUserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	var role string

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Nickname,
		&user.Username,
		&user.Email,
		&user.Password.Hash,
		&role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}

		return nil, err
	}

	user.Role = domain.Role(role)

	return &user, nil
}
