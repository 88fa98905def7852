package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/app"
	"github.com/metinatakli/movie-booking-api/internal/mailer"
	"github.com/metinatakli/movie-booking-api/internal/mocks"
	"github.com/metinatakli/movie-booking-api/internal/repository"
	appvalidator "github.com/metinatakli/movie-booking-api/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Mailer    *mailer.MockMailer
	Publisher *mocks.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	mockMailer := mailer.NewMockMailer()
	publisher := &mocks.MockPublisher{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application, err := app.NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		mockMailer,
		publisher,
		repository.NewPostgresUserRepository(db),
		repository.NewRedisTokenRepository(redisClient),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowtimeRepository(db, logger, cfg.DB.LockTimeout),
		repository.NewPostgresBookingRepository(db, logger, cfg.DB.LockTimeout),
	)
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	return &TestApp{
		App:       application,
		DB:        db,
		Redis:     redisClient,
		Mailer:    mockMailer,
		Publisher: publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
