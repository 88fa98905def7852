package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/auth"
	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/metinatakli/movie-booking-api/internal/events"
	"github.com/metinatakli/movie-booking-api/internal/mailer"
	"github.com/metinatakli/movie-booking-api/internal/repository"
	appvalidator "github.com/metinatakli/movie-booking-api/internal/validator"
	"github.com/metinatakli/movie-booking-api/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const serviceName = "movie-booking-api"

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	mailer    mailer.Mailer
	publisher events.Publisher
	issuer    *auth.Issuer
	metrics   *bookingMetrics
	openapi   *openapi3.T
	wg        sync.WaitGroup

	userRepo     domain.UserRepository
	tokenRepo    domain.TokenRepository
	movieRepo    domain.MovieRepository
	showtimeRepo domain.ShowtimeRepository
	bookingRepo  domain.BookingRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	mailer mailer.Mailer,
	publisher events.Publisher,
	userRepo domain.UserRepository,
	tokenRepo domain.TokenRepository,
	movieRepo domain.MovieRepository,
	showtimeRepo domain.ShowtimeRepository,
	bookingRepo domain.BookingRepository) (*Application, error) {

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	metrics, err := newBookingMetrics(otel.GetMeterProvider())
	if err != nil {
		return nil, err
	}

	return &Application{
		config:       cfg,
		logger:       logger,
		validator:    validator,
		mailer:       mailer,
		publisher:    publisher,
		issuer:       auth.NewIssuer(cfg.Jwt.Secret, cfg.Jwt.TTL),
		metrics:      metrics,
		openapi:      doc,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		movieRepo:    movieRepo,
		showtimeRepo: showtimeRepo,
		bookingRepo:  bookingRepo,
	}, nil
}

func Run() error {
	cfg, displayVersion, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.Jwt.Secret == "" {
		return errors.New("jwt secret must be set (-jwt-secret or JWT_SECRET)")
	}

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}),
		otelslog.NewHandler(serviceName),
	))

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AmqpUrl != "" {
		publisher = events.NewAMQPPublisher(cfg.AmqpUrl)
	}

	app, err := NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password, cfg.Smtp.Sender),
		publisher,
		repository.NewPostgresUserRepository(db),
		repository.NewRedisTokenRepository(redisClient),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowtimeRepository(db, logger, cfg.DB.LockTimeout),
		repository.NewPostgresBookingRepository(db, logger, cfg.DB.LockTimeout),
	)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.Url,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.Dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("waiting for background jobs", "addr", srv.Addr)
		app.Wait()

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// Wait blocks until every background job started by a request has finished.
func (app *Application) Wait() {
	app.wg.Wait()
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.authenticate)

	r.Get("/api/openapi.json", app.GetOpenAPISpec)

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireScopes},
		ErrorHandlerFunc: app.paramErrorResponse,
	})

	return r
}
