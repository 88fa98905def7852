package app

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port int
	Env  string
	DB   struct {
		Dsn          string
		MaxOpenConns int
		MaxIdleTime  time.Duration
		LockTimeout  time.Duration
	}
	Redis struct {
		Url          string
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  time.Duration
	}
	Smtp struct {
		Host     string
		Port     int
		Username string
		Password string
		Sender   string
	}
	Jwt struct {
		Secret string
		TTL    time.Duration
	}
	Otel struct {
		CollectorUrl   string
		ExportInterval time.Duration
		SampleRatio    float64
	}
	AmqpUrl  string
	LogLevel slog.Level
}

// parseConfig reads command line flags. Every flag defaults to an environment
// variable, which may come from a .env file in the working directory.
func parseConfig(fs *flag.FlagSet, args []string) (Config, bool, error) {
	_ = godotenv.Load()

	var cfg Config

	fs.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.DB.Dsn, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", envDuration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")
	fs.DurationVar(&cfg.DB.LockTimeout, "db-lock-timeout", envDuration("DB_LOCK_TIMEOUT", 5*time.Second), "PostgreSQL row lock wait limit (0 waits forever)")

	fs.StringVar(&cfg.Redis.Url, "redis-url", envString("REDIS_URL", "localhost:6379"), "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", envInt("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", envInt("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", envDuration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	fs.StringVar(&cfg.Smtp.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	fs.IntVar(&cfg.Smtp.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	fs.StringVar(&cfg.Smtp.Username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	fs.StringVar(&cfg.Smtp.Password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	fs.StringVar(&cfg.Smtp.Sender, "smtp-sender", envString("SMTP_SENDER", "Movie Booking <no-reply@movie-booking.local>"), "SMTP sender")

	fs.StringVar(&cfg.Jwt.Secret, "jwt-secret", envString("JWT_SECRET", ""), "HMAC secret for access tokens")
	fs.DurationVar(&cfg.Jwt.TTL, "jwt-ttl", envDuration("JWT_TTL", 24*time.Hour), "Access token lifetime")

	fs.StringVar(&cfg.AmqpUrl, "amqp-url", envString("AMQP_URL", ""), "RabbitMQ URL for booking events (empty disables publishing)")
	fs.StringVar(&cfg.Otel.CollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")
	fs.DurationVar(&cfg.Otel.ExportInterval, "otel-export-interval", envDuration("OTEL_EXPORT_INTERVAL", 15*time.Second), "Interval between metric exports")
	fs.Float64Var(&cfg.Otel.SampleRatio, "otel-sample-ratio", envFloat("OTEL_SAMPLE_RATIO", 1), "Fraction of new traces to sample (0..1)")

	fs.TextVar(&cfg.LogLevel, "log-level", envLevel("LOG_LEVEL", slog.LevelInfo), "Minimum log level (debug|info|warn|error)")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	return cfg, *displayVersion, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}

	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}

	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v, ok := os.LookupEnv(key); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			return level
		}
	}

	return fallback
}
