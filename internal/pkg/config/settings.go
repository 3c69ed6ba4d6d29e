package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Subdomains that never resolve to a tenant.
var ReservedSubdomains = []string{"www", "api", "admin", "static", "media"}

// RedisSettings holds the connection parameters for the cache store.
type RedisSettings struct {
	URL string `validate:"required"`
}

// StorageSettings holds credentials and addressing for the
// S3-compatible object store used for media uploads.
type StorageSettings struct {
	Endpoint  string `validate:"required"`
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`
	Bucket    string `validate:"required"`
	UseSSL    bool
}

// AuthSettings holds token signing parameters.
type AuthSettings struct {
	SecretKey       string        `validate:"required"`
	AccessTokenTTL  time.Duration `validate:"required"`
	RefreshTokenTTL time.Duration `validate:"required"`
}

// WorkerSettings holds polling intervals for the background worker.
type WorkerSettings struct {
	ReminderInterval       time.Duration `validate:"required"`
	SessionExpiryInterval  time.Duration `validate:"required"`
	SessionMaxIdle         time.Duration `validate:"required"`
	NoShowGracePeriod      time.Duration `validate:"required"`
	ShutdownTimeout        time.Duration `validate:"required"`
}

// Settings is the full configuration surface of the platform,
// sourced from environment variables.
type Settings struct {
	Environment        string `validate:"required,oneof=development production test"`
	Debug              bool
	Port               string `validate:"required"`
	MainDomain         string `validate:"required"`
	AllowedHosts       []string
	CORSAllowedOrigins []string

	Auth     AuthSettings
	Database DatabaseSettings
	Redis    RedisSettings
	Storage  StorageSettings
	Logger   LoggerSettings
	Worker   WorkerSettings
}

// Load reads settings from the process environment. A local .env file
// is honoured when present; real deployments inject variables through
// the platform. In production a missing SECRET_KEY is a startup error
// rather than a silent default.
func Load() (*Settings, error) {
	// Best effort: absence of a .env file is the normal case in production.
	_ = godotenv.Load()

	settings := &Settings{
		Environment:        getEnv("ENVIRONMENT", EnvDevelopment),
		Debug:              getEnvBool("DEBUG", false),
		Port:               getEnv("PORT", "8080"),
		MainDomain:         getEnv("MAIN_DOMAIN", "localhost"),
		AllowedHosts:       getEnvCSV("ALLOWED_HOSTS"),
		CORSAllowedOrigins: getEnvCSV("CORS_ALLOWED_ORIGINS"),
		Auth: AuthSettings{
			SecretKey:       os.Getenv("SECRET_KEY"),
			AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
			RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Database: DatabaseSettings{
			Type:   getEnv("DB_TYPE", PostgresDbType),
			DSN:    os.Getenv("DATABASE_URL"),
			DBName: os.Getenv("DB_NAME"),
		},
		Redis: RedisSettings{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Storage: StorageSettings{
			Endpoint:  getEnv("SPACES_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("SPACES_KEY", "minioadmin"),
			SecretKey: getEnv("SPACES_SECRET", "minioadmin"),
			Bucket:    getEnv("SPACES_BUCKET", "media"),
			UseSSL:    getEnvBool("SPACES_USE_SSL", false),
		},
		Logger: LoggerSettings{
			LogLevel:   getEnv("LOG_LEVEL", LogLevelInfo),
			LogType:    getEnv("LOG_TYPE", LogTypeConsole),
			FilePath:   os.Getenv("LOG_FILE_PATH"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		},
		Worker: WorkerSettings{
			ReminderInterval:      getEnvDuration("WORKER_REMINDER_INTERVAL", 5*time.Minute),
			SessionExpiryInterval: getEnvDuration("WORKER_SESSION_EXPIRY_INTERVAL", 10*time.Minute),
			SessionMaxIdle:        getEnvDuration("WORKER_SESSION_MAX_IDLE", 4*time.Hour),
			NoShowGracePeriod:     getEnvDuration("WORKER_NO_SHOW_GRACE", 30*time.Minute),
			ShutdownTimeout:       getEnvDuration("WORKER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
	}

	if settings.Environment != EnvProduction && settings.Auth.SecretKey == "" {
		settings.Auth.SecretKey = "insecure-dev-secret-key"
	}

	if settings.Database.DSN == "" && settings.Database.Type == SqliteDbType {
		settings.Database.DSN = ":memory:"
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks the settings tree and enforces production-only
// requirements.
func (s *Settings) Validate() error {
	validate := validator.New()

	if s.Environment == EnvProduction {
		if s.Auth.SecretKey == "" {
			return fmt.Errorf("SECRET_KEY must be set in production; refusing to start with a default signing key")
		}
		if s.Database.Type != PostgresDbType {
			return fmt.Errorf("production requires a postgres DATABASE_URL, got database type %q", s.Database.Type)
		}
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}

	if err := s.Database.Validate(); err != nil {
		return err
	}

	return s.Logger.Validate()
}

// IsProduction reports whether the service runs with production hardening.
func (s *Settings) IsProduction() bool {
	return s.Environment == EnvProduction
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvCSV(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
