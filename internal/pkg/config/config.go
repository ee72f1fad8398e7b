package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, key prefixes, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	Backend BackendConfig
	Events  EventsConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorageDriverNop      = "nop"
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver     string        `envconfig:"STORAGE_DRIVER" default:"memory"`
	KeyPrefix  string        `envconfig:"STORAGE_KEY_PREFIX" default:"cart_state"`
	TTL        time.Duration `envconfig:"STORAGE_TTL" default:"720h"`
	SQLitePath string        `envconfig:"STORAGE_SQLITE_PATH" default:"cart.db"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"cart"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"cart"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type BackendConfig struct {
	BaseURL          string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout          time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	AvailabilityPath string        `envconfig:"BACKEND_AVAILABILITY_PATH" default:"/api/reservations/check-availability"`
	DevisPath        string        `envconfig:"BACKEND_DEVIS_PATH" default:"/api/devis"`
}

const (
	EventsDriverNone  = "none"
	EventsDriverKafka = "kafka"
)

type EventsConfig struct {
	Driver  string   `envconfig:"EVENTS_DRIVER" default:"none"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"cart.submitted"`
	Retries int      `envconfig:"KAFKA_RETRIES" default:"3"`
}

type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration   time.Duration `envconfig:"SESSION_DURATION" default:"720h"`
	IdleTTL    time.Duration `envconfig:"SESSION_IDLE_TTL" default:"2h"`
	SweepEvery time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"cart_session"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN"`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAME_SITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Cart-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Cart-Session"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// StorageKey returns the persisted key of one session's cart.
func (c StorageConfig) StorageKey(sessionID string) string {
	if sessionID == "" {
		return c.KeyPrefix
	}
	return c.KeyPrefix + ":" + sessionID
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver:    StorageDriverMemory,
			KeyPrefix: "cart_state",
			TTL:       time.Hour,
		},
		Backend: BackendConfig{
			BaseURL:          "http://localhost:18080",
			Timeout:          2 * time.Second,
			AvailabilityPath: "/api/reservations/check-availability",
			DevisPath:        "/api/devis",
		},
		Events: EventsConfig{
			Driver: EventsDriverNone,
			Topic:  "cart.submitted",
		},
		Session: SessionConfig{
			Secret:     "test-secret",
			Duration:   time.Hour,
			IdleTTL:    time.Hour,
			SweepEvery: time.Minute,
			CookieName: "cart_session",
			SameSite:   "Lax",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:4200"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
	}
}
