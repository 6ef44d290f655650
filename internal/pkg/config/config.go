package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Wompi    WompiConfig
	Exchange ExchangeConfig
	Session  SessionConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Usage    UsageConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"America/Bogota"`
	MigrateOnBoot bool   `envconfig:"DB_MIGRATE_ON_BOOT" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
	LokiURL        string `envconfig:"LOG_LOKI_URL"`
	ServiceName    string `envconfig:"LOG_SERVICE_NAME" default:"minutes-recharge"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type WompiConfig struct {
	Env             string          `envconfig:"WOMPI_ENV" default:"production"` // "test" settles sandbox payments
	PublicKey       string          `envconfig:"WOMPI_PUBLIC_KEY"`
	IntegritySecret string          `envconfig:"WOMPI_INTEGRITY_SECRET"`
	Currency        string          `envconfig:"WOMPI_CURRENCY" default:"COP"`
	WorkspaceID     string          `envconfig:"WOMPI_WORKSPACE_ID" default:"66666"`
	PricePerMinute  decimal.Decimal `envconfig:"WOMPI_PRICE_PER_MINUTE" default:"1000"`
	SandboxURL      string          `envconfig:"WOMPI_SANDBOX_URL" default:"https://sandbox.wompi.co/v1"`
	ProductionURL   string          `envconfig:"WOMPI_PRODUCTION_URL" default:"https://production.wompi.co/v1"`
	Timeout         time.Duration   `envconfig:"WOMPI_TIMEOUT" default:"10s"`
}

type ExchangeConfig struct {
	URL          string          `envconfig:"EXCHANGE_URL" default:"https://api.exchangerate-api.com/v4/latest/USD"`
	FallbackRate decimal.Decimal `envconfig:"EXCHANGE_FALLBACK_RATE" default:"4000"`
	Timeout      time.Duration   `envconfig:"EXCHANGE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"recharge-events"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"3s"`
}

type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	SampleRatio float64 `envconfig:"OTEL_TRACES_SAMPLE_RATIO" default:"1"`
}

type UsageConfig struct {
	TimeZone string `envconfig:"USAGE_TIMEZONE" default:"America/Bogota"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c UsageConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone(c.TimeZone, -5*60*60)
	}
	return loc
}

// LoadConfig reads .env (when present) before processing the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
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
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Bogota",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
			ServiceName:    "minutes-recharge-test",
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret-key-for-testing-only",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Wompi: WompiConfig{
			Env:             "test",
			PublicKey:       "pub_test_abc123",
			IntegritySecret: "test_integrity_secret",
			Currency:        "COP",
			WorkspaceID:     "66666",
			PricePerMinute:  decimal.NewFromInt(1000),
			SandboxURL:      "https://sandbox.wompi.co/v1",
			ProductionURL:   "https://production.wompi.co/v1",
			Timeout:         2 * time.Second,
		},
		Exchange: ExchangeConfig{
			URL:          "https://api.exchangerate-api.com/v4/latest/USD",
			FallbackRate: decimal.NewFromInt(4000),
			Timeout:      2 * time.Second,
		},
		Session: SessionConfig{
			TTL: 30 * time.Minute,
		},
		Kafka: KafkaConfig{
			Topic:        "recharge-events",
			WriteTimeout: time.Second,
		},
		Usage: UsageConfig{
			TimeZone: "America/Bogota",
		},
	}
}
