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
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Slot      SlotConfig
	Worker    WorkerConfig
	Queue     QueueConfig
	AWS       AWSConfig
	Provider  ProviderConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	// Lifetime of tokens minted by test helpers; real expiry is set by the account service.
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Daily quotas are global ceilings; per-user allowances come from the slot policy.
type SlotConfig struct {
	ServiceTimeZone     string        `envconfig:"SLOT_SERVICE_TIMEZONE" default:"Asia/Tokyo"`
	FreeDailyLimit      int32         `envconfig:"SLOT_FREE_DAILY_LIMIT" default:"100"`
	AdDailyLimit        int32         `envconfig:"SLOT_AD_DAILY_LIMIT" default:"50"`
	FreePerUserDefault  int           `envconfig:"SLOT_FREE_PER_USER_DEFAULT" default:"1"`
	FreePerUserCreator  int           `envconfig:"SLOT_FREE_PER_USER_CREATOR" default:"3"`
	FreePerUserStaff    int           `envconfig:"SLOT_FREE_PER_USER_STAFF" default:"10"`
	AdPerUserDaily      int           `envconfig:"SLOT_AD_PER_USER_DAILY" default:"3"`
	ReservationTTL      time.Duration `envconfig:"SLOT_RESERVATION_TTL" default:"5m"`
	AdRewardTTL         time.Duration `envconfig:"SLOT_AD_REWARD_TTL" default:"10m"`
	SweepInterval       time.Duration `envconfig:"SLOT_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize      int32         `envconfig:"SLOT_SWEEP_BATCH_SIZE" default:"200"`
	ReclaimOnStatusRead bool          `envconfig:"SLOT_RECLAIM_ON_STATUS_READ" default:"true"`
}

type WorkerConfig struct {
	Enabled       bool          `envconfig:"WORKER_ENABLED" default:"true"`
	PoolSize      int           `envconfig:"WORKER_POOL_SIZE" default:"2"`
	BatchSize     int32         `envconfig:"WORKER_BATCH_SIZE" default:"4"`
	PollInterval  time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"2s"`
	MaxAttempts   int32         `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
	BackoffBase   time.Duration `envconfig:"WORKER_BACKOFF_BASE" default:"10s"`
	BackoffCap    time.Duration `envconfig:"WORKER_BACKOFF_CAP" default:"5m"`
	ProviderRPS   float64       `envconfig:"WORKER_PROVIDER_RPS" default:"1"`
	ProviderBurst int           `envconfig:"WORKER_PROVIDER_BURST" default:"2"`
}

type QueueConfig struct {
	Driver      string        `envconfig:"QUEUE_DRIVER" default:"postgres"`
	JobName     string        `envconfig:"QUEUE_JOB_NAME" default:"dish-generate"`
	DedupWindow time.Duration `envconfig:"QUEUE_DEDUP_WINDOW" default:"24h"`
	Lease       time.Duration `envconfig:"QUEUE_LEASE" default:"10m"`
}

// CloudWatchNamespace left empty keeps pipeline metrics Prometheus-only.
type AWSConfig struct {
	Region              string `envconfig:"AWS_REGION" default:"ap-northeast-1"`
	SQSQueueURL         string `envconfig:"AWS_SQS_QUEUE_URL"`
	Endpoint            string `envconfig:"AWS_ENDPOINT_URL"`
	CloudWatchNamespace string `envconfig:"AWS_CLOUDWATCH_NAMESPACE"`
}

type ProviderConfig struct {
	GenerationURL     string        `envconfig:"PROVIDER_GENERATION_URL" default:"http://localhost:9001"`
	SafetyURL         string        `envconfig:"PROVIDER_SAFETY_URL" default:"http://localhost:9002"`
	ModerationURL     string        `envconfig:"PROVIDER_MODERATION_URL" default:"http://localhost:9003"`
	APIKey            string        `envconfig:"PROVIDER_API_KEY"`
	GenerationTimeout time.Duration `envconfig:"PROVIDER_GENERATION_TIMEOUT" default:"120s"`
	SafetyTimeout     time.Duration `envconfig:"PROVIDER_SAFETY_TIMEOUT" default:"30s"`
	ModerationTimeout time.Duration `envconfig:"PROVIDER_MODERATION_TIMEOUT" default:"15s"`
}

type RateLimitConfig struct {
	Window  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	MaxHits int           `envconfig:"RATE_LIMIT_MAX_HITS" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

// ServiceLocation falls back to a fixed +09:00 zone when tzdata is unavailable.
func (c *SlotConfig) ServiceLocation() *time.Location {
	loc, err := time.LoadLocation(c.ServiceTimeZone)
	if err != nil {
		return time.FixedZone(c.ServiceTimeZone, 9*60*60)
	}
	return loc
}

// LoadConfig reads an optional .env file first; real environment variables win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-dish-studio",
			Duration: "1h",
		},
		Slot: SlotConfig{
			ServiceTimeZone:     "Asia/Tokyo",
			FreeDailyLimit:      5,
			AdDailyLimit:        3,
			FreePerUserDefault:  1,
			FreePerUserCreator:  3,
			FreePerUserStaff:    10,
			AdPerUserDaily:      3,
			ReservationTTL:      5 * time.Minute,
			AdRewardTTL:         10 * time.Minute,
			SweepInterval:       time.Minute,
			SweepBatchSize:      100,
			ReclaimOnStatusRead: true,
		},
		Worker: WorkerConfig{
			Enabled:       false, // e2e tests drive the worker explicitly
			PoolSize:      1,
			BatchSize:     4,
			PollInterval:  100 * time.Millisecond,
			MaxAttempts:   3,
			BackoffBase:   10 * time.Millisecond,
			BackoffCap:    100 * time.Millisecond,
			ProviderRPS:   100,
			ProviderBurst: 10,
		},
		Queue: QueueConfig{
			Driver:      "postgres",
			JobName:     "dish-generate",
			DedupWindow: 24 * time.Hour,
			Lease:       time.Minute,
		},
		Provider: ProviderConfig{
			GenerationTimeout: 5 * time.Second,
			SafetyTimeout:     5 * time.Second,
			ModerationTimeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Window:  time.Minute,
			MaxHits: 1000,
		},
	}
}
