package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	SentryDSN string `env:"SENTRY_DSN"`

	// ShutdownTimeout bounds the graceful drain of in-flight requests.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth      AuthConfig
	API       APIConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	OpenAI    OpenAIConfig
	WriteBack WriteBackConfig
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET, required"`
	TokenTTL     time.Duration `env:"TOKEN_TTL, default=24h"`
	SignupLimit  int           `env:"SIGNUP_RATE_LIMIT, default=5"`
	SignupWindow time.Duration `env:"SIGNUP_RATE_WINDOW, default=1h"`
	AdminEmails  []string      `env:"ADMIN_EMAILS"`
	DraftTTL     time.Duration `env:"WIZARD_DRAFT_TTL, default=24h"`
}

// APIConfig holds the keys and limits of the HTTP surface. ServiceKey is the
// privileged key for schema maintenance; PublicAPIKey, when set, gates /api/*.
type APIConfig struct {
	ServiceKey            string   `env:"SERVICE_KEY"`
	PublicAPIKey          string   `env:"PUBLIC_API_KEY"`
	CORSOrigins           []string `env:"CORS_ORIGINS, default=*"`
	GenerateRatePerMinute int      `env:"GENERATE_RATE_PER_MINUTE, default=10"`
	GenerateBurst         int      `env:"GENERATE_RATE_BURST, default=3"`
	LoginRatePerMinute    int      `env:"LOGIN_RATE_PER_MINUTE, default=10"`
	LoginBurst            int      `env:"LOGIN_RATE_BURST, default=5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mealplanner"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type OpenAIConfig struct {
	APIKey     string        `env:"OPENAI_API_KEY"`
	Model      string        `env:"OPENAI_MODEL,       default=gpt-4o-mini"`
	ImageModel string        `env:"OPENAI_IMAGE_MODEL, default=dall-e-3"`
	BaseURL    string        `env:"OPENAI_BASE_URL"`
	Timeout    time.Duration `env:"OPENAI_TIMEOUT,     default=60s"`
}

type WriteBackConfig struct {
	Workers     int           `env:"WRITEBACK_WORKERS,      default=4"`
	MaxAttempts int           `env:"WRITEBACK_MAX_ATTEMPTS, default=5"`
	Backoff     time.Duration `env:"WRITEBACK_BACKOFF,      default=2s"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if !cfg.IsDevelopment() && cfg.API.ServiceKey == "" {
		return nil, fmt.Errorf("SERVICE_KEY is required outside development")
	}
	return &cfg, nil
}
