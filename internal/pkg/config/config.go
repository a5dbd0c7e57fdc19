package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/skattajobs/marketplace-api/pkg/logger"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

const (
	devJWTSecret    = "skattajobs-dev-secret"
	devDemoPassword = "password"
)

type Config struct {
	Port      string        `env:"PORT,      default=3001"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	StoreDriver string `env:"STORE_DRIVER, default=memory"`
	UploadDir   string `env:"UPLOAD_DIR,   default=./uploads"`
	PublicURL   string `env:"PUBLIC_URL,   default=http://localhost:3001/api"`
	LogWorkers  int    `env:"LOG_WORKERS,  default=4"`

	Seed  SeedConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// SeedConfig controls the demo accounts. Seeding and the default password
// apply only in development unless SEED_DEMO and DEMO_PASSWORD are set.
type SeedConfig struct {
	DemoFlag string `env:"SEED_DEMO"`
	Password string `env:"DEMO_PASSWORD"`

	// Demo is DemoFlag resolved against the environment.
	Demo bool
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=skattajobs"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED,  default=false"`
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Development reports whether the process runs in development mode.
func (c *Config) Development() bool { return c.Env == "development" }

// Load reads a .env file when present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves the configuration from l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverMongo, c.StoreDriver)
	}
	if c.JWTSecret == "" {
		if !c.Development() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWTSecret = devJWTSecret
	}
	if err := c.Seed.resolve(c.Development()); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

func (s *SeedConfig) resolve(development bool) error {
	s.Demo = development
	if s.DemoFlag != "" {
		v, err := strconv.ParseBool(s.DemoFlag)
		if err != nil {
			return fmt.Errorf("SEED_DEMO: %w", err)
		}
		s.Demo = v
	}
	if s.Password != "" {
		return nil
	}
	if development {
		s.Password = devDemoPassword
		return nil
	}
	if s.Demo {
		return errors.New("DEMO_PASSWORD is required to seed demo accounts outside development")
	}
	return nil
}
