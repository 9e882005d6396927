package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
	ShopName string `envconfig:"SHOP_NAME" default:"Shoping POS"`

	// DecrementStock deducts sold quantities from the catalog after a
	// successful checkout. Off by default: the register only clears the cart.
	DecrementStock    bool `envconfig:"DECREMENT_STOCK" default:"false"`
	LowStockThreshold int  `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`

	Store    Store
	Postgres Postgres
	Mongo    Mongo
	Payment  Payment
}

// Nested structs carry no envconfig tags so their keys are always
// prefixed (STORE_DRIVER, POSTGRES_USER) and never fall back to bare
// variables such as USER or HOST.
type Store struct {
	Driver      string        `default:"file"`
	Dir         string        `default:"./data"`
	WatchPeriod time.Duration `split_words:"true" default:"2s"`
}

type Postgres struct {
	Host     string `default:"localhost"`
	Port     int    `default:"5432"`
	User     string `default:"shopping"`
	Password string `default:"shoppingpassword"`
	DB       string `default:"shopping_db"`
	SSLMode  string `default:"disable"`
}

type Mongo struct {
	URI string `default:"mongodb://localhost:27017"`
	DB  string `default:"pos"`
}

type Payment struct {
	Delay   time.Duration `default:"1500ms"`
	Timeout time.Duration `default:"30s"`
}

// Load reads the configuration from the environment. Variable names carry no
// prefix: APP_ENV, HTTP_PORT, STORE_DRIVER, POSTGRES_HOST, PAYMENT_DELAY...
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("config: LOW_STOCK_THRESHOLD cannot be negative, got %d", c.LowStockThreshold)
	}
	if c.Payment.Delay < 0 {
		return fmt.Errorf("config: PAYMENT_DELAY cannot be negative, got %s", c.Payment.Delay)
	}
	if c.Payment.Timeout <= c.Payment.Delay {
		return fmt.Errorf("config: PAYMENT_TIMEOUT %s must exceed PAYMENT_DELAY %s", c.Payment.Timeout, c.Payment.Delay)
	}
	return nil
}
