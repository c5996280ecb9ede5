package config

import (
	"errors"
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultServerAddr        = ":8080"
	defaultBackendURL        = "http://localhost:5000/api"
	defaultDatabaseDSN       = ""
	defaultLogLevel          = "debug"
	defaultOrderPollInterval = 30 * time.Second
	defaultQueuePollInterval = 10 * time.Second
	defaultChimeInterval     = 2 * time.Second
	defaultBackendTimeout    = 10 * time.Second
)

type Config struct {
	ServerAddr          string
	BackendURL          string
	BackendToken        string
	StoreID             string
	StoreCategory       string
	DatabaseDSN         string
	ConsolePasswordHash string
	LogLevel            string
	OrderPollInterval   time.Duration
	QueuePollInterval   time.Duration
	ChimeInterval       time.Duration
	BackendTimeout      time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	var err error

	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "console server address")
		flag.StringVar(&cfg.BackendURL, "b", defaultBackendURL, "commerce backend base URL")
		flag.StringVar(&cfg.BackendToken, "t", "", "commerce backend bearer token")
		flag.StringVar(&cfg.StoreID, "s", "", "store id")
		flag.StringVar(&cfg.StoreCategory, "c", "", "store category")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "event journal database DSN")
		flag.StringVar(&cfg.ConsolePasswordHash, "p", "", "bcrypt hash of the console password")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.DurationVar(&cfg.OrderPollInterval, "order-poll", defaultOrderPollInterval, "order polling interval")
		flag.DurationVar(&cfg.QueuePollInterval, "queue-poll", defaultQueuePollInterval, "queue polling interval")
		flag.DurationVar(&cfg.ChimeInterval, "chime", defaultChimeInterval, "alert chime interval")
		flag.DurationVar(&cfg.BackendTimeout, "timeout", defaultBackendTimeout, "backend request timeout")

		flag.Parse()

		// if environment variable is set, then using it
		if v := os.Getenv("RUN_ADDRESS"); v != "" {
			cfg.ServerAddr = v
		}
		if v := os.Getenv("BACKEND_URL"); v != "" {
			cfg.BackendURL = v
		}
		if v := os.Getenv("BACKEND_TOKEN"); v != "" {
			cfg.BackendToken = v
		}
		if v := os.Getenv("STORE_ID"); v != "" {
			cfg.StoreID = v
		}
		if v := os.Getenv("STORE_CATEGORY"); v != "" {
			cfg.StoreCategory = v
		}
		if v := os.Getenv("DATABASE_URI"); v != "" {
			cfg.DatabaseDSN = v
		}
		if v := os.Getenv("CONSOLE_PASSWORD_HASH"); v != "" {
			cfg.ConsolePasswordHash = v
		}
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			cfg.LogLevel = v
		}
		if err = durationEnv("ORDER_POLL_INTERVAL", &cfg.OrderPollInterval); err != nil {
			return
		}
		if err = durationEnv("QUEUE_POLL_INTERVAL", &cfg.QueuePollInterval); err != nil {
			return
		}
		if err = durationEnv("CHIME_INTERVAL", &cfg.ChimeInterval); err != nil {
			return
		}
		if err = durationEnv("BACKEND_TIMEOUT", &cfg.BackendTimeout); err != nil {
			return
		}

		singleton = &cfg
	})

	if err != nil {
		return nil, err
	}
	if singleton == nil {
		return nil, errors.New("config is not initialized")
	}

	return singleton, nil
}

// Validate checks that the config is usable
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return errors.New("backend URL is required")
	}
	if c.StoreID == "" {
		return errors.New("store id is required")
	}
	if c.OrderPollInterval <= 0 || c.QueuePollInterval <= 0 || c.ChimeInterval <= 0 {
		return errors.New("intervals must be positive")
	}
	if c.BackendTimeout <= 0 {
		return errors.New("backend timeout must be positive")
	}
	return nil
}

func durationEnv(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return errors.New(key + ": " + err.Error())
	}
	*dst = d
	return nil
}
