package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Backend struct {
		Address string        `env:"BACKEND_ADDRESS"`
		Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"30s"`
	}
	Storage struct {
		Path string `env:"STORAGE_PATH" env-default:"./twx-catalog.db"`
	}
	Ingest struct {
		BufferSize   int           `env:"INGEST_BUFFER_SIZE" env-default:"64"`
		SyncInterval time.Duration `env:"INGEST_SYNC_INTERVAL" env-default:"30m"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
