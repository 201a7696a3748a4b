package config

import (
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Instagram struct {
		User        string `env:"INSTAGRAM_USER"`
		Pass        string `env:"INSTAGRAM_PASS"`
		SessionPath string `env:"INSTAGRAM_SESSION_PATH" env-default:"./goinsta-session"`
	}
	Resolver struct {
		MaxRetries        int `env:"RESOLVER_MAX_RETRIES" env-default:"2"`
		BackoffMinSeconds int `env:"RESOLVER_BACKOFF_MIN_SECONDS" env-default:"3"`
		BackoffMaxSeconds int `env:"RESOLVER_BACKOFF_MAX_SECONDS" env-default:"7"`
		RequestsPerMinute int `env:"RESOLVER_REQUESTS_PER_MINUTE" env-default:"12"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}

		var err error
		if _, statErr := os.Stat(".env"); statErr == nil {
			err = cleanenv.ReadConfig(".env", cfg)
		} else {
			err = cleanenv.ReadEnv(cfg)
		}
		if err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
