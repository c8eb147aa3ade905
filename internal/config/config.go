package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE"`
	Port       uint16 `env:"PORT" envDefault:"9090"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	// FingerprintSalt keys the address digests. Rotating it resets view
	// dedup and submission counting for everyone.
	FingerprintSalt string `env:"FINGERPRINT_SALT,required"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SubmissionWindow     time.Duration `env:"SUBMISSION_WINDOW" envDefault:"1h"`
	SubmissionsPerWindow uint          `env:"SUBMISSIONS_PER_WINDOW" envDefault:"5"`

	// CreateRequestsPerHour caps raw POST traffic per client address,
	// before any submission is inspected.
	CreateRequestsPerHour uint16 `env:"CREATE_REQUESTS_PER_HOUR" envDefault:"30"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
