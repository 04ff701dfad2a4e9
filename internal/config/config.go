package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	// встроенная база часовых поясов
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultDatabaseURI     = ""
	DefaultRedisAddress    = ""
	DefaultKafkaBrokers    = ""
	DefaultKafkaTopic      = "fuel.orders"
	DefaultTimezone        = "America/Mexico_City"
	DefaultAllowedOrigins  = "*"
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	RedisAddress    string        `env:"REDIS_ADDRESS"`
	KafkaBrokers    string        `env:"KAFKA_BROKERS"`
	KafkaTopic      string        `env:"KAFKA_TOPIC"`
	Timezone        string        `env:"TIMEZONE"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.RedisAddress, "m", DefaultRedisAddress, "Redis address host:port for order mirror, empty disables mirror")
	flag.StringVar(&config.KafkaBrokers, "k", DefaultKafkaBrokers, "Kafka brokers separated by comma, empty disables order events")
	flag.StringVar(&config.KafkaTopic, "t", DefaultKafkaTopic, "Kafka topic for order events")
	flag.StringVar(&config.Timezone, "z", DefaultTimezone, "Business timezone (IANA name)")
	flag.StringVar(&config.AllowedOrigins, "o", DefaultAllowedOrigins, "CORS allowed origins separated by comma")
	flag.DurationVar(&config.ShutdownTimeout, "s", DefaultShutdownTimeout, "Graceful shutdown timeout (e.g. 5s, 1m)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	if _, err := config.Location(); err != nil {
		return config, err
	}

	return config, nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			result = append(result, p)
		}
	}
	return result
}
