package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr   string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN  string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"secret"`
	BatchSize    int    `env:"LOYALTY_BATCH_SIZE" envDefault:"10"`
	PollInterval int    `env:"LOYALTY_POLL_INTERVAL" envDefault:"5"`
}

// ServerConfig - server settings
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// LoyaltyConfig - settings for the background loyalty accrual worker
type LoyaltyConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// Config - service settings
type Config struct {
	Server  ServerConfig
	Loyalty LoyaltyConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		batch    = pflag.IntP("batch", "b", args.BatchSize, "Loyalty accrual batch size.")
		poll     = pflag.IntP("poll", "p", args.PollInterval, "Loyalty accrual poll interval, seconds.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Loyalty: LoyaltyConfig{
			BatchSize:    *batch,
			PollInterval: time.Duration(*poll) * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Loyalty: LoyaltyConfig{
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}
