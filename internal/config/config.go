package config

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config represents the configuration shared by the htable command line programs
type Config struct {
	LogLevel            string  `default:"info" split_words:"true"`
	PrettyLog           bool    `default:"true" split_words:"true"`
	RegressionThreshold float64 `default:"5.0" split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process("htable", config); err != nil {
		return nil, err
	}
	return config, nil
}

// Logger builds the zerolog logger described by the configuration, writing to out
func (c *Config) Logger(out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	if c.PrettyLog {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// StderrLogger is Logger writing to os.Stderr
func (c *Config) StderrLogger() (zerolog.Logger, error) {
	return c.Logger(os.Stderr)
}
