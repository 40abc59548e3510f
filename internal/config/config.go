// Package config holds runtime settings for the stops command and sets up logging.
package config

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shapestone/shape-stops/pkg/stops"
)

type Config struct {
	Environment string
	LogLevel    zerolog.Level
	StopsFile   string
	PointsFile  string
	Delimiter   rune
	OnBadLine   stops.BadLineMode
	WriteDemo   bool
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithStopsFile sets the path of the stops file.
func WithStopsFile(path string) Option {
	return func(c *Config) {
		c.StopsFile = path
	}
}

// WithPointsFile sets the path of the points document.
func WithPointsFile(path string) Option {
	return func(c *Config) {
		c.PointsFile = path
	}
}

// WithDelimiter sets the field delimiter. Values that are not exactly one
// character are ignored.
func WithDelimiter(delim string) Option {
	return func(c *Config) {
		r, size := utf8.DecodeRuneInString(delim)
		if r == utf8.RuneError || size != len(delim) {
			return
		}
		c.Delimiter = r
	}
}

// WithBadLineMode sets how bad rows are handled. Unknown modes fall back to
// stops.BadLineModeError.
func WithBadLineMode(mode string) Option {
	return func(c *Config) {
		parsed, err := stops.ParseBadLineMode(mode)
		if err != nil {
			log.Warn().Err(err).Msg("Using default bad line mode")
		}
		c.OnBadLine = parsed
	}
}

// WithWriteDemo makes the command write demo files before reading them.
func WithWriteDemo(write bool) Option {
	return func(c *Config) {
		c.WriteDemo = write
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment: "production",
		LogLevel:    zerolog.InfoLevel,
		StopsFile:   "stops.csv",
		PointsFile:  "type.csv",
		Delimiter:   ',',
		OnBadLine:   stops.BadLineModeError,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// ReadOptions returns pipeline options for this configuration. Bad rows in
// warn mode are logged.
func (c *Config) ReadOptions() stops.Options {
	opts := stops.DefaultOptions()
	opts.Delimiter = c.Delimiter
	opts.OnBadLine = c.OnBadLine
	opts.WarningCallback = func(line int, message string) {
		log.Warn().Int("line", line).Msg(message)
	}
	return opts
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithStopsFile(getEnvOrDefault("STOPS_FILE", "stops.csv")),
		WithPointsFile(getEnvOrDefault("POINTS_FILE", "type.csv")),
		WithDelimiter(getEnvOrDefault("DELIMITER", ",")),
		WithBadLineMode(getEnvOrDefault("BAD_LINES", "error")),
		WithWriteDemo(getBoolEnvOrDefault("WRITE_DEMO", false)),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
