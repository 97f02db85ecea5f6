// Package log configures [log/slog] handlers from CLI-facing level and
// format strings.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("unknown log format")
)

// Flags holds CLI flag names for log configuration.
type Flags struct {
	Level  string
	Format string
}

// Config holds CLI flag values for log configuration. Create instances
// with [NewConfig], register flags with [Config.RegisterFlags], then build
// a handler with [Config.NewHandler].
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	return &Config{
		Level:  "info",
		Format: string(FormatLogfmt),
		Flags: Flags{
			Level:  "log-level",
			Format: "log-format",
		},
	}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		"log level, one of: error, warn, info, debug")
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s, %s", FormatLogfmt, FormatJSON))
}

// NewHandler creates a [slog.Handler] writing to w, using the level and
// format strings stored in c.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts), nil
	}

	return slog.NewTextHandler(w, opts), nil
}

// ParseLevel parses a log level string into a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// ParseFormat parses a log format string into a [Format].
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatLogfmt:
		return FormatLogfmt, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
