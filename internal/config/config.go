// Package config gathers the runtime settings shared by the rpncalc
// commands from an optional .env file, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/leofalp/rpncalc/providers/observability/slogobs"
)

const (
	EnvTransport   = "RPNCALC_MCP_TRANSPORT"
	EnvAddr        = "RPNCALC_MCP_ADDR"
	EnvHistorySize = "RPNCALC_HISTORY_SIZE"

	DefaultAddr        = ":8080"
	DefaultHistorySize = 100
)

// Transport is how the MCP server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ParseTransport accepts "stdio" or "http" in any case.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case TransportStdio, TransportHTTP:
		return t, nil
	default:
		return "", fmt.Errorf("config: unknown transport %q (want stdio or http)", s)
	}
}

// Config holds the settings of one process.
type Config struct {
	LogLevel  slog.Level
	LogFormat slogobs.Format
	Transport Transport
	Addr      string

	// HistorySize caps the calculation history kept by the MCP server.
	// Zero or negative keeps everything.
	HistorySize int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: slogobs.FormatCompact,
		Transport: TransportStdio,
		Addr:      DefaultAddr,

		HistorySize: DefaultHistorySize,
	}
}

// Load reads the given dotenv files (".env" when none are given) into the
// environment and returns [FromEnv]. Missing files are skipped; variables
// already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment on top of [Default].
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.LogLevel = slogobs.GetLogLevelFromEnv()
	cfg.LogFormat = slogobs.GetFormatFromEnv()

	if v := os.Getenv(EnvTransport); v != "" {
		t, err := ParseTransport(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Transport = t
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvHistorySize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvHistorySize, err)
		}
		cfg.HistorySize = n
	}
	return cfg, nil
}

// RegisterFlags binds the logging flags to c so that command-line values
// override what was loaded from the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("log-level", "log level: trace, debug, info, warn or error", func(s string) error {
		c.LogLevel = slogobs.ParseLogLevel(s)
		return nil
	})
	fs.Func("log-format", "log format: compact, pretty or json", func(s string) error {
		c.LogFormat = slogobs.ParseFormat(s)
		return nil
	})
}

// RegisterServerFlags binds the MCP transport flags to c.
func (c *Config) RegisterServerFlags(fs *flag.FlagSet) {
	fs.Func("transport", "MCP transport: stdio or http (default "+string(c.Transport)+")", func(s string) error {
		t, err := ParseTransport(s)
		if err != nil {
			return err
		}
		c.Transport = t
		return nil
	})
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the http transport")
	fs.IntVar(&c.HistorySize, "history-size", c.HistorySize, "calculations kept in history, 0 for unlimited")
}

// ObserverOptions returns the slogobs options matching the logging settings.
// Logs always go to stderr.
func (c Config) ObserverOptions() []slogobs.Option {
	return []slogobs.Option{
		slogobs.WithLevel(c.LogLevel),
		slogobs.WithFormat(c.LogFormat),
		slogobs.WithOutput(os.Stderr),
	}
}
