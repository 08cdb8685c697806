package slogobs

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	t.Setenv("RPNCALC_LOG_FORMAT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("RPNCALC_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := applyOptions()
	if cfg.format != FormatCompact {
		t.Errorf("default format = %v, want compact", cfg.format)
	}
	if cfg.level != slog.LevelInfo {
		t.Errorf("default level = %v, want INFO", cfg.level)
	}
	if cfg.output != os.Stderr {
		t.Error("default output should be os.Stderr")
	}

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg = applyOptions(
		WithFormat(FormatPretty),
		WithLevel(slog.LevelError),
		WithOutput(buf),
		WithColors(true),
		WithLogger(logger),
	)
	if cfg.format != FormatPretty {
		t.Errorf("format = %v, want pretty", cfg.format)
	}
	if cfg.level != slog.LevelError {
		t.Errorf("level = %v, want ERROR", cfg.level)
	}
	if cfg.output != buf {
		t.Error("WithOutput was not applied")
	}
	if !cfg.colors {
		t.Error("WithColors(true) was not applied")
	}
	if cfg.logger != logger {
		t.Error("WithLogger was not applied")
	}
}

func TestApplyOptions_FromEnv(t *testing.T) {
	t.Setenv("RPNCALC_LOG_FORMAT", "json")
	t.Setenv("RPNCALC_LOG_LEVEL", "debug")

	cfg := applyOptions()
	if cfg.format != FormatJSON {
		t.Errorf("format = %v, want json", cfg.format)
	}
	if cfg.level != slog.LevelDebug {
		t.Errorf("level = %v, want DEBUG", cfg.level)
	}
}
