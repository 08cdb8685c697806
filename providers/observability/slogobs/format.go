package slogobs

import (
	"os"
	"strings"
)

// Format selects how the handler lays out a record.
type Format string

const (
	// FormatCompact writes one line per record with attributes as JSON:
	//
	//	2026-10-19 10:40:35 DEBUG Calculation completed -> {"calc.result":7}
	FormatCompact Format = "compact"

	// FormatPretty writes the message on one line and each attribute below it:
	//
	//	2026-10-19 10:40:35 DEBUG  Calculation completed
	//	    calc.result = 7
	FormatPretty Format = "pretty"

	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format. Unknown names give
// FormatCompact.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPretty:
		return FormatPretty
	case FormatJSON:
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv reads RPNCALC_LOG_FORMAT, then LOG_FORMAT.
func GetFormatFromEnv() Format {
	if format := os.Getenv("RPNCALC_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatCompact
}

func (f Format) String() string {
	return string(f)
}
