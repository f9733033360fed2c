package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner writes the startup banner to w and logs the same facts.
func PrintBanner(w io.Writer, config *Config, logger *Logger) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 60
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	fmt.Fprintf(w, "\n%s\n\n", hr)
	fmt.Fprintf(w, "%s  VIBETERMS  ·  AI 빌더 사전%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "%s  초보자를 위한 AI 개발 용어 가이드%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "\n%s\n\n", hr)

	mode := "development"
	if config.IsProduction() {
		mode = "production"
	}

	kvPad := 14
	kvLines := [][2]string{
		{"Version", GetFullVersion()},
		{"Environment", config.Environment},
		{"Mode", mode},
		{"Service URL", serviceURL},
		{"Storage", config.Storage.Backend},
		{"Model", config.Gemini.Model},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(w, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(w, "\n%s\n\n", hr)

	logger.Info().
		Str("version", GetVersion()).
		Str("environment", config.Environment).
		Bool("production", config.IsProduction()).
		Str("service_url", serviceURL).
		Str("storage", config.Storage.Backend).
		Msg("Application started")
}

// PrintShutdownBanner writes the shutdown banner to w.
func PrintShutdownBanner(w io.Writer, logger *Logger) {
	hr := banner.ColorCyan + strings.Repeat("═", 36) + banner.ColorReset
	fmt.Fprintf(w, "\n%s\n%s  VIBETERMS - SHUTTING DOWN%s\n%s\n\n", hr, banner.ColorBold+banner.ColorWhite, banner.ColorReset, hr)
	logger.Info().Msg("Application shutting down")
}
