package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintBanner_ShowsFullVersionAndMode(t *testing.T) {
	tests := []struct {
		env  string
		mode string
	}{
		{"development", "development"},
		{"prod", "production"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Environment = tt.env

			var buf bytes.Buffer
			PrintBanner(&buf, cfg, NewSilentLogger())
			out := buf.String()

			if !strings.Contains(out, GetFullVersion()) {
				t.Errorf("banner missing full version %q", GetFullVersion())
			}
			if !strings.Contains(out, tt.mode) {
				t.Errorf("banner missing mode %q", tt.mode)
			}
		})
	}
}
