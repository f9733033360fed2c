package common

import (
	"os"
	"strings"
)

// geminiKeyEnvVars are checked in order when no user key is supplied.
var geminiKeyEnvVars = []string{"GEMINI_API_KEY", "VIBETERMS_GEMINI_API_KEY", "API_KEY", "GOOGLE_API_KEY"}

// EnvCredential is the process-level Gemini credential. It is queried on every
// call so a key exported after startup is picked up.
type EnvCredential struct {
	// Fallback is the config file value, used when no env var is set.
	Fallback string
}

// Credential returns the environment key, then the config fallback.
// ok is false when neither is set.
func (e EnvCredential) Credential() (string, bool) {
	for _, name := range geminiKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, true
		}
	}
	if v := strings.TrimSpace(e.Fallback); v != "" {
		return v, true
	}
	return "", false
}
