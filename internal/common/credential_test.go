package common

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range geminiKeyEnvVars {
		t.Setenv(name, "")
	}
}

func TestEnvCredential_NoneConfigured(t *testing.T) {
	clearKeyEnv(t)

	if key, ok := (EnvCredential{}).Credential(); ok || key != "" {
		t.Errorf("Credential() = (%q, %v), want empty", key, ok)
	}
}

func TestEnvCredential_EnvBeatsFallback(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "  env-key ")

	key, ok := EnvCredential{Fallback: "config-key"}.Credential()
	if !ok || key != "env-key" {
		t.Errorf("Credential() = (%q, %v), want env-key", key, ok)
	}
}

func TestEnvCredential_LegacyAPIKeyVar(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("API_KEY", "legacy")

	key, ok := EnvCredential{}.Credential()
	if !ok || key != "legacy" {
		t.Errorf("Credential() = (%q, %v), want legacy", key, ok)
	}
}

func TestEnvCredential_ConfigFallback(t *testing.T) {
	clearKeyEnv(t)

	key, ok := EnvCredential{Fallback: "config-key"}.Credential()
	if !ok || key != "config-key" {
		t.Errorf("Credential() = (%q, %v), want config-key", key, ok)
	}
}
