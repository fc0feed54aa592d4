package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LINGUA_SERVER_URL", "")
	t.Setenv("LINGUA_LOG", "")
	t.Setenv("LINGUA_TTS", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := FromEnv()
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("server url = %q", cfg.ServerURL)
	}
	if !cfg.SpeechEnabled {
		t.Error("speech should default to enabled")
	}
	if cfg.OpenAIKey != "" {
		t.Error("openai key should default to empty")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LINGUA_SERVER_URL", "http://example.com:9000")
	t.Setenv("LINGUA_LOG", "debug")
	t.Setenv("LINGUA_TTS", "off")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := FromEnv()
	if cfg.ServerURL != "http://example.com:9000" {
		t.Errorf("server url = %q", cfg.ServerURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.SpeechEnabled {
		t.Error("speech should be disabled")
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("openai key = %q", cfg.OpenAIKey)
	}
}
