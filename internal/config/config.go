// Package config collects the environment knobs the app reads.
package config

import "os"

// Defaults.
const (
	DefaultServerURL = "http://localhost:8000"
)

// Config is the resolved runtime configuration.
type Config struct {
	// ServerURL is the base URL of the practice backend.
	ServerURL string
	// LogLevel is a zerolog level name, empty for info.
	LogLevel string
	// SpeechEnabled turns text-to-speech on. Default on; LINGUA_TTS=off
	// disables it.
	SpeechEnabled bool
	// OpenAIKey enables the direct Whisper transcriber when set. Empty
	// means transcription goes through the backend.
	OpenAIKey string
}

// FromEnv reads configuration from the environment, applying defaults.
func FromEnv() Config {
	cfg := Config{
		ServerURL:     DefaultServerURL,
		SpeechEnabled: true,
	}

	if v := os.Getenv("LINGUA_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	cfg.LogLevel = os.Getenv("LINGUA_LOG")
	if v := os.Getenv("LINGUA_TTS"); v == "off" || v == "0" || v == "false" {
		cfg.SpeechEnabled = false
	}
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	return cfg
}
