// Package config loads process-wide settings from the environment.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Settings is the application configuration, bound once at startup.
type Settings struct {
	AppName      string `env:"APP_NAME" envDefault:"LinkedIn Profile Assistant"`
	Debug        bool   `env:"DEBUG" envDefault:"true"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	Addr         string `env:"ADDR" envDefault:":8000"`
	OutputDir    string `env:"OUTPUT_DIR" envDefault:"output"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"static"`
}

// Load parses settings from the environment. The API key is required.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return &s, nil
}

var (
	settings     *Settings
	settingsErr  error
	settingsOnce sync.Once
)

// Get returns the cached process-wide settings, loading them on first use.
func Get() (*Settings, error) {
	settingsOnce.Do(func() {
		settings, settingsErr = Load()
	})
	return settings, settingsErr
}
