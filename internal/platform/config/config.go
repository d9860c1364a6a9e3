package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects which adapter family serves the remote ports.
type Mode string

const (
	// ModeRemote talks to a real SehatAI deployment over HTTP.
	ModeRemote Mode = "remote"
	// ModeSim answers from the deterministic offline engine. Degraded mode,
	// never the production default.
	ModeSim Mode = "sim"
	// ModeOpenAI keeps analysis on the remote service but answers assistant
	// queries straight from the OpenAI API.
	ModeOpenAI Mode = "openai"
)

type Config struct {
	Mode        Mode          `yaml:"mode"`
	ServiceURL  string        `yaml:"service_url"`
	Timeout     time.Duration `yaml:"timeout"`
	LogFile     string        `yaml:"log_file"`
	OpenAIModel string        `yaml:"openai_model"`

	// OpenAIKey is env-only (SEHAT_OPENAI_KEY or OPENAI_API_KEY); keeping it
	// out of the file keeps the file shareable.
	OpenAIKey string `yaml:"-"`
}

func defaults() Config {
	return Config{
		Mode:        ModeRemote,
		ServiceURL:  "http://localhost:8000",
		Timeout:     30 * time.Second,
		OpenAIModel: "gpt-4o-mini",
	}
}

// DefaultPath returns the config file location used when --config is not set.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "sehat", "config.yaml")
}

// Load reads the YAML file at path, applies env overrides, and validates.
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env + defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("SEHAT_MODE"); v != "" {
		cfg.Mode = Mode(v)
	}
	if v := os.Getenv("SEHAT_SERVICE_URL"); v != "" {
		cfg.ServiceURL = v
	}
	if v := os.Getenv("SEHAT_OPENAI_KEY"); v != "" {
		cfg.OpenAIKey = v
	} else {
		cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeRemote, ModeSim, ModeOpenAI:
	default:
		return fmt.Errorf("unknown mode %q (want remote, sim, or openai)", c.Mode)
	}
	if c.Mode != ModeSim && c.ServiceURL == "" {
		return fmt.Errorf("service_url is required in %s mode", c.Mode)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
