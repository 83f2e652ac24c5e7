// Load envs from .env
// Load YAML config
// Override with env vars
// Validate and provide defaults

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/BerylCAtieno/docgen-agent/internal/generator"
)

// ErrMissingCredential means no API key for the generation service was found.
var ErrMissingCredential = errors.New("GOOGLE_API_KEY (or GEMINI_API_KEY) is not set; add it to the environment or the .env file")

const defaultConfigFile = "configs/config.yaml"

type ModelConfig struct {
	Name            string  `yaml:"name"`
	Temperature     float32 `yaml:"temperature"`
	TopP            float32 `yaml:"top_p"`
	TopK            int32   `yaml:"top_k"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

type Config struct {
	APIKey string      `yaml:"-"`
	Model  ModelConfig `yaml:"model"`

	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	SessionMaxIdle time.Duration `yaml:"session_max_idle"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

func defaults() Config {
	return Config{
		Model: ModelConfig{
			Name:            "gemini-2.0-flash",
			Temperature:     0.7,
			TopP:            1,
			TopK:            1,
			MaxOutputTokens: 4096,
		},
		Port:           "8080",
		LogLevel:       "info",
		LogFormat:      "text",
		SessionMaxIdle: 2 * time.Hour,
		MaxUploadBytes: 10 << 20,
	}
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE
// (default configs/config.yaml, optional), then environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := getEnv("CONFIG_FILE", defaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == defaultConfigFile:
		// optional
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingCredential
	}
	return cfg, nil
}

// Debug reports whether debug logging was requested.
func (c Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// GeneratorSettings returns the sampling settings for the generation client.
func (c Config) GeneratorSettings() generator.Settings {
	return generator.Settings{
		Model:           c.Model.Name,
		Temperature:     c.Model.Temperature,
		TopP:            c.Model.TopP,
		TopK:            c.Model.TopK,
		MaxOutputTokens: c.Model.MaxOutputTokens,
	}
}

func applyEnv(cfg *Config) error {
	cfg.APIKey = strings.TrimSpace(getEnv("GOOGLE_API_KEY", os.Getenv("GEMINI_API_KEY")))

	cfg.Model.Name = getEnv("MODEL_NAME", cfg.Model.Name)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("MODEL_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 || f > 2 {
			return fmt.Errorf("invalid MODEL_TEMPERATURE %q", v)
		}
		cfg.Model.Temperature = float32(f)
	}
	if v := os.Getenv("MODEL_TOP_P"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("invalid MODEL_TOP_P %q", v)
		}
		cfg.Model.TopP = float32(f)
	}
	if v := os.Getenv("MODEL_TOP_K"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid MODEL_TOP_K %q", v)
		}
		cfg.Model.TopK = int32(n)
	}
	if v := os.Getenv("MODEL_MAX_OUTPUT_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid MODEL_MAX_OUTPUT_TOKENS %q", v)
		}
		cfg.Model.MaxOutputTokens = int32(n)
	}
	if v := os.Getenv("SESSION_MAX_IDLE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid SESSION_MAX_IDLE %q", v)
		}
		cfg.SessionMaxIdle = d
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q", v)
		}
		cfg.MaxUploadBytes = n
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
