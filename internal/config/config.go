package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/llm"
	"github.com/Veraticus/lifedash/internal/storage"
	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the dashboard database lives unless configured.
const DefaultDatabasePath = "~/.local/share/lifedash/lifedash.db"

// Config is the resolved application configuration.
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	Logging  LoggingConfig
	LLM      LLMConfig
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string
}

// StorageConfig controls how snapshots are stored.
type StorageConfig struct {
	Key          string
	HistoryLimit int
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// LLMConfig configures the optional remote classifier.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	MaxRetries  int
	MaxTokens   int
	Temperature float64
	Enabled     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("storage.key", storage.DefaultKey)
	v.SetDefault("storage.history_limit", storage.DefaultHistoryLimit)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.timeout", 15*time.Second)
	v.SetDefault("llm.retry_delay", time.Second)
	v.SetDefault("llm.cache_ttl", time.Hour)
	v.SetDefault("llm.rate_limit", 60)
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.max_tokens", 150)
	v.SetDefault("llm.temperature", 0.0)
}

// Load reads the configuration from v, applying defaults and falling back
// to OPENAI_API_KEY / ANTHROPIC_API_KEY when no key is configured.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Storage: StorageConfig{
			Key:          v.GetString("storage.key"),
			HistoryLimit: v.GetInt("storage.history_limit"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		LLM: LLMConfig{
			Enabled:     v.GetBool("llm.enabled"),
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			APIKey:      v.GetString("llm.api_key"),
			Model:       v.GetString("llm.model"),
			Timeout:     v.GetDuration("llm.timeout"),
			RetryDelay:  v.GetDuration("llm.retry_delay"),
			CacheTTL:    v.GetDuration("llm.cache_ttl"),
			RateLimit:   v.GetInt("llm.rate_limit"),
			MaxRetries:  v.GetInt("llm.max_retries"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
		},
	}

	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is empty", common.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("%w: storage.key is empty", common.ErrInvalidConfig)
	}
	if c.Storage.HistoryLimit < 0 {
		return fmt.Errorf("%w: storage.history_limit must not be negative", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	if !c.LLM.Enabled {
		return nil
	}
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s API key not set (llm.api_key)", common.ErrMissingConfig, c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("%w: llm.timeout must be positive", common.ErrInvalidConfig)
	}
	return nil
}

// LLMClientConfig converts the remote classifier settings for the llm package.
func (c Config) LLMClientConfig() llm.Config {
	return llm.Config{
		Provider:    c.LLM.Provider,
		APIKey:      c.LLM.APIKey,
		Model:       c.LLM.Model,
		Timeout:     c.LLM.Timeout,
		RetryDelay:  c.LLM.RetryDelay,
		CacheTTL:    c.LLM.CacheTTL,
		MaxRetries:  c.LLM.MaxRetries,
		RateLimit:   c.LLM.RateLimit,
		MaxTokens:   c.LLM.MaxTokens,
		Temperature: c.LLM.Temperature,
	}
}
