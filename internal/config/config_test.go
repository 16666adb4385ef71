package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("LIFEDASH_TEST_DIR", "/tmp/dash")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "tilde only", input: "~", expected: home},
		{name: "tilde prefix", input: "~/data/db.sqlite", expected: filepath.Join(home, "data/db.sqlite")},
		{name: "env var", input: "$LIFEDASH_TEST_DIR/db.sqlite", expected: "/tmp/dash/db.sqlite"},
		{name: "absolute", input: "/var/lib/lifedash.db", expected: "/var/lib/lifedash.db"},
		{name: "tilde in middle untouched", input: "/data/~user", expected: "/data/~user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/lifedash/lifedash.db"), cfg.Database.Path)
	assert.Equal(t, storage.DefaultKey, cfg.Storage.Key)
	assert.Equal(t, storage.DefaultHistoryLimit, cfg.Storage.HistoryLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("database.path", "/tmp/dash.db")
	v.Set("storage.key", "work")
	v.Set("logging.level", "DEBUG")
	v.Set("logging.format", "json")
	v.Set("llm.enabled", true)
	v.Set("llm.provider", "Anthropic")
	v.Set("llm.api_key", "secret")
	v.Set("llm.timeout", "3s")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dash.db", cfg.Database.Path)
	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 3*time.Second, cfg.LLM.Timeout)

	llmCfg := cfg.LLMClientConfig()
	assert.Equal(t, "anthropic", llmCfg.Provider)
	assert.Equal(t, "secret", llmCfg.APIKey)
	assert.Equal(t, 3, llmCfg.MaxRetries)
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	tests := []struct {
		provider string
		envVar   string
	}{
		{provider: "openai", envVar: "OPENAI_API_KEY"},
		{provider: "anthropic", envVar: "ANTHROPIC_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			t.Setenv(tt.envVar, "from-env")

			v := viper.New()
			v.Set("llm.enabled", true)
			v.Set("llm.provider", tt.provider)

			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, "from-env", cfg.LLM.APIKey)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr error
	}{
		{name: "bad log level", set: map[string]any{"logging.level": "loud"}, wantErr: common.ErrInvalidConfig},
		{name: "bad log format", set: map[string]any{"logging.format": "xml"}, wantErr: common.ErrInvalidConfig},
		{name: "blank storage key", set: map[string]any{"storage.key": "  "}, wantErr: common.ErrInvalidConfig},
		{name: "negative history", set: map[string]any{"storage.history_limit": -1}, wantErr: common.ErrInvalidConfig},
		{
			name:    "unknown provider",
			set:     map[string]any{"llm.enabled": true, "llm.provider": "parrot", "llm.api_key": "x"},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "missing api key",
			set:     map[string]any{"llm.enabled": true, "llm.provider": "openai"},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "zero timeout",
			set:     map[string]any{"llm.enabled": true, "llm.api_key": "x", "llm.timeout": "0s"},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", "")

			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}

			_, err := Load(v)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_DisabledLLMSkipsProviderChecks(t *testing.T) {
	v := viper.New()
	v.Set("llm.provider", "parrot")

	_, err := Load(v)
	require.NoError(t, err)
}
