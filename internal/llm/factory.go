package llm

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/common"
)

// NewClient creates a raw provider client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		c, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "anthropic":
		c, err := newAnthropicClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
