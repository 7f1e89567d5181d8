// agriassist/services/llm/llm.go
package llm

import (
	"agriassist/agriassist/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotConfigured = errors.New("API key not configured")

type GenerateOptions struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int
}

// Generator turns a single prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// New builds the generator named by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, "")
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
