// Package llm talks to the generative text model behind the advisor.
package llm

import (
	"context"
	"fmt"
	"time"

	"career-advisor/internal/common/config"
	"career-advisor/internal/common/logger"
)

// Generator produces text for a prompt. Implementations make exactly one
// upstream call per invocation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the sampling settings sent with each call.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func optionsFromConfig(cfg config.GenAIConfig) Options {
	return Options{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     config.GetDuration(cfg.Timeout),
	}
}

// New builds the generator selected by cfg.Provider. A Gemini provider
// without an API key yields an UnavailableGenerator.
func New(ctx context.Context, cfg config.GenAIConfig, log logger.Logger) (Generator, error) {
	opts := optionsFromConfig(cfg)

	switch cfg.Provider {
	case config.ProviderGemini, "":
		if cfg.APIKey == "" {
			log.Warn("no model API key configured, all requests will use fallback content", map[string]interface{}{
				"provider": config.ProviderGemini,
			})
			return NewUnavailableGenerator("GEMINI_API_KEY not set"), nil
		}
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, opts)
	case config.ProviderGateway:
		return NewGatewayGenerator(cfg.BaseURL, cfg.APIKey, opts), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}

// UnavailableGenerator fails every call. It stands in when no model is
// configured so callers always take their fallback path.
type UnavailableGenerator struct {
	reason string
}

func NewUnavailableGenerator(reason string) *UnavailableGenerator {
	return &UnavailableGenerator{reason: reason}
}

func (g *UnavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrModelUnavailable, g.reason)
}
