package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	httpclient "career-advisor/internal/common/http"
)

// GatewayGenerator posts prompts to a self-hosted model proxy.
type GatewayGenerator struct {
	baseURL string
	apiKey  string
	client  *httpclient.Client
	opts    Options
}

type gatewayRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Model       string  `json:"model,omitempty"`
}

type gatewayResponse struct {
	Text string `json:"text"`
}

func NewGatewayGenerator(baseURL, apiKey string, opts Options) *GatewayGenerator {
	return &GatewayGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		// The per-call context carries the deadline.
		client: httpclient.NewClient(0),
		opts:   opts,
	}
}

func (g *GatewayGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	var headers map[string]string
	if g.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + g.apiKey}
	}

	body := gatewayRequest{
		Prompt:      prompt,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
		Model:       g.opts.Model,
	}

	var out gatewayResponse
	if err := g.client.PostJSON(ctx, g.baseURL+"/api/ai/generate", headers, body, &out); err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		if errors.Is(err, httpclient.ErrDecodeResponse) {
			return "", fmt.Errorf("%w: %v", ErrModelResponse, err)
		}
		return "", classify(ctx, err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrModelResponse)
	}
	return text, nil
}
