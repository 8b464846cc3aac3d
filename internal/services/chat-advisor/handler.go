// internal/services/chat-advisor/handler.go
package chatadvisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/llm"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/metrics"
	"career-advisor/internal/common/observability"
	"career-advisor/internal/models"

	"go.opentelemetry.io/otel/attribute"
)

const (
	ServiceName = "chat-advisor"

	DefaultHistoryWindow = 3
)

type Handler struct {
	config    *Config
	generator llm.Generator
	obs       *observability.Observability
	logger    logger.Logger
}

func NewHandler(config *Config, generator llm.Generator, obs *observability.Observability, log logger.Logger) *Handler {
	if config.HistoryWindow == 0 {
		config.HistoryWindow = DefaultHistoryWindow
	}
	return &Handler{
		config:    config,
		generator: generator,
		obs:       obs,
		logger: log.With(map[string]interface{}{
			"service": ServiceName,
		}),
	}
}

// Reply answers one chat turn. Model failures produce a canned reply with
// the offline warning rather than an error.
func (h *Handler) Reply(ctx context.Context, req *Request) (*Output, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewMessageRequiredError()
	}

	start := time.Now()
	ctx, span := h.obs.StartSpan(ctx, "chatadvisor.Reply",
		attribute.Int("chat.history_length", len(req.ConversationHistory)),
	)
	defer span.End()

	log := h.requestLogger(ctx)

	out := &Output{Source: models.SourceAI}
	text, err := h.generate(ctx, req)
	if err != nil {
		stdErr := llm.AsStandardError(err)
		log.Warn("model reply unavailable, using canned answer", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"error":     err,
		})
		out = &Output{
			Response: FallbackReply(req.Message),
			Warning:  WarningOffline,
			Source:   models.SourceFallback,
		}
	} else {
		out.Response = text
	}

	span.SetAttributes(attribute.String("advisor.source", out.Source))
	metrics.ChatRepliesServed.WithLabelValues(out.Source).Inc()
	h.obs.RecordRequest(ctx, ServiceName, out.Source, time.Since(start))

	log.Info("chat reply served", map[string]interface{}{
		"source":     out.Source,
		"warning":    out.Warning,
		"durationMs": time.Since(start).Milliseconds(),
	})
	return out, nil
}

func (h *Handler) generate(ctx context.Context, req *Request) (string, error) {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	text, err := h.generator.Generate(ctx, buildPrompt(req, h.config.HistoryWindow))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", llm.ErrModelResponse)
	}
	return text, nil
}

// requestLogger returns the request scoped logger tagged with the service,
// or the handler logger, which already carries the tag.
func (h *Handler) requestLogger(ctx context.Context) logger.Logger {
	if l := logger.FromContext(ctx, nil); l != nil {
		return l.With(map[string]interface{}{"service": ServiceName})
	}
	return h.logger
}
