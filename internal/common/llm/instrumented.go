package llm

import (
	"context"
	"time"

	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/metrics"
	"career-advisor/internal/common/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Instrumented wraps a Generator with metrics, a span per call and a log line
// per failure.
type Instrumented struct {
	next     Generator
	provider string
	obs      *observability.Observability
	logger   logger.Logger
}

func Instrument(next Generator, provider string, obs *observability.Observability, log logger.Logger) *Instrumented {
	return &Instrumented{
		next:     next,
		provider: provider,
		obs:      obs,
		logger: log.With(map[string]interface{}{
			"component": "llm",
			"provider":  provider,
		}),
	}
}

func (i *Instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := i.obs.StartSpan(ctx, "llm.Generate",
		attribute.String("llm.provider", i.provider),
		attribute.Int("llm.prompt_length", len(prompt)),
	)
	defer span.End()

	start := time.Now()
	text, err := i.next.Generate(ctx, prompt)
	elapsed := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		reason := Reason(err)
		metrics.ModelCallFailures.WithLabelValues(i.provider, reason).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		logger.FromContext(ctx, i.logger).Warn("model call failed", map[string]interface{}{
			"provider":   i.provider,
			"reason":     reason,
			"durationMs": elapsed.Milliseconds(),
			"error":      err,
		})
	} else {
		span.SetAttributes(attribute.Int("llm.response_length", len(text)))
	}

	metrics.ModelCallDuration.WithLabelValues(i.provider, outcome).Observe(elapsed.Seconds())
	i.obs.RecordModelCall(ctx, i.provider, outcome, elapsed)

	return text, err
}
