// internal/services/career-advice/handler.go
package careeradvice

import (
	"context"
	"time"

	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/llm"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/metrics"
	"career-advisor/internal/common/observability"
	"career-advisor/internal/models"
	"career-advisor/pkg/catalog"

	"go.opentelemetry.io/otel/attribute"
)

const (
	ServiceName = "career-advice"

	DefaultMaxRecommendations = 4
)

type Handler struct {
	config    *Config
	generator llm.Generator
	cache     RecommendationCache
	fallback  *FallbackGenerator
	obs       *observability.Observability
	logger    logger.Logger
}

// NewHandler wires the service. cache may be nil to disable caching; a nil
// catalog selects the built-in one.
func NewHandler(config *Config, generator llm.Generator, cache RecommendationCache, cat *catalog.Catalog, obs *observability.Observability, log logger.Logger) *Handler {
	if config.MaxRecommendations <= 0 {
		config.MaxRecommendations = DefaultMaxRecommendations
	}
	return &Handler{
		config:    config,
		generator: generator,
		cache:     cache,
		fallback:  NewFallbackGenerator(cat),
		obs:       obs,
		logger: log.With(map[string]interface{}{
			"service": ServiceName,
		}),
	}
}

// Recommend returns recommendations for a validated profile. Model failures
// never surface as errors; they produce fallback content with a warning.
func (h *Handler) Recommend(ctx context.Context, profile *models.StudentProfile) (*Output, error) {
	if !profile.HasRequiredFields() {
		return nil, apperrors.NewMissingProfileFieldsError(requiredProfileFields)
	}

	start := time.Now()
	ctx, span := h.obs.StartSpan(ctx, "careeradvice.Recommend")
	defer span.End()

	log := h.requestLogger(ctx)

	out := h.recommend(ctx, profile, log)

	span.SetAttributes(
		attribute.String("advisor.source", out.Source),
		attribute.Int("advisor.recommendations", len(out.Recommendations)),
	)
	metrics.RecommendationsServed.WithLabelValues(out.Source).Inc()
	h.obs.RecordRequest(ctx, ServiceName, out.Source, time.Since(start))

	log.Info("recommendations served", map[string]interface{}{
		"source":     out.Source,
		"count":      len(out.Recommendations),
		"warning":    out.Warning,
		"durationMs": time.Since(start).Milliseconds(),
	})
	return out, nil
}

func (h *Handler) recommend(ctx context.Context, profile *models.StudentProfile, log logger.Logger) *Output {
	key := CacheKey(profile)

	if recs, ok := h.lookupCache(ctx, key, log); ok {
		return &Output{Recommendations: recs, Source: models.SourceCache}
	}

	recs, err := h.generate(ctx, profile)
	if err != nil {
		warning := WarningCached
		if llm.IsNetworkError(err) {
			warning = WarningOffline
		}
		stdErr := llm.AsStandardError(err)
		log.Warn("model recommendations unavailable, using fallback", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"error":     err,
			"warning":   warning,
		})
		return &Output{
			Recommendations: h.fallback.Generate(profile),
			Warning:         warning,
			Source:          models.SourceFallback,
		}
	}

	h.storeCache(ctx, key, recs, log)
	return &Output{Recommendations: recs, Source: models.SourceAI}
}

func (h *Handler) generate(ctx context.Context, profile *models.StudentProfile) ([]models.CareerRecommendation, error) {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	text, err := h.generator.Generate(ctx, buildPrompt(profile))
	if err != nil {
		return nil, err
	}
	return parseRecommendations(text, h.config.MaxRecommendations)
}

func (h *Handler) lookupCache(ctx context.Context, key string, log logger.Logger) ([]models.CareerRecommendation, bool) {
	if h.cache == nil {
		return nil, false
	}
	recs, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn("recommendation cache read failed", map[string]interface{}{"error": err})
		return nil, false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return recs, true
}

func (h *Handler) storeCache(ctx context.Context, key string, recs []models.CareerRecommendation, log logger.Logger) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, key, recs, h.config.CacheTTL); err != nil {
		log.Warn("recommendation cache write failed", map[string]interface{}{"error": err})
	}
}

// Fallback returns the deterministic keyword-based recommendations.
func (h *Handler) Fallback(profile *models.StudentProfile) []models.CareerRecommendation {
	return h.fallback.Generate(profile)
}

// requestLogger returns the request scoped logger tagged with the service,
// or the handler logger, which already carries the tag.
func (h *Handler) requestLogger(ctx context.Context) logger.Logger {
	if l := logger.FromContext(ctx, nil); l != nil {
		return l.With(map[string]interface{}{"service": ServiceName})
	}
	return h.logger
}
