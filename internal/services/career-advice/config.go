// internal/services/career-advice/config.go
package careeradvice

import (
	"time"

	"career-advisor/internal/common/config"
)

type Config struct {
	Timeout            time.Duration
	MaxRecommendations int
	CacheTTL           time.Duration
}

// LoadConfig derives the service settings from the application config.
func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:            config.GetDuration(cfg.Services.CareerAdvice.Timeout),
		MaxRecommendations: cfg.Services.CareerAdvice.MaxRecommendations,
		CacheTTL:           config.GetDuration(cfg.Services.CareerAdvice.CacheTTL),
	}
}
