// internal/services/chat-advisor/config.go
package chatadvisor

import (
	"time"

	"career-advisor/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	HistoryWindow int
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:       config.GetDuration(cfg.Services.ChatAdvisor.Timeout),
		HistoryWindow: cfg.Services.ChatAdvisor.HistoryWindow,
	}
}
