package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearGenAIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "GENAI_API_KEY", "GOOGLE_API_KEY", "APIS_GENAI_API_KEY", "REDIS_ADDRESS"} {
		t.Setenv(name, "")
	}
}

func TestLoadFromFile_Defaults(t *testing.T) {
	clearGenAIEnv(t)
	path := writeConfig(t, `
app:
  name: career-advisor
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, ProviderGemini, cfg.APIs.GenAI.Provider)
	assert.Equal(t, DefaultGeminiModel, cfg.APIs.GenAI.Model)
	assert.Equal(t, 30000, cfg.APIs.GenAI.Timeout)
	assert.Equal(t, 30000, cfg.Services.CareerAdvice.Timeout)
	assert.Equal(t, 4, cfg.Services.CareerAdvice.MaxRecommendations)
	assert.Equal(t, 3, cfg.Services.ChatAdvisor.HistoryWindow)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Database.Redis.Enabled())
	assert.False(t, cfg.Database.Postgres.Enabled())
	assert.Empty(t, cfg.APIs.GenAI.APIKey)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	clearGenAIEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	path := writeConfig(t, `
apis:
  genai:
    provider: gemini
    timeout: 5000
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIs.GenAI.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.True(t, cfg.Database.Redis.Enabled())
	assert.Equal(t, 5000, cfg.Services.ChatAdvisor.Timeout)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	clearGenAIEnv(t)
	t.Setenv("ADVISOR_GATEWAY_URL", "http://llm-gateway:8000")

	path := writeConfig(t, `
apis:
  genai:
    provider: gateway
    base_url: ${ADVISOR_GATEWAY_URL}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderGateway, cfg.APIs.GenAI.Provider)
	assert.Equal(t, "http://llm-gateway:8000", cfg.APIs.GenAI.BaseURL)
	assert.Empty(t, cfg.APIs.GenAI.Model)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "unknown provider",
			content: `
apis:
  genai:
    provider: openai
`,
			errMsg: "apis.genai.provider",
		},
		{
			name: "gateway without base url",
			content: `
apis:
  genai:
    provider: gateway
`,
			errMsg: "base_url",
		},
		{
			name: "temperature out of range",
			content: `
apis:
  genai:
    temperature: 3.5
`,
			errMsg: "temperature",
		},
		{
			name: "postgres without database",
			content: `
database:
  postgres:
    host: localhost
    user: advisor
`,
			errMsg: "database.postgres.database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearGenAIEnv(t)
			_, err := LoadFromFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "advisor", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=advisor sslmode=disable", p.GetDSN())
}
