// internal/services/career-advice/handler_test.go
package careeradvice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"career-advisor/internal/common/llm"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/observability"
	"career-advisor/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func createTestConfig() *Config {
	return &Config{
		Timeout:            2 * time.Second,
		MaxRecommendations: 4,
		CacheTTL:           time.Hour,
	}
}

func createTestProfile() *models.StudentProfile {
	return &models.StudentProfile{
		Education:   "BSc Computer Science",
		Skills:      []string{"Python", "SQL"},
		Interests:   []string{"AI", "Data"},
		Strengths:   []string{"Analytical"},
		Weaknesses:  []string{"Public speaking"},
		CareerGoals: "Become a machine learning engineer",
		Experience:  "One internship",
	}
}

func createTestHandler(t *testing.T, gen llm.Generator, cache RecommendationCache) *Handler {
	return NewHandler(createTestConfig(), gen, cache, nil, observability.NewNoop(), logger.NewTestLogger(t))
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func aiResponse(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"title":"Role %d","match":%d,"description":"d","whySuitable":"w",
			"keySkills":["a","b"],"roadmap":[{"phase":"p","duration":"1 month","tasks":["t"],"skills":["s"]}],
			"marketInsights":{"demand":"High","salaryRange":"$1 - $2","growth":"5%%"}}`, i+1, 90-i)
	}
	return "```json\n[" + strings.Join(items, ",") + "]\n```"
}

func assertInvariants(t *testing.T, recs []models.CareerRecommendation) {
	t.Helper()
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Match, models.MinMatchScore)
		assert.LessOrEqual(t, r.Match, models.MaxMatchScore)
		assert.LessOrEqual(t, len(r.KeySkills), models.MaxKeySkills)
		assert.LessOrEqual(t, len(r.Roadmap), models.MaxRoadmapSteps)
		assert.NotEmpty(t, r.Title)
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Recommend_AISuccess(t *testing.T) {
	gen := &fakeGenerator{text: aiResponse(6)}
	handler := createTestHandler(t, gen, nil)

	out, err := handler.Recommend(context.Background(), createTestProfile())
	require.NoError(t, err)

	assert.Equal(t, models.SourceAI, out.Source)
	assert.Empty(t, out.Warning)
	require.Len(t, out.Recommendations, 4)
	assert.Equal(t, "Role 1", out.Recommendations[0].Title)
	assert.Equal(t, "Role 4", out.Recommendations[3].Title)
	assertInvariants(t, out.Recommendations)

	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "- Skills: Python, SQL")
	assert.Contains(t, gen.prompts[0], "- Career Goals: Become a machine learning engineer")
}

func TestHandler_Recommend_FallbackWarnings(t *testing.T) {
	tests := []struct {
		name    string
		gen     *fakeGenerator
		warning string
	}{
		{
			name:    "network failure",
			gen:     &fakeGenerator{err: fmt.Errorf("%w: connection refused", llm.ErrModelNetwork)},
			warning: WarningOffline,
		},
		{
			name:    "timeout",
			gen:     &fakeGenerator{err: fmt.Errorf("%w: deadline", llm.ErrModelTimeout)},
			warning: WarningOffline,
		},
		{
			name:    "model unavailable",
			gen:     &fakeGenerator{err: fmt.Errorf("%w: no key", llm.ErrModelUnavailable)},
			warning: WarningCached,
		},
		{
			name:    "invalid json",
			gen:     &fakeGenerator{text: "Sure! Here are some careers."},
			warning: WarningCached,
		},
		{
			name:    "object instead of array",
			gen:     &fakeGenerator{text: `{"title":"Engineer"}`},
			warning: WarningCached,
		},
		{
			name:    "empty array",
			gen:     &fakeGenerator{text: `[]`},
			warning: WarningCached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t, tt.gen, nil)

			out, err := handler.Recommend(context.Background(), createTestProfile())
			require.NoError(t, err)

			assert.Equal(t, models.SourceFallback, out.Source)
			assert.Equal(t, tt.warning, out.Warning)
			assertInvariants(t, out.Recommendations)
			assert.Equal(t, "Full Stack Developer", out.Recommendations[0].Title)
			assert.Equal(t, 1, tt.gen.calls)
		})
	}
}

func TestHandler_Recommend_MissingFields(t *testing.T) {
	gen := &fakeGenerator{text: aiResponse(1)}
	handler := createTestHandler(t, gen, nil)

	profile := createTestProfile()
	profile.CareerGoals = ""

	out, err := handler.Recommend(context.Background(), profile)
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 0, gen.calls)
}

func TestHandler_Recommend_CacheHitSkipsModel(t *testing.T) {
	_, client := setupRedis(t)
	cache := NewRedisCache(client)

	gen := &fakeGenerator{text: aiResponse(2)}
	handler := createTestHandler(t, gen, cache)
	profile := createTestProfile()

	first, err := handler.Recommend(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, models.SourceAI, first.Source)

	second, err := handler.Recommend(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, models.SourceCache, second.Source)
	assert.Empty(t, second.Warning)
	assert.Equal(t, first.Recommendations, second.Recommendations)

	assert.Equal(t, 1, gen.calls)
}

func TestHandler_Recommend_FallbackNeverCached(t *testing.T) {
	mr, client := setupRedis(t)
	cache := NewRedisCache(client)

	gen := &fakeGenerator{err: fmt.Errorf("%w: down", llm.ErrModelNetwork)}
	handler := createTestHandler(t, gen, cache)
	profile := createTestProfile()

	out, err := handler.Recommend(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, out.Source)

	assert.False(t, mr.Exists(CacheKey(profile)))

	_, err = handler.Recommend(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestHandler_Recommend_CacheErrorsIgnored(t *testing.T) {
	mr, client := setupRedis(t)
	cache := NewRedisCache(client)
	mr.Close()

	gen := &fakeGenerator{text: aiResponse(1)}
	handler := createTestHandler(t, gen, cache)

	out, err := handler.Recommend(context.Background(), createTestProfile())
	require.NoError(t, err)
	assert.Equal(t, models.SourceAI, out.Source)
	assert.Len(t, out.Recommendations, 1)
}

func TestHandler_Recommend_Timeout(t *testing.T) {
	slow := llmFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", fmt.Errorf("%w: %v", llm.ErrModelTimeout, ctx.Err())
	})

	cfg := createTestConfig()
	cfg.Timeout = 20 * time.Millisecond
	handler := NewHandler(cfg, slow, nil, nil, nil, logger.NewTestLogger(t))

	out, err := handler.Recommend(context.Background(), createTestProfile())
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, out.Source)
	assert.Equal(t, WarningOffline, out.Warning)
}

type llmFunc func(ctx context.Context, prompt string) (string, error)

func (f llmFunc) Generate(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }

func TestHandler_Fallback(t *testing.T) {
	handler := createTestHandler(t, &fakeGenerator{}, nil)

	tests := []struct {
		name   string
		skills []string
		want   []string
	}{
		{"python", []string{"Python"}, []string{"Full Stack Developer", "Software Engineer"}},
		{"design", []string{"UI sketching"}, []string{"UX/UI Designer"}},
		{"business", []string{"Sales"}, []string{"Product Manager"}},
		{"none", []string{"Cooking"}, []string{"Data Analyst", "Digital Marketing Specialist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := createTestProfile()
			profile.Skills = tt.skills

			recs := handler.Fallback(profile)
			got := make([]string, len(recs))
			for i, r := range recs {
				got[i] = r.Title
			}
			assert.Equal(t, tt.want, got)
			assertInvariants(t, recs)
			for i := 1; i < len(recs); i++ {
				assert.GreaterOrEqual(t, recs[i-1].Match, recs[i].Match)
			}
		})
	}
}

func TestHandler_Fallback_Deterministic(t *testing.T) {
	handler := createTestHandler(t, &fakeGenerator{}, nil)
	profile := createTestProfile()
	profile.Skills = []string{"React", "Figma", "Marketing"}

	first := handler.Fallback(profile)
	first[0].KeySkills[0] = "mutated"

	second := handler.Fallback(profile)
	assert.Equal(t, "JavaScript", second[0].KeySkills[0])
	assert.Len(t, second, 4)
}

func TestNewResponse(t *testing.T) {
	out := &Output{
		Recommendations: []models.CareerRecommendation{{Title: "A", Match: 80}},
		Warning:         WarningCached,
		Source:          models.SourceFallback,
	}
	resp := NewResponse(out)
	assert.True(t, resp.Success)
	assert.Equal(t, WarningCached, resp.Warning)
	assert.Len(t, resp.Recommendations, 1)
}

func TestLLMErrorsAreNotSurfaced(t *testing.T) {
	handler := createTestHandler(t, &fakeGenerator{err: errors.New("boom")}, nil)
	out, err := handler.Recommend(context.Background(), createTestProfile())
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, out.Source)
	assert.Equal(t, WarningCached, out.Warning)
}
