package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"RIOT_PLATFORM", "MATCH_COUNT", "PAGE_SIZE", "SESSION_TTL", "REDIS_HOST", "POSTGRES_URL", "BUCKET_LOG_BUCKET"} {
		t.Setenv(key, "")
	}

	LoadEnv()

	assert.Equal(t, DefaultPlatform, Analysis.Platform)
	assert.Equal(t, DefaultMatchCount, Analysis.MatchCount)
	assert.Equal(t, DefaultPageSize, Analysis.PageSize)
	assert.Equal(t, DefaultSessionTTL, Analysis.SessionTTL)
	assert.Equal(t, 20, Limits.Lower.Count)
	assert.Equal(t, 2*time.Minute, Limits.Higher.ResetInterval)
	assert.False(t, Redis.Enabled())
	assert.False(t, Database.Enabled())
	assert.False(t, Bucket.Enabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RIOT_PLATFORM", "na1")
	t.Setenv("MATCH_COUNT", "50")
	t.Setenv("PAGE_SIZE", "-3")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("REDIS_HOST", "localhost")

	LoadEnv()

	assert.Equal(t, "NA1", Analysis.Platform)
	assert.Equal(t, 50, Analysis.MatchCount)
	assert.Equal(t, DefaultPageSize, Analysis.PageSize)
	assert.Equal(t, 5*time.Minute, Analysis.SessionTTL)
	assert.True(t, Redis.Enabled())
}

func TestLoadEnvRejectsEmptyLimits(t *testing.T) {
	t.Setenv("LIMIT_LOWER_COUNT", "0")
	t.Setenv("LIMIT_LOWER_RESET", "-1s")
	t.Setenv("LIMIT_HIGHER_COUNT", "-5")
	t.Setenv("LIMIT_HIGHER_RESET", "0s")

	LoadEnv()

	assert.Equal(t, LimitWindow{Count: 20, ResetInterval: time.Second}, Limits.Lower)
	assert.Equal(t, LimitWindow{Count: 100, ResetInterval: 2 * time.Minute}, Limits.Higher)
}

func TestClampMatchCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "zero uses default", count: 0, expected: DefaultMatchCount},
		{name: "negative uses default", count: -5, expected: DefaultMatchCount},
		{name: "inside range", count: 50, expected: 50},
		{name: "above maximum", count: 250, expected: MaxMatchCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampMatchCount(tt.count))
		})
	}
}
