package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"winalyze/api/filters"
	leaguefetcher "winalyze/fetcher/data/league"
	matchfetcher "winalyze/fetcher/data/match"
	playerfetcher "winalyze/fetcher/data/player"
	"winalyze/pkg/stats"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// Type of the context created by context.WithTimeout.
const DefaultTimerCtx = "*context.timerCtx"

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the Collector service tests.
// ============================================================================

// Riot API provider mock implementation.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ResolveIdentity(ctx context.Context, gameName, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockProvider) ResolveSummoner(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.SummonerByPuuid), args.Error(1)
}

func (m *MockProvider) ResolveLeague(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

func (m *MockProvider) ListRecentMatchIds(ctx context.Context, puuid string, count, queue int) ([]string, error) {
	args := m.Called(ctx, puuid, count, queue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProvider) FetchMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

// Redis client mock implementation, used for the cooldown lock.
type MockThrottleClient struct {
	mock.Mock
}

func (m *MockThrottleClient) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.BoolCmd)
}

func (m *MockThrottleClient) TTL(ctx context.Context, key string) *redis.DurationCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.DurationCmd)
}

// ============================================================================
// Mock Implementations used in the Analysis service tests.
// ============================================================================

// Collector mock implementation.
type MockCollector[T any] struct {
	mock.Mock
}

func (m *MockCollector[T]) Collect(ctx context.Context, filter *filters.AnalysisFilter) (T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache[T any] struct {
	mock.Mock
}

func (m *MockMemCache[T]) Set(key string, value T, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache[T]) Get(key string) (T, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Bool(1)
	}
	return args.Get(0).(T), args.Bool(1)
}

// Version resolver mock implementation.
type MockVersionResolver struct {
	mock.Mock
}

func (m *MockVersionResolver) LatestVersion(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

// Reference repository mock implementation.
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListReferences(ctx context.Context) ([]stats.RankReference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.RankReference), args.Error(1)
}

func (m *MockReferenceRepository) GetReference(ctx context.Context, tier string) (*stats.RankReference, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.RankReference), args.Error(1)
}

// ============================================================================
// Logger used by every service test.
// ============================================================================

// Logger that keeps the lines in memory.
type MemoryLogger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *MemoryLogger) Infof(format string, args ...any) {
	l.append("[INFO] " + fmt.Sprintf(format, args...))
}

func (l *MemoryLogger) Errorf(format string, args ...any) {
	l.append("[ERROR] " + fmt.Sprintf(format, args...))
}

// Count returns how many lines start with the given level, like "[ERROR]".
func (l *MemoryLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, line := range l.Lines {
		if strings.HasPrefix(line, level) {
			count++
		}
	}
	return count
}

func (l *MemoryLogger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, line)
}
