package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"winalyze/fetcher/requests"
	"winalyze/pkg/messages"

	"github.com/redis/go-redis/v9"
)

// ErrNoVersions is returned when the ddragon answers with an empty list.
var ErrNoVersions = errors.New("no versions available")

// Redis methods used for the version list.
type VersionCache interface {
	LIndex(ctx context.Context, key string, index int64) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// VersionResolver knows which ddragon version the champion icons should come from.
// The list is shared between instances through redis when available.
type VersionResolver struct {
	cache VersionCache
	host  string

	mu      sync.RWMutex
	current string
}

// NewVersionResolver creates a resolver starting at the fallback version.
// The cache may be nil.
func NewVersionResolver(cache VersionCache, fallback string) *VersionResolver {
	return &VersionResolver{
		cache:   cache,
		host:    ddragon,
		current: fallback,
	}
}

// Get the latest known version, never fails.
func (v *VersionResolver) LatestVersion(ctx context.Context) string {
	// Try to find the latest version in the redis cache.
	if v.cache != nil {
		if result, err := v.cache.LIndex(ctx, versionKey, 0).Result(); err == nil && result != "" {
			return result
		}
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Get all the versions from the ddragon.
// Set the latest ones on the Redis cache and return the newest.
func (v *VersionResolver) Refresh(ctx context.Context) (string, error) {
	// Format the versions api url.
	url := fmt.Sprintf("%s/api/versions.json", v.host)
	resp, err := requests.Request(ctx, url, http.MethodGet)
	if err != nil {
		return "", fmt.Errorf("couldn't get the current version: %w", err)
	}

	defer resp.Body.Close()

	if err := requests.CheckResponse(resp, url); err != nil {
		return "", err
	}

	// Read the version json/array into the version.
	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	if len(versions) == 0 {
		return "", ErrNoVersions
	}
	versions = versions[:min(keptVersions, len(versions))]

	v.mu.Lock()
	v.current = versions[0]
	v.mu.Unlock()

	if v.cache == nil {
		return versions[0], nil
	}

	// Replace the list.
	if err := v.cache.Del(ctx, versionKey).Err(); err != nil {
		return versions[0], fmt.Errorf("couldn't delete the Redis key: %w", err)
	}

	values := make([]any, len(versions))
	for i, version := range versions {
		values[i] = version
	}
	if err := v.cache.RPush(ctx, versionKey, values...).Err(); err != nil {
		return versions[0], fmt.Errorf("couldn't push the versions to Redis: %w", err)
	}

	return versions[0], nil
}

// ChampionIconURL returns the square icon of a champion for a given version.
func ChampionIconURL(version, championName string) string {
	return fmt.Sprintf(championImage, ddragon, version, championName)
}
