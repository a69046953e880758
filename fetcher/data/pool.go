package data

import (
	"sync"
	"winalyze/fetcher/requests"
	"winalyze/pkg/regions"
)

// FetcherPool keeps one fetcher per platform.
// Riot limits are enforced per region, each platform gets its own limiter.
type FetcherPool struct {
	mu       sync.Mutex
	fetchers map[regions.SubRegion]*MainFetcher
	host     requests.HostFunc
	limiter  func() *requests.RateLimiter
}

// NewFetcherPool creates an empty pool.
func NewFetcherPool(host requests.HostFunc, limiter func() *requests.RateLimiter) *FetcherPool {
	if limiter == nil {
		limiter = requests.CreateRateLimiter
	}
	return &FetcherPool{
		fetchers: make(map[regions.SubRegion]*MainFetcher),
		host:     host,
		limiter:  limiter,
	}
}

// ForPlatform returns the fetcher of a platform, creating it on first use.
func (p *FetcherPool) ForPlatform(platform string) (*MainFetcher, error) {
	sub, err := regions.ParseSubRegion(platform)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if fetcher, ok := p.fetchers[sub]; ok {
		return fetcher, nil
	}

	fetcher, err := CreateMainFetcher(string(sub), p.limiter(), p.host)
	if err != nil {
		return nil, err
	}
	p.fetchers[sub] = fetcher
	return fetcher, nil
}
