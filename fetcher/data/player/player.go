package playerfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"winalyze/fetcher/requests"
	"winalyze/pkg/messages"
	"winalyze/pkg/regions"
)

// The player fetcher with it's limit and routes.
type PlayerFetcher struct {
	limiter  *requests.RateLimiter // Pointer to the limiter, since it's shared.
	host     requests.HostFunc
	account  regions.MainRegion
	region   regions.MainRegion
	platform regions.SubRegion
}

// Create a player fetcher.
func CreatePlayerFetcher(limiter *requests.RateLimiter, host requests.HostFunc, account, region regions.MainRegion, platform regions.SubRegion) *PlayerFetcher {
	return &PlayerFetcher{
		limiter:  limiter,
		host:     host,
		account:  account,
		region:   region,
		platform: platform,
	}
}

// GetAccountByRiotId resolves a Riot ID into the account, on the regional route.
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, gameName, tagLine string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		p.host(string(p.account)), url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := p.getJson(ctx, endpoint, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Get a players summoner data, on the platform route.
func (p *PlayerFetcher) GetSummonerData(ctx context.Context, puuid string) (*SummonerByPuuid, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", p.host(string(p.platform)), url.PathEscape(puuid))

	var summoner SummonerByPuuid
	if err := p.getJson(ctx, endpoint, nil, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// Get a players match list, newest first.
// A queue of 0 doesn't filter.
func (p *PlayerFetcher) GetMatchList(ctx context.Context, puuid string, start, count, queue int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids", p.host(string(p.region)), url.PathEscape(puuid))
	params := map[string]string{
		"start": strconv.Itoa(start),
		"count": strconv.Itoa(count),
	}
	if queue != 0 {
		params["queue"] = strconv.Itoa(queue)
	}

	var matches []string
	if err := p.getJson(ctx, endpoint, params, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Wait for the limiter, run the request and decode the body.
func (p *PlayerFetcher) getJson(ctx context.Context, endpoint string, params map[string]string, target any) error {
	if err := p.limiter.WaitApi(ctx); err != nil {
		return err
	}

	resp, err := requests.AuthRequest(ctx, endpoint, http.MethodGet, params)
	if err != nil {
		return fmt.Errorf(messages.RequestFailedMsg+": %w", endpoint, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if err := requests.CheckResponse(resp, endpoint); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}
	return nil
}
