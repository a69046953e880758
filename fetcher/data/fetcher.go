package data

import (
	"context"
	leaguefetcher "winalyze/fetcher/data/league"
	matchfetcher "winalyze/fetcher/data/match"
	playerfetcher "winalyze/fetcher/data/player"
	"winalyze/fetcher/requests"
	"winalyze/pkg/regions"
)

// Define a main fetcher.
// Every sub fetcher shares the limiter, the key limits are global.
type MainFetcher struct {
	Platform regions.SubRegion
	Player   *playerfetcher.PlayerFetcher
	League   *leaguefetcher.LeagueFetcher
	Match    *matchfetcher.MatchFetcher
}

// Function to instanciate the main fetcher for a platform like "EUW1".
func CreateMainFetcher(platform string, limiter *requests.RateLimiter, host requests.HostFunc) (*MainFetcher, error) {
	sub, err := regions.ParseSubRegion(platform)
	if err != nil {
		return nil, err
	}

	main, err := regions.GetMainRegion(sub)
	if err != nil {
		return nil, err
	}

	if host == nil {
		host = requests.RiotHost
	}

	return &MainFetcher{
		Platform: sub,
		Player:   playerfetcher.CreatePlayerFetcher(limiter, host, regions.GetAccountRegion(main), main, sub),
		League:   leaguefetcher.CreateLeagueFetcher(limiter, host, sub),
		Match:    matchfetcher.CreateMatchFetcher(limiter, host, main),
	}, nil
}

// ResolveIdentity finds the account behind a Riot ID.
func (f *MainFetcher) ResolveIdentity(ctx context.Context, gameName, tagLine string) (*playerfetcher.Account, error) {
	return f.Player.GetAccountByRiotId(ctx, gameName, tagLine)
}

// ResolveSummoner returns the summoner profile of an account.
func (f *MainFetcher) ResolveSummoner(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	return f.Player.GetSummonerData(ctx, puuid)
}

// ResolveLeague returns the ranked entries of an account.
func (f *MainFetcher) ResolveLeague(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	return f.League.GetLeagueByPuuid(ctx, puuid)
}

// ListRecentMatchIds returns the newest match ids of the account.
func (f *MainFetcher) ListRecentMatchIds(ctx context.Context, puuid string, count, queue int) ([]string, error) {
	return f.Player.GetMatchList(ctx, puuid, 0, count, queue)
}

// FetchMatch returns a full match record.
func (f *MainFetcher) FetchMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	return f.Match.GetMatchData(ctx, matchId)
}
