package collectorservice

import (
	"errors"
	"time"
	"winalyze/api/services/testutil"
	leaguefetcher "winalyze/fetcher/data/league"
	matchfetcher "winalyze/fetcher/data/match"
	playerfetcher "winalyze/fetcher/data/player"
)

const (
	testPuuid    = "test-puuid"
	testCooldown = 10 * time.Second
)

var errUpstream = errors.New("upstream failure")

// Helper to initialize the mocks.
// The redis mock is only wired when withRedis is set.
func setupTestService(withRedis bool) (
	*CollectorService,
	*testutil.MockProvider,
	*testutil.MockThrottleClient,
	*testutil.MemoryLogger,
) {
	mockProvider := new(testutil.MockProvider)
	mockRedis := new(testutil.MockThrottleClient)
	mockLogger := new(testutil.MemoryLogger)

	deps := &CollectorServiceDeps{
		Providers: func(platform string) (Provider, error) {
			return mockProvider, nil
		},
		Logger:   mockLogger,
		Cooldown: testCooldown,
	}
	if withRedis {
		deps.Redis = mockRedis
	}

	return NewCollectorService(deps), mockProvider, mockRedis, mockLogger
}

func testAccount() *playerfetcher.Account {
	return &playerfetcher.Account{Puuid: testPuuid, GameName: "Faker", TagLine: "KR1"}
}

func testSummoner() *playerfetcher.SummonerByPuuid {
	return &playerfetcher.SummonerByPuuid{Puuid: testPuuid, ProfileIconId: 6, SummonerLevel: 500}
}

func testLeague() []leaguefetcher.LeagueEntry {
	return []leaguefetcher.LeagueEntry{
		{Puuid: testPuuid, QueueType: leaguefetcher.QueueFlex, Tier: "MASTER", Rank: "I"},
		{Puuid: testPuuid, QueueType: leaguefetcher.QueueSolo, Tier: "CHALLENGER", Rank: "I", LeaguePoints: 1432},
	}
}

// Build a match where the tracked player plays the given champion.
func testMatch(matchId, champion string, win bool) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			GameDuration: 1800,
			Participants: []matchfetcher.MatchPlayer{
				{Puuid: "other", ChampionName: "Zed"},
				{
					Puuid:              testPuuid,
					ChampionName:       champion,
					Win:                win,
					Kills:              5,
					Deaths:             2,
					Assists:            8,
					TotalMinionsKilled: 200,
					VisionScore:        30,
					DragonKills:        1,
					BaronKills:         1,
					Challenges:         &matchfetcher.Challenges{DragonTakedowns: 2, RiftHeraldTakedowns: 1, BaronTakedowns: 1},
				},
			},
		},
	}
}
