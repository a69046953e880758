package analysisservice

import (
	"fmt"
	"testing"
	"time"
	"winalyze/api/cache"
	"winalyze/api/dto"
	"winalyze/api/filters"
	collectorservice "winalyze/api/services/collector"
	"winalyze/api/services/testutil"
	leaguefetcher "winalyze/fetcher/data/league"
	playerfetcher "winalyze/fetcher/data/player"
	"winalyze/pkg/stats"

	"github.com/stretchr/testify/mock"
)

const (
	testVersion    = "14.12.1"
	testSessionTTL = 30 * time.Minute
	testSessionId  = "6f1c1a4e-8d2b-4c3e-9a51-0b7d2f3e4a10"
)

type testSetup struct {
	service    *AnalysisService
	collector  *testutil.MockCollector[*collectorservice.Result]
	versions   *testutil.MockVersionResolver
	references *testutil.MockReferenceRepository
	logger     *testutil.MemoryLogger
	sessions   *cache.MemCache[*Session]
}

// Helper to initialize the service over a real session cache.
func setupTestService(t *testing.T) *testSetup {
	t.Helper()

	setup := &testSetup{
		collector:  new(testutil.MockCollector[*collectorservice.Result]),
		versions:   new(testutil.MockVersionResolver),
		references: new(testutil.MockReferenceRepository),
		logger:     &testutil.MemoryLogger{},
		sessions:   cache.NewMemCache[*Session](time.Minute),
	}
	t.Cleanup(setup.sessions.Close)

	setup.versions.On("LatestVersion", mock.Anything).Return(testVersion).Maybe()

	setup.service = NewAnalysisService(&AnalysisServiceDeps{
		Collector:  setup.collector,
		Sessions:   setup.sessions,
		Versions:   setup.versions,
		References: setup.references,
		Logger:     setup.logger,
		SessionTTL: testSessionTTL,
		PageSize:   10,
	})
	return setup
}

// Store a session holding the given rows and return its id.
func (s *testSetup) seedSession(rows []stats.MatchParticipantRow) string {
	session := &Session{
		ID:     testSessionId,
		Player: dto.PlayerIdentity{GameName: "Caps", TagLine: "EUW", Platform: "EUW1"},
		Rows:   rows,
		page:   1,
		rank:   "GOLD",
	}
	s.sessions.Set(session.ID, session, testSessionTTL)
	return session.ID
}

func testResult(rows []stats.MatchParticipantRow) *collectorservice.Result {
	return &collectorservice.Result{
		Platform:  "EUW1",
		Account:   &playerfetcher.Account{Puuid: "test-puuid", GameName: "Caps", TagLine: "EUW"},
		Summoner:  &playerfetcher.SummonerByPuuid{Puuid: "test-puuid", ProfileIconId: 29, SummonerLevel: 412},
		SoloQueue: &leaguefetcher.LeagueEntry{
			QueueType:    leaguefetcher.QueueSolo,
			Tier:         "DIAMOND",
			Rank:         "II",
			LeaguePoints: 40,
		},
		Rows: rows,
	}
}

func testFilter() *filters.AnalysisFilter {
	return &filters.AnalysisFilter{GameName: "Caps", TagLine: "EUW", Platform: "EUW1", Count: 30}
}

// Build n rows, newest first, cycling over three champions.
func testRows(n int) []stats.MatchParticipantRow {
	champions := []string{"Ahri", "Zed", "Ahri"}
	rows := make([]stats.MatchParticipantRow, n)
	for i := range rows {
		rows[i] = stats.MatchParticipantRow{
			MatchId:             fmt.Sprintf("EUW1_%d", n-i),
			ChampionName:        champions[i%len(champions)],
			Win:                 i%2 == 0,
			Kills:               5,
			Deaths:              2,
			Assists:             3,
			TotalMinionsKilled:  180,
			VisionScore:         25,
			GameDurationSeconds: 1800,
		}
	}
	return rows
}
