package analysisservice

import (
	"context"
	"errors"
	"testing"
	repositories "winalyze/api/repositories/reference"
	collectorservice "winalyze/api/services/collector"
	"winalyze/api/services/testutil"
	repotestutil "winalyze/internal/testutil"
	"winalyze/pkg/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartAnalysis(t *testing.T) {
	t.Run("creates a new session", func(t *testing.T) {
		setup := setupTestService(t)
		filter := testFilter()
		setup.collector.On("Collect", mock.Anything, filter).Return(testResult(testRows(25)), nil).Once()

		created, err := setup.service.StartAnalysis(context.Background(), filter)

		require.NoError(t, err)
		_, err = uuid.Parse(created.SessionId)
		assert.NoError(t, err)
		assert.Equal(t, 25, created.Matches)
		assert.Equal(t, 3, created.TotalPages)
		assert.Equal(t, "Caps", created.Player.GameName)
		assert.Equal(t, "EUW1", created.Player.Platform)
		assert.Equal(t, 412, created.Player.SummonerLevel)
		assert.Equal(t, "DIAMOND", created.Player.SoloTier)
		assert.Equal(t, 40, created.Player.LeaguePoints)

		session, err := setup.service.getSession(created.SessionId)
		require.NoError(t, err)
		assert.Len(t, session.Rows, 25)
		// The comparison tier isn't the player's own until picked.
		assert.Equal(t, "GOLD", session.rank)
		testutil.VerifyAllMocks(t, setup.collector)
	})

	t.Run("replaces an existing session", func(t *testing.T) {
		setup := setupTestService(t)
		sessionId := setup.seedSession(testRows(25))
		_, err := setup.service.GetPage(context.Background(), sessionId, 3)
		require.NoError(t, err)

		filter := testFilter()
		filter.SessionId = sessionId
		setup.collector.On("Collect", mock.Anything, filter).Return(testResult(testRows(4)), nil).Once()

		created, err := setup.service.StartAnalysis(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, sessionId, created.SessionId)
		assert.Equal(t, 1, created.TotalPages)

		page, err := setup.service.GetPage(context.Background(), sessionId, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Matches, 4)
		assert.Equal(t, 1, setup.logger.Count("[INFO]"))
	})

	t.Run("unknown session to replace", func(t *testing.T) {
		setup := setupTestService(t)
		filter := testFilter()
		filter.SessionId = uuid.NewString()

		created, err := setup.service.StartAnalysis(context.Background(), filter)

		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Nil(t, created)
		setup.collector.AssertNotCalled(t, "Collect", mock.Anything, mock.Anything)
	})
}

func TestStartAnalysisStore(t *testing.T) {
	tests := []struct {
		name        string
		collectErr  error
		expectedErr error
		shouldStore bool
	}{
		{name: "stores the session with its ttl", shouldStore: true},
		{name: "player not found", collectErr: collectorservice.ErrPlayerNotFound, expectedErr: collectorservice.ErrPlayerNotFound},
		{name: "no matches", collectErr: collectorservice.ErrNoMatchesFound, expectedErr: collectorservice.ErrNoMatchesFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCollector := new(testutil.MockCollector[*collectorservice.Result])
			mockSessions := new(testutil.MockMemCache[*Session])
			service := NewAnalysisService(&AnalysisServiceDeps{
				Collector:  mockCollector,
				Sessions:   mockSessions,
				Versions:   new(testutil.MockVersionResolver),
				Logger:     &testutil.MemoryLogger{},
				SessionTTL: testSessionTTL,
			})

			filter := testFilter()
			if tt.collectErr != nil {
				mockCollector.On("Collect", mock.Anything, filter).Return(nil, tt.collectErr).Once()
			} else {
				mockCollector.On("Collect", mock.Anything, filter).Return(testResult(testRows(3)), nil).Once()
			}
			if tt.shouldStore {
				mockSessions.On("Set", mock.AnythingOfType("string"), mock.AnythingOfType("*analysisservice.Session"), testSessionTTL).Once()
			}

			created, err := service.StartAnalysis(context.Background(), filter)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, created.Matches)
			}
			testutil.VerifyAllMocks(t, mockCollector, mockSessions)
		})
	}
}

func TestGetSummary(t *testing.T) {
	t.Run("defaults to gold", func(t *testing.T) {
		setup := setupTestService(t)
		sessionId := setup.seedSession(testRows(3))
		gold := stats.ReferenceOrDefault("GOLD")
		setup.references.On("GetReference", mock.Anything, "GOLD").Return(&gold, nil).Once()

		summary, err := setup.service.GetSummary(context.Background(), sessionId, "")

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Metrics.Total)
		assert.Equal(t, 2, summary.Metrics.Wins)
		assert.Equal(t, "GOLD", summary.Rank)
		assert.Equal(t, "Gold", summary.RankName)
		assert.Equal(t, "66.7%", summary.Cards.Winrate)
		assert.InDelta(t, 2.6, summary.Radar.Reference[0], 1e-9)
		require.NotEmpty(t, summary.MostPlayed)
		assert.Equal(t, "Ahri", summary.MostPlayed[0].ChampionName)
		assert.Contains(t, summary.MostPlayed[0].Icon, testVersion)
		testutil.VerifyAllMocks(t, setup.references)
	})

	t.Run("remembers the selected tier", func(t *testing.T) {
		setup := setupTestService(t)
		sessionId := setup.seedSession(testRows(3))
		setup.references.On("GetReference", mock.Anything, "DIAMOND").Return(nil, repositories.ErrReferenceNotFound).Twice()

		summary, err := setup.service.GetSummary(context.Background(), sessionId, "diamond")
		require.NoError(t, err)
		assert.Equal(t, "DIAMOND", summary.Rank)
		assert.InDelta(t, 3.3, summary.Radar.Reference[0], 1e-9)

		summary, err = setup.service.GetSummary(context.Background(), sessionId, "")
		require.NoError(t, err)
		assert.Equal(t, "DIAMOND", summary.Rank)
		assert.Zero(t, setup.logger.Count("[ERROR]"))
		testutil.VerifyAllMocks(t, setup.references)
	})

	t.Run("unknown tier compares against gold", func(t *testing.T) {
		setup := setupTestService(t)
		sessionId := setup.seedSession(testRows(3))
		setup.references.On("GetReference", mock.Anything, "GOLD").Return(nil, errors.New("connection refused")).Once()

		summary, err := setup.service.GetSummary(context.Background(), sessionId, "wood")

		require.NoError(t, err)
		assert.Equal(t, "GOLD", summary.Rank)
		assert.InDelta(t, 2.6, summary.Radar.Reference[0], 1e-9)
		assert.Equal(t, 1, setup.logger.Count("[ERROR]"))
	})

	t.Run("unknown session", func(t *testing.T) {
		setup := setupTestService(t)

		summary, err := setup.service.GetSummary(context.Background(), uuid.NewString(), "GOLD")

		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Nil(t, summary)
	})
}

func TestGetPage(t *testing.T) {
	setup := setupTestService(t)
	sessionId := setup.seedSession(testRows(25))
	ctx := context.Background()

	tests := []struct {
		name          string
		page          int
		expectedPage  int
		expectedLen   int
		expectedFirst string
		hasPrev       bool
		hasNext       bool
	}{
		{name: "current page on first access", page: 0, expectedPage: 1, expectedLen: 10, expectedFirst: "EUW1_25", hasNext: true},
		{name: "last page", page: 3, expectedPage: 3, expectedLen: 5, expectedFirst: "EUW1_5", hasPrev: true},
		{name: "past the end", page: 4, expectedPage: 4, expectedLen: 0},
		{name: "current page is kept", page: 0, expectedPage: 3, expectedLen: 5, expectedFirst: "EUW1_5", hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := setup.service.GetPage(ctx, sessionId, tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPage, page.Page)
			assert.Equal(t, 3, page.TotalPages)
			assert.Len(t, page.Matches, tt.expectedLen)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Equal(t, tt.hasNext, page.HasNext)
			if tt.expectedFirst != "" {
				assert.Equal(t, tt.expectedFirst, page.Matches[0].MatchId)
			}
		})
	}
}

func TestNavigate(t *testing.T) {
	setup := setupTestService(t)
	sessionId := setup.seedSession(testRows(25))
	ctx := context.Background()

	steps := []struct {
		direction    string
		expectedPage int
	}{
		{DirectionPrev, 1},
		{DirectionNext, 2},
		{DirectionNext, 3},
		{DirectionNext, 3},
		{DirectionPrev, 2},
	}

	for _, step := range steps {
		page, err := setup.service.Navigate(ctx, sessionId, step.direction)
		require.NoError(t, err)
		assert.Equal(t, step.expectedPage, page.Page, step.direction)
	}

	_, err := setup.service.Navigate(ctx, sessionId, "sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = setup.service.Navigate(ctx, uuid.NewString(), DirectionNext)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetLeaderboards(t *testing.T) {
	setup := setupTestService(t)
	rows := testRows(6)
	rows = append(rows, stats.MatchParticipantRow{MatchId: "EUW1_0", ChampionName: "Lux", Win: true, GameDurationSeconds: 1500})
	sessionId := setup.seedSession(rows)

	boards, err := setup.service.GetLeaderboards(context.Background(), sessionId)

	require.NoError(t, err)
	assert.Equal(t, sessionId, boards.SessionId)
	require.Len(t, boards.MostPlayed, 3)
	assert.Equal(t, "Ahri", boards.MostPlayed[0].ChampionName)
	assert.Equal(t, 4, boards.MostPlayed[0].GamesPlayed)
	for _, entry := range boards.BestWinrate {
		assert.GreaterOrEqual(t, entry.GamesPlayed, stats.MinGamesForWinrate)
		assert.Contains(t, entry.Icon, entry.ChampionName)
	}
}

func TestListReferences(t *testing.T) {
	stored := []stats.RankReference{{Tier: "GOLD", KDA: 2.8, CSPerMin: 6.1, VisionPerMin: 1, ObjectivesPerGame: 0.7}}

	tests := []struct {
		name        string
		repoResult  *repotestutil.RepoGetData[[]stats.RankReference]
		expectedLen int
		errorLogs   int
	}{
		{name: "stored table", repoResult: repotestutil.ToRepoGetData(stored), expectedLen: 1},
		{name: "empty table uses the defaults", repoResult: repotestutil.ToRepoGetData([]stats.RankReference{}), expectedLen: 10},
		{name: "database error uses the defaults", repoResult: repotestutil.GetMockRepoError[[]stats.RankReference](), expectedLen: 10, errorLogs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTestService(t)
			setup.references.On("ListReferences", mock.Anything).Return(tt.repoResult.Data, tt.repoResult.Err).Once()

			references, err := setup.service.ListReferences(context.Background())

			require.NoError(t, err)
			assert.Len(t, references, tt.expectedLen)
			assert.Equal(t, tt.errorLogs, setup.logger.Count("[ERROR]"))
			if tt.errorLogs > 0 {
				assert.Contains(t, setup.logger.Lines[0], repotestutil.DatabaseError)
			}
			testutil.VerifyAllMocks(t, setup.references)
		})
	}

	t.Run("without a repository", func(t *testing.T) {
		service := NewAnalysisService(&AnalysisServiceDeps{Logger: &testutil.MemoryLogger{}})

		references, err := service.ListReferences(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stats.DefaultReferences(), references)
	})
}
