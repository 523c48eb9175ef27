package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/repository/postgres"
	"github.com/mediplus/geosearch/internal/repository/postgres/testhelpers"
)

// SearchLogRepositoryTestSuite тестирует журнал поиска на реальной БД
type SearchLogRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.SearchLogRepository
	ctx    context.Context
}

func (s *SearchLogRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.Require().NoError(db.Migrate(context.Background()))

	s.repo = postgres.NewSearchLogRepository(db, s.testDB.Logger)
}

func (s *SearchLogRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *SearchLogRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *SearchLogRepositoryTestSuite) record(operation string, results int, failed bool, types ...string) {
	entry := &domain.SearchLogEntry{
		ID:             uuid.New(),
		Operation:      operation,
		Lat:            48.8566,
		Lon:            2.3522,
		RadiusM:        5000,
		ResultCount:    results,
		UpstreamFailed: failed,
		Types:          types,
		CreatedAt:      time.Now().UTC(),
	}
	if entry.Types == nil {
		entry.Types = []string{}
	}
	if failed {
		entry.FailureKind = "transport"
	}
	s.Require().NoError(s.repo.Record(s.ctx, entry))
}

func (s *SearchLogRepositoryTestSuite) TestGetStatistics_Empty() {
	stats, err := s.repo.GetStatistics(s.ctx)

	s.NoError(err)
	s.Equal(0, stats.TotalSearches)
	s.Equal(0.0, stats.AvgResultCount)
	s.Empty(stats.ByType)
	s.NotZero(stats.LastUpdated)
}

func (s *SearchLogRepositoryTestSuite) TestGetStatistics_Aggregates() {
	s.record(domain.OperationSearchNearby, 4, false, "pharmacy", "doctor")
	s.record(domain.OperationSearchNearby, 2, false, "pharmacy")
	s.record(domain.OperationSearchNearby, 0, false)
	s.record(domain.OperationSearchByName, 0, true)

	stats, err := s.repo.GetStatistics(s.ctx)

	s.NoError(err)
	s.Equal(4, stats.TotalSearches)
	s.Equal(1, stats.UpstreamFailed)
	s.Equal(1, stats.EmptyResults)
	s.InDelta(2.0, stats.AvgResultCount, 1e-9)
	s.Equal(map[string]int{"pharmacy": 2, "doctor": 1}, stats.ByType)
	s.Equal(map[string]int{
		domain.OperationSearchNearby: 3,
		domain.OperationSearchByName: 1,
	}, stats.ByOperation)
}

func TestSearchLogRepositorySuite(t *testing.T) {
	suite.Run(t, new(SearchLogRepositoryTestSuite))
}
