package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mediplus/geosearch/internal/domain"
)

// MockOverpassRepository is a mock of OverpassRepository
type MockOverpassRepository struct {
	mock.Mock
}

func (m *MockOverpassRepository) Execute(ctx context.Context, query string) ([]domain.RawElement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawElement), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetElements(ctx context.Context, query string) ([]domain.RawElement, bool, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.RawElement), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetElements(ctx context.Context, query string, elements []domain.RawElement, ttl time.Duration) error {
	args := m.Called(ctx, query, elements, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// MockSearchLogRepository is a mock of SearchLogRepository
type MockSearchLogRepository struct {
	mock.Mock
}

func (m *MockSearchLogRepository) Record(ctx context.Context, entry *domain.SearchLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSearchLogRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrInt(v int) *int {
	return &v
}

// node создает node-элемент с координатами
func node(id int64, lat, lon float64, tags map[string]string) domain.RawElement {
	return domain.RawElement{Type: domain.ElementNode, ID: id, Lat: ptrFloat64(lat), Lon: ptrFloat64(lon), Tags: tags}
}
