package repository

import (
	"context"

	"github.com/mediplus/geosearch/internal/domain"
)

// SearchLogRepository - журнал поисковых запросов и агрегаты по нему
type SearchLogRepository interface {
	// Record сохраняет запись о выполненном поиске
	Record(ctx context.Context, entry *domain.SearchLogEntry) error

	// GetStatistics возвращает агрегированную статистику
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
