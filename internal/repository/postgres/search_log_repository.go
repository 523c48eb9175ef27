package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
)

type searchLogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSearchLogRepository создает новый экземпляр search log repository
func NewSearchLogRepository(db *DB, logger *zap.Logger) repository.SearchLogRepository {
	return &searchLogRepository{
		db:     db,
		logger: logger,
	}
}

// Record сохраняет запись о выполненном поиске
func (r *searchLogRepository) Record(ctx context.Context, entry *domain.SearchLogEntry) error {
	query := `
		INSERT INTO search_log (
			id, operation, lat, lon, radius_m, query,
			result_count, upstream_failed, failure_kind, types, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Operation,
		entry.Lat,
		entry.Lon,
		entry.RadiusM,
		entry.Query,
		entry.ResultCount,
		entry.UpstreamFailed,
		entry.FailureKind,
		pq.Array(entry.Types),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}

	return nil
}

// GetStatistics возвращает агрегированную статистику по журналу поиска
func (r *searchLogRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		ByType:      make(map[string]int),
		ByOperation: make(map[string]int),
		LastUpdated: time.Now().UTC(),
	}

	totals := struct {
		Total  int     `db:"total"`
		Failed int     `db:"failed"`
		Empty  int     `db:"empty"`
		Avg    float64 `db:"avg_results"`
	}{}

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE upstream_failed) AS failed,
			COUNT(*) FILTER (WHERE NOT upstream_failed AND result_count = 0) AS empty,
			COALESCE(AVG(result_count) FILTER (WHERE NOT upstream_failed), 0)::float8 AS avg_results
		FROM search_log
	`
	if err := r.db.GetContext(ctx, &totals, query); err != nil {
		r.logger.Error("failed to get search totals", zap.Error(err))
		return nil, fmt.Errorf("get search totals: %w", err)
	}

	stats.TotalSearches = totals.Total
	stats.UpstreamFailed = totals.Failed
	stats.EmptyResults = totals.Empty
	stats.AvgResultCount = totals.Avg

	if err := r.countInto(ctx, stats.ByOperation, `
		SELECT operation, COUNT(*)
		FROM search_log
		GROUP BY operation
	`); err != nil {
		r.logger.Error("failed to get operation stats", zap.Error(err))
		return nil, fmt.Errorf("get operation stats: %w", err)
	}

	if err := r.countInto(ctx, stats.ByType, `
		SELECT t, COUNT(*)
		FROM search_log, unnest(types) AS t
		GROUP BY t
	`); err != nil {
		r.logger.Error("failed to get type stats", zap.Error(err))
		return nil, fmt.Errorf("get type stats: %w", err)
	}

	return stats, nil
}

// countInto выполняет запрос вида (key, count) и заполняет map
func (r *searchLogRepository) countInto(ctx context.Context, dst map[string]int, query string) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		dst[key] = count
	}

	return rows.Err()
}
