package domain

import (
	"time"

	"github.com/google/uuid"
)

// Операции поиска, которые фиксируются в журнале
const (
	OperationSearchNearby = "search_nearby"
	OperationSearchByName = "search_by_name"
)

// SearchLogEntry - запись журнала поиска
type SearchLogEntry struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Operation      string    `json:"operation" db:"operation"`
	Lat            float64   `json:"lat" db:"lat"`
	Lon            float64   `json:"lon" db:"lon"`
	RadiusM        int       `json:"radius_m" db:"radius_m"`
	Query          string    `json:"query" db:"query"`
	ResultCount    int       `json:"result_count" db:"result_count"`
	UpstreamFailed bool      `json:"upstream_failed" db:"upstream_failed"`
	FailureKind    string    `json:"failure_kind,omitempty" db:"failure_kind"`
	Types          []string  `json:"types" db:"types"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Statistics - агрегированная статистика поиска
type Statistics struct {
	TotalSearches  int            `json:"total_searches"`
	UpstreamFailed int            `json:"upstream_failed"`
	EmptyResults   int            `json:"empty_results"`
	AvgResultCount float64        `json:"avg_result_count"`
	ByType         map[string]int `json:"by_type"`
	ByOperation    map[string]int `json:"by_operation"`
	LastUpdated    time.Time      `json:"last_updated"`
}
