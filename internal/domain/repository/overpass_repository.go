package repository

import (
	"context"

	"github.com/mediplus/geosearch/internal/domain"
)

// OverpassRepository определяет доступ к внешнему источнику геоданных (Overpass API)
type OverpassRepository interface {
	// Execute выполняет Overpass QL запрос и возвращает массив elements
	Execute(ctx context.Context, query string) ([]domain.RawElement, error)
}
