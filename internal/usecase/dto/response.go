package dto

import "github.com/mediplus/geosearch/internal/domain"

// EstablishmentSearchResponse - результат поиска учреждений (отсортирован по расстоянию)
type EstablishmentSearchResponse struct {
	Establishments []domain.Establishment `json:"establishments"`
	Total          int                    `json:"total"`
}

// EstablishmentTypeDTO - тип учреждения с метаданными и тегами OSM, которые ему соответствуют
type EstablishmentTypeDTO struct {
	Type  domain.EstablishmentType `json:"type"`
	Label string                   `json:"label"`
	Icon  string                   `json:"icon"`
	Color string                   `json:"color"`
	Tags  []string                 `json:"tags"`
}

// DistanceResponse - расстояние в километрах
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}
