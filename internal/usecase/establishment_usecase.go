package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/infrastructure/overpass"
	"github.com/mediplus/geosearch/internal/pkg/utils"
	"github.com/mediplus/geosearch/internal/usecase/dto"
)

const (
	DefaultSearchRadius = 5000
	DefaultNameRadius   = 10000
)

// EstablishmentUseCaseConfig - параметры поиска, не зависящие от запроса
type EstablishmentUseCaseConfig struct {
	DefaultRadius int
	NameRadius    int
	CacheTTL      time.Duration
}

// EstablishmentUseCase - поиск медицинских учреждений через Overpass.
// Любой отказ источника сворачивается в пустой результат (или nil для lookup).
type EstablishmentUseCase struct {
	overpassRepo  repository.OverpassRepository
	cacheRepo     repository.CacheRepository     // может быть nil
	searchLogRepo repository.SearchLogRepository // может быть nil
	taxonomy      *domain.Taxonomy
	normalizer    *Normalizer
	logger        *zap.Logger
	cfg           EstablishmentUseCaseConfig
}

// NewEstablishmentUseCase - создание нового EstablishmentUseCase
func NewEstablishmentUseCase(
	overpassRepo repository.OverpassRepository,
	cacheRepo repository.CacheRepository,
	searchLogRepo repository.SearchLogRepository,
	taxonomy *domain.Taxonomy,
	logger *zap.Logger,
	cfg EstablishmentUseCaseConfig,
) *EstablishmentUseCase {
	if taxonomy == nil {
		taxonomy = domain.DefaultTaxonomy()
	}
	if cfg.DefaultRadius == 0 {
		cfg.DefaultRadius = DefaultSearchRadius
	}
	if cfg.NameRadius == 0 {
		cfg.NameRadius = DefaultNameRadius
	}

	return &EstablishmentUseCase{
		overpassRepo:  overpassRepo,
		cacheRepo:     cacheRepo,
		searchLogRepo: searchLogRepo,
		taxonomy:      taxonomy,
		normalizer:    NewNormalizer(taxonomy),
		logger:        logger,
		cfg:           cfg,
	}
}

// SearchEstablishments ищет учреждения в радиусе от center (nil - радиус по умолчанию).
// Непустой query фильтрует результат по name/speciality/type после сортировки.
func (uc *EstablishmentUseCase) SearchEstablishments(
	ctx context.Context,
	center domain.GeoPoint,
	radius *int,
	query string,
) []domain.Establishment {
	return uc.search(ctx, domain.OperationSearchNearby, center, resolveRadius(radius, uc.cfg.DefaultRadius), query)
}

// SearchByName ищет учреждения по названию в более широком радиусе
func (uc *EstablishmentUseCase) SearchByName(
	ctx context.Context,
	name string,
	center domain.GeoPoint,
	radius *int,
) []domain.Establishment {
	return uc.search(ctx, domain.OperationSearchByName, center, resolveRadius(radius, uc.cfg.NameRadius), name)
}

// GetEstablishmentDetails возвращает первый элемент с данным видом и id без нормализации.
// nil - не найден или любой отказ.
func (uc *EstablishmentUseCase) GetEstablishmentDetails(ctx context.Context, kind string, id int64) *domain.RawElement {
	if kind != domain.ElementNode && kind != domain.ElementWay {
		uc.logger.Debug("Unsupported element kind", zap.String("kind", kind))
		return nil
	}

	elements, err := uc.fetch(ctx, overpass.BuildElementQuery(kind, id))
	if err != nil {
		uc.logger.Warn("Establishment lookup failed",
			zap.String("kind", kind),
			zap.Int64("id", id),
			zap.String("failure_kind", failureKind(err)),
			zap.Error(err))
		return nil
	}

	if len(elements) == 0 {
		return nil
	}
	return &elements[0]
}

// CalculateDistance - расстояние между двумя точками в километрах
func (uc *EstablishmentUseCase) CalculateDistance(from, to domain.GeoPoint) float64 {
	return utils.HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Types возвращает типы учреждений в порядке таксономии вместе с тегами OSM
func (uc *EstablishmentUseCase) Types() []dto.EstablishmentTypeDTO {
	tagsByType := make(map[domain.EstablishmentType][]string)
	for _, vocab := range uc.taxonomy.Vocabularies {
		for _, entry := range vocab.Entries {
			tagsByType[entry.Type] = append(tagsByType[entry.Type], vocab.Key+"="+entry.Value)
		}
	}

	result := make([]dto.EstablishmentTypeDTO, 0, len(uc.taxonomy.Order))
	for _, et := range uc.taxonomy.Order {
		info := uc.taxonomy.Info(et)
		result = append(result, dto.EstablishmentTypeDTO{
			Type:  et,
			Label: info.Label,
			Icon:  info.Icon,
			Color: info.Color,
			Tags:  tagsByType[et],
		})
	}
	return result
}

func (uc *EstablishmentUseCase) search(
	ctx context.Context,
	operation string,
	center domain.GeoPoint,
	radius int,
	text string,
) []domain.Establishment {
	query := overpass.BuildAroundQuery(center, radius, uc.taxonomy.Vocabularies)

	elements, err := uc.fetch(ctx, query)
	if err != nil {
		uc.logger.Warn("Establishment search failed, returning empty result",
			zap.String("operation", operation),
			zap.Float64("lat", center.Lat),
			zap.Float64("lon", center.Lon),
			zap.Int("radius", radius),
			zap.String("failure_kind", failureKind(err)),
			zap.Error(err))
		uc.record(ctx, &domain.SearchLogEntry{
			Operation:      operation,
			Lat:            center.Lat,
			Lon:            center.Lon,
			RadiusM:        radius,
			Query:          text,
			UpstreamFailed: true,
			FailureKind:    failureKind(err),
		})
		return []domain.Establishment{}
	}

	establishments := uc.normalizer.Normalize(elements, center)
	establishments = FilterByText(establishments, text)

	uc.logger.Debug("Establishment search completed",
		zap.String("operation", operation),
		zap.Int("elements", len(elements)),
		zap.Int("results", len(establishments)))

	uc.record(ctx, &domain.SearchLogEntry{
		Operation:   operation,
		Lat:         center.Lat,
		Lon:         center.Lon,
		RadiusM:     radius,
		Query:       text,
		ResultCount: len(establishments),
		Types:       distinctTypes(establishments),
	})

	return establishments
}

// fetch выполняет запрос через кеш; в кеш попадают только успешные ответы
func (uc *EstablishmentUseCase) fetch(ctx context.Context, query string) ([]domain.RawElement, error) {
	if uc.cacheRepo != nil {
		cached, ok, err := uc.cacheRepo.GetElements(ctx, query)
		if err != nil {
			uc.logger.Warn("Failed to read overpass response from cache", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	elements, err := uc.overpassRepo.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil && uc.cfg.CacheTTL > 0 {
		if err := uc.cacheRepo.SetElements(ctx, query, elements, uc.cfg.CacheTTL); err != nil {
			uc.logger.Warn("Failed to cache overpass response", zap.Error(err))
		}
	}

	return elements, nil
}

// record пишет запись в журнал поиска; ошибки журнала не влияют на результат
func (uc *EstablishmentUseCase) record(ctx context.Context, entry *domain.SearchLogEntry) {
	if uc.searchLogRepo == nil {
		return
	}

	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()
	if entry.Types == nil {
		entry.Types = []string{}
	}

	if err := uc.searchLogRepo.Record(ctx, entry); err != nil {
		uc.logger.Warn("Failed to record search", zap.String("operation", entry.Operation), zap.Error(err))
	}
}

func resolveRadius(radius *int, fallback int) int {
	if radius == nil {
		return fallback
	}
	return *radius
}

func failureKind(err error) string {
	var upstreamErr *overpass.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return overpass.FailureTransport
	}
	return "unknown"
}

func distinctTypes(establishments []domain.Establishment) []string {
	seen := make(map[domain.EstablishmentType]bool)
	types := make([]string, 0)
	for _, est := range establishments {
		if seen[est.Type] {
			continue
		}
		seen[est.Type] = true
		types = append(types, string(est.Type))
	}
	return types
}
