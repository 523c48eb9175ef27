package handler

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/pkg/errors"
	"github.com/mediplus/geosearch/internal/pkg/utils"
	"github.com/mediplus/geosearch/internal/pkg/validator"
	"github.com/mediplus/geosearch/internal/usecase"
	"github.com/mediplus/geosearch/internal/usecase/dto"
)

// EstablishmentHandler - обработчик поиска медицинских учреждений
type EstablishmentHandler struct {
	establishmentUC *usecase.EstablishmentUseCase
	logger          *zap.Logger
}

// NewEstablishmentHandler - создание нового EstablishmentHandler
func NewEstablishmentHandler(establishmentUC *usecase.EstablishmentUseCase, logger *zap.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{
		establishmentUC: establishmentUC,
		logger:          logger,
	}
}

// SearchNearby godoc
// @Summary Поиск учреждений рядом с точкой
// @Description Возвращает больницы, клиники, аптеки, лаборатории, стоматологов, врачей и кинезитерапевтов в радиусе от точки, отсортированные по расстоянию. Отказ источника данных дает пустой список.
// @Tags Establishments
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius query int false "Радиус в метрах" default(5000)
// @Param q query string false "Фильтр по названию, специальности или типу"
// @Success 200 {object} utils.SuccessResponse{data=dto.EstablishmentSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/establishments/nearby [get]
func (h *EstablishmentHandler) SearchNearby(c *fiber.Ctx) error {
	var req dto.NearbySearchRequest
	var err error

	if req.Lat, req.Lon, err = parsePoint(c); err != nil {
		return utils.SendError(c, err)
	}
	if req.Radius, err = parseRadius(c); err != nil {
		return utils.SendError(c, err)
	}
	req.Query = c.Query("q")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	center := domain.GeoPoint{Lat: *req.Lat, Lon: *req.Lon}
	result := h.establishmentUC.SearchEstablishments(c.UserContext(), center, req.Radius, req.Query)

	return utils.SendSuccess(c, dto.EstablishmentSearchResponse{
		Establishments: result,
		Total:          len(result),
	}, &utils.Meta{Total: len(result)})
}

// SearchByName godoc
// @Summary Поиск учреждений по названию
// @Description Ищет учреждения в расширенном радиусе и оставляет те, чье название, специальность или тип содержит name
// @Tags Establishments
// @Produce json
// @Param name query string true "Название (минимум 2 символа)"
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius query int false "Радиус в метрах" default(10000)
// @Success 200 {object} utils.SuccessResponse{data=dto.EstablishmentSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/establishments/search [get]
func (h *EstablishmentHandler) SearchByName(c *fiber.Ctx) error {
	var req dto.NameSearchRequest
	var err error

	req.Name = c.Query("name")
	if req.Lat, req.Lon, err = parsePoint(c); err != nil {
		return utils.SendError(c, err)
	}
	if req.Radius, err = parseRadius(c); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	center := domain.GeoPoint{Lat: *req.Lat, Lon: *req.Lon}
	result := h.establishmentUC.SearchByName(c.UserContext(), req.Name, center, req.Radius)

	return utils.SendSuccess(c, dto.EstablishmentSearchResponse{
		Establishments: result,
		Total:          len(result),
	}, &utils.Meta{Total: len(result)})
}

// GetDetails godoc
// @Summary Сырой элемент OSM по идентификатору
// @Description Возвращает элемент Overpass (node или way) без нормализации
// @Tags Establishments
// @Produce json
// @Param kind path string true "Вид элемента" Enums(node, way)
// @Param id path int true "Идентификатор OSM"
// @Success 200 {object} utils.SuccessResponse{data=domain.RawElement}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/establishments/{kind}/{id} [get]
func (h *EstablishmentHandler) GetDetails(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "must be an integer"}))
	}

	req := dto.DetailsRequest{Kind: c.Params("kind"), ID: id}
	if err := validator.Validate(&req); err != nil {
		if req.Kind != domain.ElementNode && req.Kind != domain.ElementWay {
			return utils.SendError(c, errors.ErrInvalidElementKind)
		}
		return utils.SendError(c, err)
	}

	element := h.establishmentUC.GetEstablishmentDetails(c.UserContext(), req.Kind, req.ID)
	if element == nil {
		return utils.SendError(c, errors.ErrEstablishmentNotFound)
	}

	return utils.SendSuccess(c, element, nil)
}

// GetTypes godoc
// @Summary Типы учреждений
// @Description Возвращает типы учреждений с подписью, иконкой, цветом и соответствующими тегами OSM
// @Tags Establishments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.EstablishmentTypeDTO}
// @Router /api/v1/establishment-types [get]
func (h *EstablishmentHandler) GetTypes(c *fiber.Ctx) error {
	types := h.establishmentUC.Types()
	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// CalculateDistance godoc
// @Summary Расстояние между двумя точками
// @Description Расстояние по большому кругу в километрах
// @Tags Establishments
// @Accept json
// @Produce json
// @Param request body dto.DistanceRequest true "Две точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistanceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/distance [post]
func (h *EstablishmentHandler) CalculateDistance(c *fiber.Ctx) error {
	var req dto.DistanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	distance := h.establishmentUC.CalculateDistance(
		domain.GeoPoint{Lat: *req.From.Lat, Lon: *req.From.Lon},
		domain.GeoPoint{Lat: *req.To.Lat, Lon: *req.To.Lon},
	)

	return utils.SendSuccess(c, dto.DistanceResponse{DistanceKm: distance}, nil)
}

// parsePoint читает lat/lon из query; отсутствующий параметр - nil
func parsePoint(c *fiber.Ctx) (*float64, *float64, error) {
	lat, err := parseOptionalFloat(c.Query("lat"))
	if err != nil {
		return nil, nil, errors.ErrInvalidCoordinates
	}
	lon, err := parseOptionalFloat(c.Query("lon"))
	if err != nil {
		return nil, nil, errors.ErrInvalidCoordinates
	}
	return lat, lon, nil
}

// parseRadius читает radius из query; отсутствующий параметр - радиус по умолчанию
func parseRadius(c *fiber.Ctx) (*int, error) {
	raw := c.Query("radius")
	if raw == "" {
		return nil, nil
	}

	radius, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"radius": "must be an integer"})
	}
	return &radius, nil
}

// parseOptionalFloat - пустая строка даёт nil; NaN и бесконечность не принимаются
func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.ErrInvalidCoordinates
	}
	return &v, nil
}
