package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/pkg/utils"
)

const (
	unnamedSuffix      = "sans nom"
	addressUnavailable = "Adresse non disponible"
)

// Normalizer превращает сырые элементы Overpass в Establishment
type Normalizer struct {
	taxonomy *domain.Taxonomy
}

// NewNormalizer создает Normalizer для заданной таксономии
func NewNormalizer(taxonomy *domain.Taxonomy) *Normalizer {
	return &Normalizer{taxonomy: taxonomy}
}

// Normalize нормализует элементы, отбрасывает элементы без координат
// и сортирует результат по возрастанию расстояния от origin
func (n *Normalizer) Normalize(elements []domain.RawElement, origin domain.GeoPoint) []domain.Establishment {
	result := make([]domain.Establishment, 0, len(elements))
	for i := range elements {
		est, ok := n.NormalizeElement(&elements[i], origin)
		if !ok {
			continue
		}
		result = append(result, est)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result
}

// NormalizeElement нормализует один элемент; ok=false, если у элемента нет координат
func (n *Normalizer) NormalizeElement(el *domain.RawElement, origin domain.GeoPoint) (domain.Establishment, bool) {
	point, ok := el.Coordinates()
	if !ok {
		return domain.Establishment{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	et := n.taxonomy.Classify(tags)
	info := n.taxonomy.Info(et)

	return domain.Establishment{
		ID:           fmt.Sprintf("%s-%d", el.Type, el.ID),
		Name:         resolveName(tags, info),
		Type:         et,
		TypeInfo:     info,
		Lat:          point.Lat,
		Lon:          point.Lon,
		Address:      resolveAddress(tags),
		Phone:        firstTag(tags, "phone", "contact:phone"),
		Website:      firstTag(tags, "website", "contact:website"),
		OpeningHours: firstTag(tags, "opening_hours"),
		Operator:     firstTag(tags, "operator"),
		Wheelchair:   tags["wheelchair"] == "yes",
		Distance:     utils.RoundTo2(utils.HaversineDistance(origin.Lat, origin.Lon, point.Lat, point.Lon)),
		Speciality:   resolveSpeciality(tags, info),
		Tags:         copyTags(tags),
	}, true
}

// FilterByText оставляет учреждения, у которых name, speciality или type
// содержат query без учёта регистра. Порядок сохраняется.
func FilterByText(establishments []domain.Establishment, query string) []domain.Establishment {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return establishments
	}

	result := make([]domain.Establishment, 0, len(establishments))
	for _, est := range establishments {
		if strings.Contains(strings.ToLower(est.Name), needle) ||
			strings.Contains(strings.ToLower(est.Speciality), needle) ||
			strings.Contains(strings.ToLower(string(est.Type)), needle) {
			result = append(result, est)
		}
	}
	return result
}

func resolveName(tags map[string]string, info domain.TypeInfo) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if name := tags["name:fr"]; name != "" {
		return name
	}
	return info.Label + " " + unnamedSuffix
}

func resolveAddress(tags map[string]string) string {
	line := strings.TrimSpace(strings.TrimSpace(tags["addr:housenumber"]) + " " + strings.TrimSpace(tags["addr:street"]))
	city := strings.TrimSpace(tags["addr:city"])

	switch {
	case line != "" && city != "":
		return line + ", " + city
	case line != "":
		return line
	case city != "":
		return city
	}

	if full := strings.TrimSpace(tags["addr:full"]); full != "" {
		return full
	}
	return addressUnavailable
}

func resolveSpeciality(tags map[string]string, info domain.TypeInfo) string {
	if speciality := tags["healthcare:speciality"]; speciality != "" {
		return speciality
	}
	return info.Label
}

// firstTag возвращает первое непустое значение из перечисленных ключей или nil
func firstTag(tags map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v := tags[key]; v != "" {
			return &v
		}
	}
	return nil
}

func copyTags(tags map[string]string) map[string]string {
	cp := make(map[string]string, len(tags))
	for k, v := range tags {
		cp[k] = v
	}
	return cp
}
