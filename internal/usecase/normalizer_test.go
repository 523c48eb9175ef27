package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/usecase"
)

// kmPerDegree - длина одного градуса меридиана при R = 6371 км
const kmPerDegree = 111.19492664455873

var origin = domain.GeoPoint{Lat: 0, Lon: 0}

func TestNormalizer_Normalize(t *testing.T) {
	normalizer := usecase.NewNormalizer(domain.DefaultTaxonomy())

	t.Run("sorted ascending by distance", func(t *testing.T) {
		elements := []domain.RawElement{
			node(5, 5/kmPerDegree, 0, map[string]string{"amenity": "clinic"}),
			node(1, 1/kmPerDegree, 0, map[string]string{"amenity": "pharmacy"}),
			node(10, 10/kmPerDegree, 0, map[string]string{"amenity": "hospital"}),
		}

		result := normalizer.Normalize(elements, origin)
		require.Len(t, result, 3)

		assert.Equal(t, "node-1", result[0].ID)
		assert.Equal(t, "node-5", result[1].ID)
		assert.Equal(t, "node-10", result[2].ID)
		assert.Equal(t, 1.0, result[0].Distance)
		assert.Equal(t, 5.0, result[1].Distance)
		assert.Equal(t, 10.0, result[2].Distance)
	})

	t.Run("drops elements without coordinates", func(t *testing.T) {
		elements := []domain.RawElement{
			{Type: domain.ElementWay, ID: 7, Tags: map[string]string{"amenity": "hospital"}},
			{Type: domain.ElementNode, ID: 8, Lat: ptrFloat64(1)},
			{Type: domain.ElementWay, ID: 9, Center: &domain.ElementCenter{Lat: 0.01, Lon: 0.01}},
		}

		result := normalizer.Normalize(elements, origin)
		require.Len(t, result, 1)
		assert.Equal(t, "way-9", result[0].ID)
		assert.Equal(t, 0.01, result[0].Lat)
	})

	t.Run("empty input", func(t *testing.T) {
		result := normalizer.Normalize(nil, origin)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestNormalizer_NormalizeElement(t *testing.T) {
	normalizer := usecase.NewNormalizer(domain.DefaultTaxonomy())

	t.Run("full record", func(t *testing.T) {
		el := node(42, 0.01, 0, map[string]string{
			"amenity":               "doctors",
			"name":                  "Cabinet Dr Martin",
			"name:fr":               "Cabinet du Docteur Martin",
			"addr:housenumber":      "12",
			"addr:street":           "Rue de la Paix",
			"addr:city":             "Paris",
			"contact:phone":         "+33 1 23 45 67 89",
			"website":               "https://cabinet-martin.fr",
			"opening_hours":         "Mo-Fr 09:00-18:00",
			"operator":              "SCM Martin",
			"wheelchair":            "yes",
			"healthcare:speciality": "cardiology",
		})

		est, ok := normalizer.NormalizeElement(&el, origin)
		require.True(t, ok)

		assert.Equal(t, "node-42", est.ID)
		assert.Equal(t, "Cabinet Dr Martin", est.Name)
		assert.Equal(t, domain.EstablishmentDoctor, est.Type)
		assert.Equal(t, "Médecin", est.TypeInfo.Label)
		assert.Equal(t, "12 Rue de la Paix, Paris", est.Address)
		require.NotNil(t, est.Phone)
		assert.Equal(t, "+33 1 23 45 67 89", *est.Phone)
		require.NotNil(t, est.Website)
		assert.Equal(t, "https://cabinet-martin.fr", *est.Website)
		require.NotNil(t, est.OpeningHours)
		require.NotNil(t, est.Operator)
		assert.True(t, est.Wheelchair)
		assert.Equal(t, "cardiology", est.Speciality)
		assert.Equal(t, 1.11, est.Distance)
		assert.Equal(t, "Rue de la Paix", est.Tags["addr:street"])
	})

	t.Run("sparse record", func(t *testing.T) {
		el := domain.RawElement{
			Type:   domain.ElementWay,
			ID:     7,
			Center: &domain.ElementCenter{Lat: 0, Lon: 0},
			Tags:   map[string]string{"healthcare": "laboratory", "wheelchair": "limited"},
		}

		est, ok := normalizer.NormalizeElement(&el, origin)
		require.True(t, ok)

		assert.Equal(t, "way-7", est.ID)
		assert.Equal(t, "Laboratoire sans nom", est.Name)
		assert.Equal(t, "Adresse non disponible", est.Address)
		assert.Nil(t, est.Phone)
		assert.Nil(t, est.Website)
		assert.Nil(t, est.OpeningHours)
		assert.Nil(t, est.Operator)
		assert.False(t, est.Wheelchair)
		assert.Equal(t, "Laboratoire", est.Speciality)
		assert.Equal(t, 0.0, est.Distance)
	})

	t.Run("name and address fallbacks", func(t *testing.T) {
		el := node(3, 0, 0, map[string]string{
			"amenity":         "pharmacy",
			"name:fr":         "Pharmacie de la Gare",
			"addr:street":     "Avenue Foch",
			"contact:website": "https://pharmacie-gare.fr",
			"phone":           "0102030405",
		})

		est, ok := normalizer.NormalizeElement(&el, origin)
		require.True(t, ok)

		assert.Equal(t, "Pharmacie de la Gare", est.Name)
		assert.Equal(t, "Avenue Foch", est.Address)
		assert.Equal(t, "https://pharmacie-gare.fr", *est.Website)
		assert.Equal(t, "0102030405", *est.Phone)
	})

	t.Run("free text address", func(t *testing.T) {
		el := node(4, 0, 0, map[string]string{"addr:full": "Centre commercial, niveau 2"})

		est, ok := normalizer.NormalizeElement(&el, origin)
		require.True(t, ok)
		assert.Equal(t, "Centre commercial, niveau 2", est.Address)
		assert.Equal(t, domain.EstablishmentDoctor, est.Type)
	})

	t.Run("city only", func(t *testing.T) {
		el := node(5, 0, 0, map[string]string{"addr:city": "Lyon"})

		est, _ := normalizer.NormalizeElement(&el, origin)
		assert.Equal(t, "Lyon", est.Address)
	})

	t.Run("tags are copied", func(t *testing.T) {
		tags := map[string]string{"amenity": "clinic"}
		el := node(6, 0, 0, tags)

		est, _ := normalizer.NormalizeElement(&el, origin)
		est.Tags["amenity"] = "changed"
		assert.Equal(t, "clinic", tags["amenity"])
	})
}

func TestFilterByText(t *testing.T) {
	candidates := []domain.Establishment{
		{ID: "node-1", Name: "Pharmacie Centrale", Type: domain.EstablishmentPharmacy, Speciality: "Pharmacie", Distance: 0.5},
		{ID: "node-2", Name: "Centre CARDIO Paris", Type: domain.EstablishmentClinic, Speciality: "Clinique", Distance: 1.2},
		{ID: "node-3", Name: "Hôpital Nord", Type: domain.EstablishmentHospital, Speciality: "Hôpital", Distance: 3.4},
	}

	t.Run("cardio matches exactly one", func(t *testing.T) {
		result := usecase.FilterByText(candidates, "cardio")
		require.Len(t, result, 1)
		assert.Equal(t, "node-2", result[0].ID)
	})

	t.Run("matches speciality and type token", func(t *testing.T) {
		candidates[2].Speciality = "Cardiologie"
		defer func() { candidates[2].Speciality = "Hôpital" }()

		assert.Len(t, usecase.FilterByText(candidates, "Cardio"), 2)
		assert.Len(t, usecase.FilterByText(candidates, "HOSPITAL"), 1)
	})

	t.Run("keeps order", func(t *testing.T) {
		result := usecase.FilterByText(candidates, "p")
		ids := make([]string, 0, len(result))
		for _, r := range result {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"node-1", "node-2", "node-3"}, ids)
	})

	t.Run("empty query returns input", func(t *testing.T) {
		assert.Len(t, usecase.FilterByText(candidates, ""), 3)
		assert.Len(t, usecase.FilterByText(candidates, "   "), 3)
	})
}
