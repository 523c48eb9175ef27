package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy_Classify(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	t.Run("primary vocabulary wins over secondary", func(t *testing.T) {
		primary := map[string]EstablishmentType{
			"hospital": EstablishmentHospital,
			"clinic":   EstablishmentClinic,
			"pharmacy": EstablishmentPharmacy,
			"dentist":  EstablishmentDentist,
			"doctors":  EstablishmentDoctor,
		}
		for value, expected := range primary {
			tags := map[string]string{"amenity": value, "healthcare": "laboratory"}
			assert.Equal(t, expected, taxonomy.Classify(tags), value)
		}
	})

	t.Run("secondary vocabulary only", func(t *testing.T) {
		for _, value := range []string{"hospital", "clinic", "pharmacy", "dentist", "laboratory", "physiotherapist", "doctor"} {
			tags := map[string]string{"healthcare": value}
			assert.Equal(t, EstablishmentType(value), taxonomy.Classify(tags), value)
		}
	})

	t.Run("unrecognized primary falls through to secondary", func(t *testing.T) {
		tags := map[string]string{"amenity": "veterinary", "healthcare": "physiotherapist"}
		assert.Equal(t, EstablishmentPhysiotherapist, taxonomy.Classify(tags))
	})

	t.Run("fallback", func(t *testing.T) {
		assert.Equal(t, EstablishmentDoctor, taxonomy.Classify(nil))
		assert.Equal(t, EstablishmentDoctor, taxonomy.Classify(map[string]string{"shop": "optician"}))
		assert.Equal(t, EstablishmentDoctor, taxonomy.Classify(map[string]string{
			"amenity":    "nursing_home",
			"healthcare": "blood_donation",
		}))
	})

	t.Run("primary doctors maps to doctor", func(t *testing.T) {
		assert.Equal(t, EstablishmentDoctor, taxonomy.Classify(map[string]string{"amenity": "doctors"}))
	})
}

func TestTaxonomy_Info(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	for _, et := range taxonomy.Order {
		info := taxonomy.Info(et)
		assert.NotEmpty(t, info.Label, et)
		assert.NotEmpty(t, info.Icon, et)
		assert.NotEmpty(t, info.Color, et)
	}

	assert.Equal(t, taxonomy.Info(EstablishmentDoctor), taxonomy.Info("veterinary"))
}

func TestRawElement_Coordinates(t *testing.T) {
	lat, lon := 48.1, 2.2

	point, ok := (&RawElement{Lat: &lat, Lon: &lon, Center: &ElementCenter{Lat: 1, Lon: 1}}).Coordinates()
	assert.True(t, ok)
	assert.Equal(t, GeoPoint{Lat: 48.1, Lon: 2.2}, point)

	point, ok = (&RawElement{Center: &ElementCenter{Lat: 3, Lon: 4}}).Coordinates()
	assert.True(t, ok)
	assert.Equal(t, GeoPoint{Lat: 3, Lon: 4}, point)

	_, ok = (&RawElement{Lat: &lat}).Coordinates()
	assert.False(t, ok)
}
