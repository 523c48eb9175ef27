package utils

import (
	"math"

	"github.com/umahmood/haversine"
)

// HaversineDistance вычисляет расстояние между двумя точками в километрах (R = 6371 км)
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)
	return km
}

// RoundTo2 округляет значение до двух знаков после запятой
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
