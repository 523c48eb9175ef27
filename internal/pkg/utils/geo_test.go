package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := HaversineDistance(48.8566, 2.3522, 45.7640, 4.8357)
		ba := HaversineDistance(45.7640, 4.8357, 48.8566, 2.3522)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("one degree of latitude at the equator", func(t *testing.T) {
		// 6371 * pi / 180
		assert.InDelta(t, 111.19492664, HaversineDistance(0, 0, 1, 0), 1e-6)
	})

	t.Run("paris to lyon", func(t *testing.T) {
		assert.InDelta(t, 392, HaversineDistance(48.8566, 2.3522, 45.7640, 4.8357), 2)
	})
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 1.23, RoundTo2(1.234))
	assert.Equal(t, 1.24, RoundTo2(1.235001))
	assert.Equal(t, 0.0, RoundTo2(0.001))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}
