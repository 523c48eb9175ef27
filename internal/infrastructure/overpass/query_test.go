package overpass

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediplus/geosearch/internal/domain"
)

func TestBuildAroundQuery(t *testing.T) {
	taxonomy := domain.DefaultTaxonomy()
	center := domain.GeoPoint{Lat: 48.8566, Lon: 2.3522}

	query := BuildAroundQuery(center, 5000, taxonomy.Vocabularies)

	assert.True(t, strings.HasPrefix(query, "[out:json][timeout:30];"))
	assert.True(t, strings.HasSuffix(query, "out center;"))

	total := 0
	for _, vocab := range taxonomy.Vocabularies {
		for _, entry := range vocab.Entries {
			clause := fmt.Sprintf(`nw["%s"="%s"](around:5000,48.8566,2.3522);`, vocab.Key, entry.Value)
			assert.Equal(t, 1, strings.Count(query, clause), "clause %s", clause)
			total++
		}
	}

	assert.Equal(t, 12, total)
	assert.Equal(t, total, strings.Count(query, "(around:"))
}

func TestBuildAroundQuery_RadiusPassedThrough(t *testing.T) {
	vocabularies := domain.DefaultTaxonomy().Vocabularies

	for _, radius := range []int{0, -100} {
		query := BuildAroundQuery(domain.GeoPoint{Lat: 1, Lon: -1.5}, radius, vocabularies)
		assert.Contains(t, query, fmt.Sprintf("(around:%d,1,-1.5);", radius))
	}
}

func TestBuildElementQuery(t *testing.T) {
	assert.Equal(t,
		"[out:json][timeout:30];\nway(4242);\nout center;",
		BuildElementQuery(domain.ElementWay, 4242))
}
