package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mediplus/geosearch/internal/domain"
)

// Серверный бюджет выполнения запроса, секунды
const queryTimeoutSeconds = 30

// BuildAroundQuery строит один составной запрос: по одному условию nw[key=value](around:...)
// на каждую пару (словарь, значение). "out center" нужен, чтобы way пришли с центроидом.
// Радиус не валидируется и передаётся как есть.
func BuildAroundQuery(center domain.GeoPoint, radiusMeters int, vocabularies []domain.Vocabulary) string {
	lat := formatCoord(center.Lat)
	lon := formatCoord(center.Lon)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", queryTimeoutSeconds)
	for _, vocab := range vocabularies {
		for _, entry := range vocab.Entries {
			fmt.Fprintf(&b, "  nw[%q=%q](around:%d,%s,%s);\n", vocab.Key, entry.Value, radiusMeters, lat, lon)
		}
	}
	b.WriteString(");\nout center;")

	return b.String()
}

// BuildElementQuery строит запрос одного элемента по виду и идентификатору
func BuildElementQuery(kind string, id int64) string {
	return fmt.Sprintf("[out:json][timeout:%d];\n%s(%d);\nout center;", queryTimeoutSeconds, kind, id)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
