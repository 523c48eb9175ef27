package domain

// Виды элементов OSM, которые возвращает Overpass
const (
	ElementNode = "node"
	ElementWay  = "way"
)

// GeoPoint - точка WGS-84 в десятичных градусах
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ElementCenter - центроид площадного объекта (way), запрошенный через "out center"
type ElementCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawElement - элемент ответа Overpass без нормализации
type RawElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *ElementCenter    `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Coordinates возвращает координаты элемента: сначала lat/lon, затем center.
// ok=false, если координат нет.
func (e *RawElement) Coordinates() (GeoPoint, bool) {
	if e.Lat != nil && e.Lon != nil {
		return GeoPoint{Lat: *e.Lat, Lon: *e.Lon}, true
	}
	if e.Center != nil {
		return GeoPoint{Lat: e.Center.Lat, Lon: e.Center.Lon}, true
	}
	return GeoPoint{}, false
}

// Establishment - нормализованное медицинское учреждение
type Establishment struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         EstablishmentType `json:"type"`
	TypeInfo     TypeInfo          `json:"type_info"`
	Lat          float64           `json:"lat"`
	Lon          float64           `json:"lon"`
	Address      string            `json:"address"`
	Phone        *string           `json:"phone,omitempty"`
	Website      *string           `json:"website,omitempty"`
	OpeningHours *string           `json:"opening_hours,omitempty"`
	Operator     *string           `json:"operator,omitempty"`
	Wheelchair   bool              `json:"wheelchair"`
	Distance     float64           `json:"distance"` // km
	Speciality   string            `json:"speciality"`
	Tags         map[string]string `json:"tags,omitempty"`
}
