package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с booking-сервисом)
const (
	StreamNearbyRequest = "stream:establishment:nearby"
	StreamNearbyDone    = "stream:establishment:nearby:done"
)

// NearbyRequestEvent - входящий запрос на поиск учреждений рядом с точкой
type NearbyRequestEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Lat       *float64  `json:"lat"`
	Lon       *float64  `json:"lon"`
	RadiusM   int       `json:"radius_m,omitempty"`
	Query     string    `json:"query,omitempty"`
	Limit     int       `json:"limit,omitempty"`
}

// HasLocation проверяет наличие координат
func (e *NearbyRequestEvent) HasLocation() bool {
	return e.Lat != nil && e.Lon != nil
}

// NearbyDoneEvent - результат поиска для запроса из стрима
type NearbyDoneEvent struct {
	RequestID      uuid.UUID       `json:"request_id"`
	Establishments []Establishment `json:"establishments"`
	Total          int             `json:"total"`
	Error          string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
