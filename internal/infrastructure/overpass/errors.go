package overpass

import "fmt"

// Классы отказов внешнего источника
const (
	FailureTransport = "transport"
	FailureStatus    = "status"
	FailureDecode    = "decode"
)

// UpstreamError - ошибка обращения к Overpass с указанием класса отказа
type UpstreamError struct {
	Kind       string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("overpass %s failure: status %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("overpass %s failure: %v", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
