package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidElementKind = New(
		"INVALID_ELEMENT_KIND",
		"Element kind must be node or way",
		http.StatusBadRequest,
	)

	ErrEstablishmentNotFound = New(
		"ESTABLISHMENT_NOT_FOUND",
		"Establishment not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

var ErrStatsUnavailable = New(
	"STATS_UNAVAILABLE",
	"Search log is disabled",
	http.StatusServiceUnavailable,
)
