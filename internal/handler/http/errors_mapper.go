package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-toml-selector/internal/service"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	service.ErrNodeNotFound:            http.StatusNotFound,
	service.ErrAuthDisabled:            http.StatusNotFound,
	service.ErrEmptyOperator:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNodeCacheEntryNotFound: http.StatusNotFound,
	store.ErrEmptyNodeID:            http.StatusBadRequest,

	validators.ErrInvalidSection: http.StatusBadRequest,
	validators.ErrInvalidNodeID:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// hide their message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
