package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Bounds for the count query parameter of the recent listing.
const (
	MinRecentCount = 1
	MaxRecentCount = 100
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// parseCount reads the "count" query parameter, defaulting to
// store.DefaultRecentLimit when it is absent.
func parseCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return store.DefaultRecentLimit, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("count", "must be an integer", nil)
	}
	if count < MinRecentCount || count > MaxRecentCount {
		return 0, domain.NewValidationError("count", "must be between 1 and 100", nil)
	}
	return count, nil
}
