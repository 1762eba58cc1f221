package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/pkg/logger"
)

// AdvisoriesHandler runs an analysis per request.
type AdvisoriesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewAdvisoriesHandler creates a new advisories handler.
func NewAdvisoriesHandler(deps Dependencies, log logger.Logger) *AdvisoriesHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AdvisoriesHandler{deps: deps, logger: log}
}

// HandleGetAdvisories handles GET /advisories?week=N&season=Y requests.
// Both parameters are optional.
func (h *AdvisoriesHandler) HandleGetAdvisories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	week, err := optionalInt(q.Get("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: week: %w", ErrBadRequest, err))
		return
	}
	season, err := optionalInt(q.Get("season"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: season: %w", ErrBadRequest, err))
		return
	}

	res, err := h.deps.Analyze(r.Context(), service.Request{Season: season, Week: week})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, service.ErrOwnerNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrUpstream):
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	default:
		h.logger.Error(r.Context(), "analysis request failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %d", n)
	}
	return n, nil
}
