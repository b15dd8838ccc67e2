package handlers

import (
	"net/http"

	"service-dispatch/internal/logx"
)

// DispatchHandler exposes matching and pricing queries.
type DispatchHandler struct {
	matching     candidateFinder
	fares        fareCalculator
	defaultMaxKm float64
	logger       logx.Logger
}

func NewDispatchHandler(logger logx.Logger, matching candidateFinder, fares fareCalculator, defaultMaxKm float64) *DispatchHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DispatchHandler{matching: matching, fares: fares, defaultMaxKm: defaultMaxKm, logger: logger}
}

// Candidate handles GET /matching/candidate?lat&lon&max_km.
func (h *DispatchHandler) Candidate(w http.ResponseWriter, r *http.Request) {
	lat, err := floatFromQuery(r, "lat", true)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	lon, err := floatFromQuery(r, "lon", true)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	maxKm, err := floatFromQuery(r, "max_km", false)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if maxKm == 0 {
		maxKm = h.defaultMaxKm
	}

	c, err := h.matching.FindBestCandidate(r.Context(), lat, lon, maxKm)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, candidateDTO{
		Driver:     locationToResponse(c.Location),
		DistanceKm: c.DistanceKm,
		Rating:     c.Rating,
	})
}

// Quote handles POST /fares/quote.
func (h *DispatchHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req fareQuoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	f, err := h.fares.CalculateFare(req.DistanceKm, req.EstimatedMinutes)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, fareToResponse(f))
}
