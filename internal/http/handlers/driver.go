package handlers

import (
	"net/http"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/logx"
)

// DriverHandler serves the location registry.
type DriverHandler struct {
	locations locationUsecase
	logger    logx.Logger
}

func NewDriverHandler(logger logx.Logger, uc locationUsecase) *DriverHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DriverHandler{locations: uc, logger: logger}
}

func requireDriver(who auth.Identity) error {
	if who.Role != domain.RoleDriver {
		return apperr.Forbidden(who.UserID, "only drivers report locations")
	}
	return nil
}

// ReportLocation handles PUT /drivers/me/location.
func (h *DriverHandler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	if err := requireDriver(who); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	var req locationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeServiceError(h.logger, w, r, apperr.Invalid("latitude", "latitude and longitude are required"))
		return
	}

	loc, err := h.locations.ReportLocation(r.Context(), req.toReport(who.UserID))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationToResponse(*loc))
}

// SetAvailability handles PUT /drivers/me/availability.
func (h *DriverHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	if err := requireDriver(who); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	var req availabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Available == nil {
		writeServiceError(h.logger, w, r, apperr.Invalid("available", "is required"))
		return
	}

	loc, err := h.locations.SetAvailability(r.Context(), who.UserID, *req.Available)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationToResponse(*loc))
}

// GetLocation handles GET /drivers/{id}/location.
func (h *DriverHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	loc, ok := h.locations.GetLocation(r.Context(), id)
	if !ok {
		writeServiceError(h.logger, w, r, apperr.NotFound("driver location", id))
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationToResponse(*loc))
}

// ListAvailable handles GET /drivers/available.
func (h *DriverHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	list, err := h.locations.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationsToResponse(list))
}
