package handlers

import (
	"net/http"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/logx"
)

// DeliveryHandler handles HTTP requests for delivery resources.
type DeliveryHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase) *DeliveryHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DeliveryHandler{usecase: uc, logger: logger}
}

// Create handles POST /deliveries.
// @Summary Создать доставку
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body createDeliveryRequest true "Delivery request"
// @Success 201 {object} deliveryDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 403 {object} ErrorResponse "caller is not an active customer"
// @Router /deliveries [post]
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	var req createDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.usecase.Create(r.Context(), req.toInput(who.UserID))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/deliveries/"+d.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(*d))
}

// List handles GET /deliveries?limit&offset.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	p, err := pageFromQuery(r)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	page, err := h.usecase.ListForUser(r.Context(), who.UserID, p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pageToResponse(page))
}

// Get handles GET /deliveries/{id}. Only the customer, the bound driver and
// admins may read a delivery.
func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	v, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if !v.VisibleTo(who.UserID, who.Role) {
		writeServiceError(h.logger, w, r, apperr.Forbidden(who.UserID, "delivery belongs to another user"))
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, viewToResponse(*v))
}

// Accept handles POST /deliveries/{id}/accept.
// @Summary Принять доставку
// @Tags deliveries
// @Produce json
// @Success 200 {object} deliveryDTO
// @Failure 403 {object} ErrorResponse "caller is not a driver"
// @Failure 409 {object} ErrorResponse "already accepted"
// @Router /deliveries/{id}/accept [post]
func (h *DeliveryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Accept(r.Context(), id, who.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// UpdateStatus handles PATCH /deliveries/{id}/status.
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if !req.Status.Valid() {
		writeServiceError(h.logger, w, r, apperr.Invalid("status", "unknown status "+string(req.Status)))
		return
	}

	d, err := h.usecase.UpdateStatus(r.Context(), id, who.UserID, req.Status)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Cancel handles POST /deliveries/{id}/cancel.
func (h *DeliveryHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	who, ok := caller(h.logger, w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Cancel(r.Context(), id, who.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}
