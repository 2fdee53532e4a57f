package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"bus-fleet/internal/dto/request"
	"bus-fleet/internal/usecase"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusHandler struct {
	service usecase.BusService
	log     *zap.Logger
}

func NewBusHandler(service usecase.BusService, log *zap.Logger) *BusHandler {
	return &BusHandler{
		service: service,
		log:     log.With(zap.String("handler", "bus")),
	}
}

// GetBuses handles GET /api/buses
func (h *BusHandler) GetBuses(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	buses, err := h.service.GetBuses(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get buses")
		return
	}

	utils.ResponseSuccess(w, "success", buses)
}

// GetBusByID handles GET /api/buses/{id}
func (h *BusHandler) GetBusByID(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	bus, err := h.service.GetBusByID(r.Context(), busID)
	if err != nil {
		h.handleServiceError(w, err, "get bus by ID")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// CreateBus handles POST /api/admin/buses
func (h *BusHandler) CreateBus(w http.ResponseWriter, r *http.Request) {
	var req request.BusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request; echo the submitted values back for redisplay
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, req, validationErrors)
		return
	}

	bus, err := h.service.CreateBus(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create bus")
		return
	}

	utils.ResponseCreated(w, "success", bus)
}

// UpdateBus handles PUT /api/admin/buses/{id}
func (h *BusHandler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	var req request.BusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, req, validationErrors)
		return
	}

	bus, err := h.service.UpdateBus(r.Context(), busID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update bus")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// DeleteBus handles DELETE /api/admin/buses/{id}
func (h *BusHandler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	if err := h.service.DeleteBus(r.Context(), busID); err != nil {
		h.handleServiceError(w, err, "delete bus")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk bus operations
func (h *BusHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "in use"):
		h.log.Warn(operation+" blocked - still referenced",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "mismatch"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
