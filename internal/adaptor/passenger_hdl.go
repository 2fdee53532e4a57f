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

type PassengerHandler struct {
	service usecase.PassengerService
	log     *zap.Logger
}

func NewPassengerHandler(service usecase.PassengerService, log *zap.Logger) *PassengerHandler {
	return &PassengerHandler{
		service: service,
		log:     log.With(zap.String("handler", "passenger")),
	}
}

// GetPassengers handles GET /api/passengers
func (h *PassengerHandler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	passengers, err := h.service.GetPassengers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get passengers")
		return
	}

	utils.ResponseSuccess(w, "success", passengers)
}

// GetPassengerByID handles GET /api/passengers/{id}
func (h *PassengerHandler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	passenger, err := h.service.GetPassengerByID(r.Context(), passengerID)
	if err != nil {
		h.handleServiceError(w, err, "get passenger by ID")
		return
	}

	utils.ResponseSuccess(w, "success", passenger)
}

// CreatePassenger handles POST /api/admin/passengers
func (h *PassengerHandler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req request.PassengerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request; echo the submitted values back for redisplay
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, req, validationErrors)
		return
	}

	passenger, err := h.service.CreatePassenger(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create passenger")
		return
	}

	utils.ResponseCreated(w, "success", passenger)
}

// UpdatePassenger handles PUT /api/admin/passengers/{id}
func (h *PassengerHandler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	var req request.PassengerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, req, validationErrors)
		return
	}

	passenger, err := h.service.UpdatePassenger(r.Context(), passengerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update passenger")
		return
	}

	utils.ResponseSuccess(w, "success", passenger)
}

// DeletePassenger handles DELETE /api/admin/passengers/{id}
func (h *PassengerHandler) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	if err := h.service.DeletePassenger(r.Context(), passengerID); err != nil {
		h.handleServiceError(w, err, "delete passenger")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk passenger operations
func (h *PassengerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
