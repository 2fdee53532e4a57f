package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bus-fleet/internal/dto/request"
	"bus-fleet/internal/usecase"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log.With(zap.String("handler", "trip")),
	}
}

// GetTrips handles GET /api/trips
func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	trips, err := h.service.GetTrips(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get trips")
		return
	}

	utils.ResponseSuccess(w, "success", trips)
}

// GetTripByID handles GET /api/trips/{id}
func (h *TripHandler) GetTripByID(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if tripID == "" {
		utils.ResponseBadRequest(w, "Trip ID is required", nil)
		return
	}

	trip, err := h.service.GetTripByID(r.Context(), tripID)
	if err != nil {
		h.handleServiceError(w, err, "get trip by ID")
		return
	}

	utils.ResponseSuccess(w, "success", trip)
}

// GetTripRefs handles GET /api/trips/refs. It returns the bus and route
// lists a trip form needs to render its dropdowns.
func (h *TripHandler) GetTripRefs(w http.ResponseWriter, r *http.Request) {
	refs, err := h.service.GetTripRefs(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get trip refs")
		return
	}

	utils.ResponseSuccess(w, "success", refs)
}

// CreateTrip handles POST /api/admin/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req request.TripRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.respondValidationFailed(w, r.Context(), req, validationErrors)
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create trip")
		return
	}

	utils.ResponseCreated(w, "success", trip)
}

// UpdateTrip handles PUT /api/admin/trips/{id}
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if tripID == "" {
		utils.ResponseBadRequest(w, "Trip ID is required", nil)
		return
	}

	var req request.TripUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.respondValidationFailed(w, r.Context(), req, validationErrors)
		return
	}

	trip, err := h.service.UpdateTrip(r.Context(), tripID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update trip")
		return
	}

	utils.ResponseSuccess(w, "success", trip)
}

// DeleteTrip handles DELETE /api/admin/trips/{id}
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if tripID == "" {
		utils.ResponseBadRequest(w, "Trip ID is required", nil)
		return
	}

	if err := h.service.DeleteTrip(r.Context(), tripID); err != nil {
		h.handleServiceError(w, err, "delete trip")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// respondValidationFailed echoes the submitted values plus repopulated
// dropdown refs so the trip form can be redisplayed as posted.
func (h *TripHandler) respondValidationFailed(w http.ResponseWriter, ctx context.Context, input any, validationErrors map[string]string) {
	data := map[string]any{"input": input}
	if refs, err := h.service.GetTripRefs(ctx); err == nil {
		data["refs"] = refs
	} else {
		h.log.Warn("Failed to repopulate trip refs", zap.Error(err))
	}

	utils.ResponseValidationFailed(w, data, validationErrors)
}

// handleServiceError handles errors untuk trip operations
func (h *TripHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
