package adaptor

import (
	"encoding/json"
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type EnrollmentHandler struct {
	service usecase.EnrollmentService
	log     *zap.Logger
}

func NewEnrollmentHandler(service usecase.EnrollmentService, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "enrollment")),
	}
}

// GetEnrollment handles GET /enrollments
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", enrollment)
}

// UpsertEnrollment handles POST /enrollments
func (h *EnrollmentHandler) UpsertEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	enrollment, err := h.service.UpsertEnrollment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", enrollment)
}
