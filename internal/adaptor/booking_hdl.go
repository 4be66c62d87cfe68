package adaptor

import (
	"encoding/json"
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBooking handles GET /booking
func (h *BookingHandler) ListBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	booking, err := h.service.ListUserBooking(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	created, err := h.service.InsertBooking(r.Context(), userID, req.RoomID)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, "success", created)
}

// ChangeBooking handles PUT /booking/{bookingId}
func (h *BookingHandler) ChangeBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := utils.ParseID(chi.URLParam(r, "bookingId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	changed, err := h.service.ChangeBooking(r.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		handleServiceError(w, h.log, err, "change booking")
		return
	}

	utils.ResponseSuccess(w, "success", changed)
}

func (h *BookingHandler) decode(w http.ResponseWriter, r *http.Request) (*request.BookingRequest, bool) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}
