package adaptor

import (
	"errors"
	"net/http"

	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// ListHotels handles GET /hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	hotels, err := h.service.ListHotels(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// ListHotelRooms handles GET /hotels/{hotelId}. An unknown hotel answers
// 401 like the rest of the hotel surface.
func (h *HotelHandler) ListHotelRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := utils.ParseID(chi.URLParam(r, "hotelId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	hotel, err := h.service.ListHotelRooms(r.Context(), hotelID)
	if errors.Is(err, utils.ErrNotFound) {
		h.log.Warn("list hotel rooms failed - not found", zap.Int("hotel_id", hotelID))
		utils.ResponseUnauthorized(w, utils.ErrorMessage(err))
		return
	}
	if err != nil {
		handleServiceError(w, h.log, err, "list hotel rooms")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}
