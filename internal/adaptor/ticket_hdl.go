package adaptor

import (
	"encoding/json"
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTicketTypes handles GET /tickets/types
func (h *TicketHandler) GetTicketTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.GetTicketTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get ticket types")
		return
	}

	utils.ResponseSuccess(w, "success", types)
}

// GetTicket handles GET /tickets
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	ticket, err := h.service.GetUserTicket(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}
