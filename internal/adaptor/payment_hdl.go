package adaptor

import (
	"encoding/json"
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetPayment handles GET /payments?ticketId=
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	ticketID, ok := utils.ParseID(r.URL.Query().Get("ticketId"))
	if !ok {
		utils.ResponseBadRequest(w, "ticketId query parameter is required", nil)
		return
	}

	payment, err := h.service.GetPaymentByTicketID(r.Context(), userID, ticketID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	// nil payment is a valid answer: the ticket is not paid yet
	utils.ResponseSuccess(w, "success", payment)
}

// ProcessPayment handles POST /payments/process
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment processed", payment)
}
