package response

import (
	"event-booking/internal/data/entity"
	"time"
)

type PaymentResponse struct {
	ID             int       `json:"id"`
	TicketID       int       `json:"ticketId"`
	Value          int       `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             payment.ID,
		TicketID:       payment.TicketID,
		Value:          payment.Value,
		CardIssuer:     payment.CardIssuer,
		CardLastDigits: payment.CardLastDigits,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}
