package response

import (
	"event-booking/internal/data/entity"
	"time"
)

type TicketTypeResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type TicketResponse struct {
	ID           int                 `json:"id"`
	Status       entity.TicketStatus `json:"status"`
	TicketTypeID int                 `json:"ticketTypeId"`
	EnrollmentID int                 `json:"enrollmentId"`
	TicketType   *TicketTypeResponse `json:"TicketType,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// Helper converters
func TicketTypeToResponse(ticketType *entity.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:            ticketType.ID,
		Name:          ticketType.Name,
		Price:         ticketType.Price,
		IsRemote:      ticketType.IsRemote,
		IncludesHotel: ticketType.IncludesHotel,
		CreatedAt:     ticketType.CreatedAt,
		UpdatedAt:     ticketType.UpdatedAt,
	}
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           ticket.ID,
		Status:       ticket.Status,
		TicketTypeID: ticket.TicketTypeID,
		EnrollmentID: ticket.EnrollmentID,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
	if ticket.TicketType != nil {
		ticketType := TicketTypeToResponse(ticket.TicketType)
		resp.TicketType = &ticketType
	}
	return resp
}
