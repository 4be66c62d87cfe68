package request

type CreateTicketRequest struct {
	TicketTypeID int `json:"ticketTypeId" validate:"required,gt=0"`
}
