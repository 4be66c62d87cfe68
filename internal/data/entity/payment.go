package entity

type Payment struct {
	Base
	TicketID       int    `db:"ticket_id"`
	Value          int    `db:"value"`
	CardIssuer     string `db:"card_issuer"`
	CardLastDigits string `db:"card_last_digits"`
}
