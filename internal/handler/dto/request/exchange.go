package request

import (
	"bookloop/internal/usecase/commands"

	"github.com/google/uuid"
)

// RequestExchangeRequest carries the requester's contact and handoff details.
type RequestExchangeRequest struct {
	ContactName   string `json:"contact_name" binding:"required,max=200"`
	ContactEmail  string `json:"contact_email" binding:"required,email,max=150"`
	PickupAddress string `json:"pickup_address" binding:"required,max=500"`
	ExchangeMode  string `json:"exchange_mode" binding:"required,max=100"`
	Message       string `json:"message" binding:"max=1000"`
}

func (r *RequestExchangeRequest) ToInput(userBookID uuid.UUID) commands.RequestExchangeInput {
	return commands.RequestExchangeInput{
		UserBookID:    userBookID,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		PickupAddress: r.PickupAddress,
		Mode:          r.ExchangeMode,
		Message:       r.Message,
	}
}
