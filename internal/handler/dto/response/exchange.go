package response

import (
	"bookloop/internal/domain/exchange"
	"bookloop/internal/usecase/queries"
)

type ExchangeResponse struct {
	ID                string `json:"id"`
	RequesterID       string `json:"requester_id"`
	RequesterUsername string `json:"requester_username,omitempty"`
	OwnerID           string `json:"owner_id"`
	OwnerUsername     string `json:"owner_username,omitempty"`
	UserBookID        string `json:"user_book_id"`
	BookID            string `json:"book_id,omitempty"`
	BookTitle         string `json:"book_title,omitempty"`
	RequesterName     string `json:"requester_name"`
	RequesterEmail    string `json:"requester_email"`
	PickupAddress     string `json:"pickup_address"`
	ExchangeMode      string `json:"exchange_mode"`
	Message           string `json:"message"`
	Status            string `json:"status"`
	CreatedAt         int64  `json:"created_at"`
	UpdatedAt         int64  `json:"updated_at"`
}

func FromExchangeRequest(r *exchange.Request) *ExchangeResponse {
	return &ExchangeResponse{
		ID:             r.ID().String(),
		RequesterID:    r.RequesterID().String(),
		OwnerID:        r.OwnerID().String(),
		UserBookID:     r.UserBookID().String(),
		RequesterName:  r.Contact().Name(),
		RequesterEmail: r.Contact().Email(),
		PickupAddress:  r.Handoff().PickupAddress(),
		ExchangeMode:   r.Handoff().Mode(),
		Message:        r.Message().String(),
		Status:         r.Status().String(),
		CreatedAt:      r.CreatedAt().Unix(),
		UpdatedAt:      r.UpdatedAt().Unix(),
	}
}

func FromExchangeView(v *queries.ExchangeRequestView) *ExchangeResponse {
	return &ExchangeResponse{
		ID:                v.ID.String(),
		RequesterID:       v.RequesterID.String(),
		RequesterUsername: v.RequesterUsername,
		OwnerID:           v.OwnerID.String(),
		OwnerUsername:     v.OwnerUsername,
		UserBookID:        v.UserBookID.String(),
		BookID:            v.BookID.String(),
		BookTitle:         v.BookTitle,
		RequesterName:     v.RequesterName,
		RequesterEmail:    v.RequesterEmail,
		PickupAddress:     v.PickupAddress,
		ExchangeMode:      v.ExchangeMode,
		Message:           v.Message,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
}

func FromExchangeList(items []*queries.ExchangeRequestView) []*ExchangeResponse {
	res := make([]*ExchangeResponse, len(items))
	for i, it := range items {
		res[i] = FromExchangeView(it)
	}
	return res
}
