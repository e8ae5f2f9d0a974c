package commands

import (
	"context"
	"time"

	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	JobKindExchangeRequested = "exchange.requested"
	JobKindExchangeAccepted  = "exchange.accepted"
	JobKindExchangeRejected  = "exchange.rejected"
)

// ExchangeNotice is the outbox payload for one recipient.
type ExchangeNotice struct {
	ExchangeID   uuid.UUID `json:"exchange_id"`
	UserBookID   uuid.UUID `json:"user_book_id"`
	RecipientID  uuid.UUID `json:"recipient_id"`
	Status       string    `json:"status"`
	AutoRejected bool      `json:"auto_rejected,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NoticeTopic(recipientID uuid.UUID) string {
	return "user:" + recipientID.String()
}

func enqueueNotice(ctx context.Context, tx shared.Tx, kind string, n ExchangeNotice) error {
	payload, err := jsoniter.ConfigFastest.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, NoticeTopic(n.RecipientID), payload, n.OccurredAt)
}
