package commands

import (
	"context"
	"log/slog"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra"
	"bookloop/internal/pkg/clock"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	constraintRequester   = "exchange_requests_requester_fkey"
	constraintRequestedBy = "exchange_requests_user_book_fkey"
	constraintNotSelf     = "exchange_requests_not_self"
)

type RequestExchangeInput struct {
	UserBookID    uuid.UUID
	ContactName   string
	ContactEmail  string
	PickupAddress string
	Mode          string
	Message       string
}

type ExchangeCommands interface {
	RequestExchange(ctx context.Context, requesterID uuid.UUID, in RequestExchangeInput) (*exchange.Request, error)
	AcceptExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*exchange.Request, error)
	RejectExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*exchange.Request, error)
}

type exchangeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExchangeCommands(uow shared.UnitOfWork, clk clock.Clock) ExchangeCommands {
	return &exchangeCommandsImpl{uow: uow, clock: clk}
}

func (uc *exchangeCommandsImpl) RequestExchange(ctx context.Context, requesterID uuid.UUID, in RequestExchangeInput) (*exchange.Request, error) {
	if requesterID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	contact, err := exchange.NewContact(in.ContactName, in.ContactEmail)
	if err != nil {
		return nil, invalid(err)
	}
	handoff, err := exchange.NewHandoff(in.PickupAddress, in.Mode)
	if err != nil {
		return nil, invalid(err)
	}
	message, err := exchange.NewMessage(in.Message)
	if err != nil {
		return nil, invalid(err)
	}

	var created *exchange.Request
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ub, derr := tx.Reads().UserBookByID(ctx, in.UserBookID)
		if derr != nil {
			return notFoundAs(derr, ErrCopyNotFound)
		}

		target := exchange.Target{UserBookID: ub.ID(), OwnerID: ub.OwnerID()}
		req, derr := exchange.NewRequest(requesterID, target, contact, handoff, message, uc.clock.Now())
		if derr != nil {
			if errs.Is(derr, exchange.ErrSelfExchange) {
				return ErrSelfExchange
			}
			return invalid(derr)
		}

		if _, derr = tx.ExchangeRequests().Create(ctx, tx.DB(), req); derr != nil {
			return translateCreateRequestErr(derr)
		}

		if derr = enqueueNotice(ctx, tx, JobKindExchangeRequested, ExchangeNotice{
			ExchangeID:  req.ID(),
			UserBookID:  req.UserBookID(),
			RecipientID: req.OwnerID(),
			Status:      req.Status().String(),
			OccurredAt:  req.CreatedAt(),
		}); derr != nil {
			return derr
		}

		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "exchange requested",
		"exchange_id", created.ID(),
		"user_book_id", created.UserBookID(),
		"requester_id", created.RequesterID(),
	)
	return created, nil
}

func (uc *exchangeCommandsImpl) AcceptExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*exchange.Request, error) {
	if callerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	var (
		accepted *exchange.Request
		siblings []shared.RejectedSibling
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := authorizeDecision(ctx, tx, callerID, exchangeID)
		if derr != nil {
			return derr
		}

		// copy row first, then request row; every accept on one copy queues here
		ub, derr := tx.UserBooks().LockByID(ctx, tx.DB(), req.UserBookID())
		if derr != nil {
			return notFoundAs(derr, ErrCopyNotFound)
		}
		locked, derr := tx.ExchangeRequests().LockByID(ctx, tx.DB(), exchangeID)
		if derr != nil {
			return notFoundAs(derr, ErrExchangeNotFound)
		}

		now := uc.clock.Now()
		from := locked.Status()
		if derr = locked.Accept(now); derr != nil {
			return errs.Wrapf(ErrNotPending, "exchange %s is %s", exchangeID, from)
		}
		if ub.IsExchanged() {
			return ErrCopyAlreadyExchanged
		}

		if derr = tx.ExchangeRequests().Transition(ctx, tx.DB(), exchangeID, from, locked.Status(), now); derr != nil {
			return conflictAs(derr, ErrLostRace)
		}

		version := ub.Version()
		if derr = ub.MarkExchanged(now); derr != nil {
			if errs.Is(derr, userbook.ErrAlreadyExchanged) {
				return ErrCopyAlreadyExchanged
			}
			return derr
		}
		if derr = tx.UserBooks().SetStatus(ctx, tx.DB(), ub.ID(), version, ub.Status(), now); derr != nil {
			return conflictAs(derr, ErrLostRace)
		}

		rejected, derr := tx.ExchangeRequests().RejectPendingSiblings(ctx, tx.DB(), ub.ID(), exchangeID, now)
		if derr != nil {
			return derr
		}

		if derr = enqueueNotice(ctx, tx, JobKindExchangeAccepted, ExchangeNotice{
			ExchangeID:  locked.ID(),
			UserBookID:  ub.ID(),
			RecipientID: locked.RequesterID(),
			Status:      locked.Status().String(),
			OccurredAt:  now,
		}); derr != nil {
			return derr
		}
		for _, s := range rejected {
			if derr = enqueueNotice(ctx, tx, JobKindExchangeRejected, ExchangeNotice{
				ExchangeID:   s.ID,
				UserBookID:   ub.ID(),
				RecipientID:  s.RequesterID,
				Status:       exchange.StatusRejected.String(),
				AutoRejected: true,
				OccurredAt:   now,
			}); derr != nil {
				return derr
			}
		}

		accepted = locked
		siblings = rejected
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "exchange accepted",
		"exchange_id", accepted.ID(),
		"user_book_id", accepted.UserBookID(),
		"from", exchange.StatusPending.String(),
		"to", accepted.Status().String(),
		"auto_rejected", len(siblings),
	)
	return accepted, nil
}

func (uc *exchangeCommandsImpl) RejectExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*exchange.Request, error) {
	if callerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	var (
		result  *exchange.Request
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := authorizeDecision(ctx, tx, callerID, exchangeID); derr != nil {
			return derr
		}

		locked, derr := tx.ExchangeRequests().LockByID(ctx, tx.DB(), exchangeID)
		if derr != nil {
			return notFoundAs(derr, ErrExchangeNotFound)
		}

		from := locked.Status()
		if from == exchange.StatusRejected {
			result, changed = locked, false
			return nil
		}

		now := uc.clock.Now()
		if derr = locked.Reject(now); derr != nil {
			return errs.Wrapf(ErrNotPending, "exchange %s is %s", exchangeID, from)
		}
		if derr = tx.ExchangeRequests().Transition(ctx, tx.DB(), exchangeID, from, locked.Status(), now); derr != nil {
			return conflictAs(derr, ErrLostRace)
		}

		if derr = enqueueNotice(ctx, tx, JobKindExchangeRejected, ExchangeNotice{
			ExchangeID:  locked.ID(),
			UserBookID:  locked.UserBookID(),
			RecipientID: locked.RequesterID(),
			Status:      locked.Status().String(),
			OccurredAt:  now,
		}); derr != nil {
			return derr
		}

		result, changed = locked, true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		slog.InfoContext(ctx, "exchange rejected",
			"exchange_id", result.ID(),
			"user_book_id", result.UserBookID(),
			"from", exchange.StatusPending.String(),
			"to", result.Status().String(),
		)
	}
	return result, nil
}

// authorizeDecision runs the non-locking checks shared by accept and reject.
func authorizeDecision(ctx context.Context, tx shared.Tx, callerID, exchangeID uuid.UUID) (*exchange.Request, error) {
	req, err := tx.Reads().ExchangeRequestByID(ctx, exchangeID)
	if err != nil {
		return nil, notFoundAs(err, ErrExchangeNotFound)
	}
	if !req.IsAddressedTo(callerID) {
		return nil, ErrNotCopyOwner
	}
	return req, nil
}

func translateCreateRequestErr(err error) error {
	switch infra.Constraint(err) {
	case constraintRequester:
		return errs.Classify(err, ErrUnknownUser)
	case constraintRequestedBy:
		return errs.Classify(err, ErrCopyNotFound)
	case constraintNotSelf:
		return errs.Classify(err, ErrSelfExchange)
	default:
		return err
	}
}
