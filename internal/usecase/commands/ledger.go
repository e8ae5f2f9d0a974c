package commands

import (
	"context"

	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra"
	"bookloop/internal/pkg/clock"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	constraintOwnerBook = "user_books_owner_book_key"
	constraintCopyOwner = "user_books_owner_fkey"
)

type AddCopyInput struct {
	BookID    uuid.UUID
	Condition string
}

type LedgerCommands interface {
	AddCopy(ctx context.Context, ownerID uuid.UUID, req AddCopyInput) (*userbook.UserBook, error)
}

type ledgerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{uow: uow, clock: clk}
}

func (uc *ledgerCommandsImpl) AddCopy(ctx context.Context, ownerID uuid.UUID, req AddCopyInput) (*userbook.UserBook, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	ub, err := userbook.NewUserBook(ownerID, req.BookID, req.Condition, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().BookByID(ctx, req.BookID); derr != nil {
			return notFoundAs(derr, ErrBookNotFound)
		}

		exists, derr := tx.UserBooks().ExistsForOwnerAndBook(ctx, tx.DB(), ownerID, req.BookID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateCopy
		}

		if _, derr = tx.UserBooks().Create(ctx, tx.DB(), ub); derr != nil {
			return translateCreateCopyErr(derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ub, nil
}

// The pre-check can race with a concurrent insert; the constraints decide then.
func translateCreateCopyErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == constraintOwnerBook:
		return errs.Classify(err, ErrDuplicateCopy)
	case infra.IsKind(err, infra.KindForeignKeyViolated) && infra.Constraint(err) == constraintCopyOwner:
		return errs.Classify(err, ErrUnknownUser)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Classify(err, ErrBookNotFound)
	default:
		return err
	}
}
