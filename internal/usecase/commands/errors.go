package commands

import (
	"bookloop/internal/domain/exchange"
	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra"
	"bookloop/internal/pkg/errs"
)

var (
	ErrBookNotFound     = errs.NewKind(errs.ErrNotFound, "book not found")
	ErrCopyNotFound     = errs.NewKind(errs.ErrNotFound, "copy not found")
	ErrExchangeNotFound = errs.NewKind(errs.ErrNotFound, "exchange request not found")

	ErrNotCopyOwner = errs.NewKind(errs.ErrUnauthorized, "only the copy owner may decide on this request")
	ErrUnknownUser  = errs.NewKind(errs.ErrUnauthorized, "caller has no user record")

	ErrDuplicateCopy = errs.NewKind(errs.ErrDuplicateOwnership, "owner already lists this book")

	ErrSelfExchange = errs.Classify(exchange.ErrSelfExchange, errs.ErrSelfExchangeForbidden)
	ErrNotPending   = errs.Classify(exchange.ErrNotPending, errs.ErrInvalidStateTransition)

	ErrCopyAlreadyExchanged = errs.Classify(userbook.ErrAlreadyExchanged, errs.ErrConflict)
	ErrLostRace             = errs.NewKind(errs.ErrConflict, "concurrent transition won")
)

func notFoundAs(err error, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

func conflictAs(err error, target error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Classify(err, target)
	}
	return err
}

func invalid(err error) error {
	return errs.Classify(err, errs.ErrValidation)
}
