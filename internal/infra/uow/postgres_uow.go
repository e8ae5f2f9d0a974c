package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra/readstore"
	"bookloop/internal/infra/repository"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in READ COMMITTED. Row locks taken inside fn serialize
// competing writers; serialization failures and deadlocks are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Classify(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Classify(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Classify(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, baseBackoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userBookRepo     *repository.UserBookRepository
	exchangeRepo     *repository.ExchangeRequestRepository
	notificationRepo *repository.NotificationRepository
	commandReads     *commandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) UserBooks() shared.UserBookRepository {
	if t.userBookRepo == nil {
		t.userBookRepo = repository.NewUserBookRepository(t.uow.q, t.dbtx)
	}
	return t.userBookRepo
}

func (t *pgTx) ExchangeRequests() shared.ExchangeRequestRepository {
	if t.exchangeRepo == nil {
		t.exchangeRepo = repository.NewExchangeRequestRepository(t.uow.q, t.dbtx)
	}
	return t.exchangeRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized stores
	bookStore    *readstore.BookReadStore
	userBookRepo *repository.UserBookRepository
	exchangeRepo *repository.ExchangeRequestRepository
}

func (r *commandReads) BookByID(ctx context.Context, id uuid.UUID) (*shared.BookSnapshot, error) {
	if r.bookStore == nil {
		r.bookStore = readstore.NewBookReadStore(r.uow.q, r.dbtx)
	}

	book, err := r.bookStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.BookSnapshot{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
	}, nil
}

func (r *commandReads) UserBookByID(ctx context.Context, id uuid.UUID) (*userbook.UserBook, error) {
	if r.userBookRepo == nil {
		r.userBookRepo = repository.NewUserBookRepository(r.uow.q, r.dbtx)
	}
	return r.userBookRepo.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) ExchangeRequestByID(ctx context.Context, id uuid.UUID) (*exchange.Request, error) {
	if r.exchangeRepo == nil {
		r.exchangeRepo = repository.NewExchangeRequestRepository(r.uow.q, r.dbtx)
	}
	return r.exchangeRepo.FindByID(ctx, r.dbtx, id)
}
