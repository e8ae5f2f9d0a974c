//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/infra"
	"bookloop/internal/infra/repository"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/tests/common/builder"
	repositorymock "bookloop/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExchangeRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: request stored"},
		{
			name:       "error: requester has no user row",
			returnErr:  &pgconn.PgError{Code: "23503", ConstraintName: "exchange_requests_requester_fkey"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockExchangeRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			req := builder.NewExchangeBuilder().BuildDomain()

			mockQueries.EXPECT().
				CreateExchangeRequest(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateExchangeRequestParams) (uuid.UUID, error) {
					assert.Equal(t, req.OwnerID(), arg.OwnerID)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, req.Handoff().Mode(), arg.ExchangeMode)
					if tc.returnErr != nil {
						return uuid.Nil, tc.returnErr
					}
					return arg.ID, nil
				})

			id, err := repository.NewExchangeRequestRepository(mockQueries, mockDB).Create(ctx, mockDB, req)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, req.ID(), id)
		})
	}
}

func TestExchangeRequestRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExchangeRequestWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		row := builder.NewExchangeBuilder().WithStatus(exchange.StatusRejected).BuildInfra()
		mockQueries.EXPECT().LockExchangeRequestByID(ctx, mockDB, row.ID).Return(row, nil)

		req, err := repository.NewExchangeRequestRepository(mockQueries, mockDB).LockByID(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, exchange.StatusRejected, req.Status())
		assert.Equal(t, row.RequesterEmail, req.Contact().Email())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockExchangeRequestWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		id := uuid.New()
		mockQueries.EXPECT().GetExchangeRequestByID(ctx, mockDB, id).Return(sqlc.ExchangeRequests{}, pgx.ErrNoRows)

		_, err := repository.NewExchangeRequestRepository(mockQueries, mockDB).FindByID(ctx, mockDB, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestExchangeRequestRepository_Transition(t *testing.T) {
	ctx := context.Background()
	at := time.Now()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: still pending", affected: 1},
		{name: "conflict: status already moved", affected: 0, expectKind: infra.KindConflict},
		{
			name:       "conflict: copy already has an accepted request",
			returnErr:  &pgconn.PgError{Code: "23505", ConstraintName: "exchange_requests_one_accepted_per_copy"},
			expectKind: infra.KindConflict,
		},
		{name: "error: database error", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockExchangeRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			id := uuid.New()

			mockQueries.EXPECT().
				TransitionExchangeRequestStatus(ctx, mockDB, sqlc.TransitionExchangeRequestStatusParams{
					ToStatus:   "accepted",
					UpdatedAt:  pgtypeTime(at),
					ID:         id,
					FromStatus: "pending",
				}).
				Return(tc.affected, tc.returnErr)

			err := repository.NewExchangeRequestRepository(mockQueries, mockDB).
				Transition(ctx, mockDB, id, exchange.StatusPending, exchange.StatusAccepted, at)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExchangeRequestRepository_RejectPendingSiblings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockExchangeRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	userBookID, acceptedID := uuid.New(), uuid.New()
	rows := []sqlc.RejectPendingSiblingRequestsRow{
		{ID: uuid.New(), RequesterID: uuid.New()},
		{ID: uuid.New(), RequesterID: uuid.New()},
	}

	mockQueries.EXPECT().
		RejectPendingSiblingRequests(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.RejectPendingSiblingRequestsParams) ([]sqlc.RejectPendingSiblingRequestsRow, error) {
			assert.Equal(t, userBookID, arg.UserBookID)
			assert.Equal(t, acceptedID, arg.ID)
			return rows, nil
		})

	siblings, err := repository.NewExchangeRequestRepository(mockQueries, mockDB).
		RejectPendingSiblings(ctx, mockDB, userBookID, acceptedID, time.Now())

	require.NoError(t, err)
	require.Len(t, siblings, 2)
	assert.Equal(t, rows[1].RequesterID, siblings[1].RequesterID)
}
