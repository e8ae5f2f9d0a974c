//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookloop/internal/infra"
	"bookloop/internal/infra/repository"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"
	repositorymock "bookloop/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgtypeTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 7, 1, 8, 30, 0, 0, time.UTC)
	payload := []byte(`{"exchange_id":"x"}`)

	t.Run("success: job queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    "exchange.accepted",
			Topic:   "user:42",
			Payload: payload,
			RunAt:   pgtypeTime(runAt),
			Status:  "queued",
		}).Return(nil)

		err := repository.NewNotificationRepository(mockQueries, mockDB).CreateJob(ctx, mockDB, "exchange.accepted", "user:42", payload, runAt)
		assert.NoError(t, err)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repository.NewNotificationRepository(mockQueries, mockDB).CreateJob(ctx, mockDB, "exchange.rejected", "user:1", payload, runAt)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
