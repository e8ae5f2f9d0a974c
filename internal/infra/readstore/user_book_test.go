//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"bookloop/internal/infra"
	"bookloop/internal/infra/readstore"
	sqlc "bookloop/internal/infra/sqlc/generated"
	readstoremock "bookloop/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userBookRow(ownerID, bookID uuid.UUID, status string, addedAt time.Time) sqlc.ListUserBooksByOwnerRow {
	return sqlc.ListUserBooksByOwnerRow{
		ID:            uuid.Must(uuid.NewV7()),
		OwnerID:       ownerID,
		OwnerUsername: "alice",
		BookID:        bookID,
		BookTitle:     "1984",
		BookAuthor:    "George Orwell",
		Condition:     "Good",
		Status:        status,
		AddedAt:       pgtype.Timestamptz{Time: addedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: addedAt, Valid: true},
	}
}

func TestUserBookReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: view joined with book and owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
		row := sqlc.GetUserBookViewByIDRow(userBookRow(uuid.New(), uuid.New(), "available", time.Now()))
		row.ID = id
		mockQueries.EXPECT().GetUserBookViewByID(ctx, gomock.Any(), id).Return(row, nil)

		view, err := readstore.NewUserBookReadStore(mockQueries, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "alice", view.OwnerUsername)
		assert.Equal(t, "1984", view.BookTitle)
		assert.Equal(t, "available", view.Status)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
		mockQueries.EXPECT().GetUserBookViewByID(ctx, gomock.Any(), id).Return(sqlc.GetUserBookViewByIDRow{}, pgx.ErrNoRows)

		view, err := readstore.NewUserBookReadStore(mockQueries, nil).FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestUserBookReadStore_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("keeps query order and every status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
		rows := []sqlc.ListUserBooksByOwnerRow{
			userBookRow(ownerID, uuid.New(), "available", base),
			userBookRow(ownerID, uuid.New(), "exchanged", base.Add(time.Minute)),
		}
		mockQueries.EXPECT().ListUserBooksByOwner(ctx, gomock.Any(), ownerID).Return(rows, nil)

		views, err := readstore.NewUserBookReadStore(mockQueries, nil).ListByOwner(ctx, ownerID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, rows[0].ID, views[0].ID)
		assert.Equal(t, "exchanged", views[1].Status)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
		mockQueries.EXPECT().ListUserBooksByOwner(ctx, gomock.Any(), ownerID).Return(nil, nil)

		views, err := readstore.NewUserBookReadStore(mockQueries, nil).ListByOwner(ctx, ownerID)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestUserBookReadStore_ListAvailableByBook(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
	row := sqlc.ListAvailableUserBooksByBookRow(userBookRow(uuid.New(), bookID, "available", time.Now()))
	mockQueries.EXPECT().ListAvailableUserBooksByBook(ctx, gomock.Any(), bookID).Return([]sqlc.ListAvailableUserBooksByBookRow{row}, nil)

	views, err := readstore.NewUserBookReadStore(mockQueries, nil).ListAvailableByBook(ctx, bookID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, bookID, views[0].BookID)

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserBookViewQueries(ctrl)
		mockQueries.EXPECT().ListAvailableUserBooksByBook(ctx, gomock.Any(), bookID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewUserBookReadStore(mockQueries, nil).ListAvailableByBook(ctx, bookID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
