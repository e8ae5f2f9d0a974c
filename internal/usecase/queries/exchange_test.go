//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bookloop/internal/infra"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/queries"
	"bookloop/tests/common/builder"
	queriesmock "bookloop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newExchangeQueries(t *testing.T) (queries.ExchangeQueries, *queriesmock.MockExchangeRequestReadStore) {
	store := queriesmock.NewMockExchangeRequestReadStore(gomock.NewController(t))
	return queries.NewExchangeQueries(store), store
}

// ============================================================================
// GetExchange
// ============================================================================

func TestGetExchange(t *testing.T) {
	ctx := context.Background()
	view := builder.NewExchangeBuilder().BuildView()

	t.Run("成功: requester and owner can read", func(t *testing.T) {
		for _, caller := range []uuid.UUID{view.RequesterID, view.OwnerID} {
			q, store := newExchangeQueries(t)
			store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

			got, err := q.GetExchange(ctx, caller, view.ID)

			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		}
	})

	t.Run("失敗: third party is forbidden, not unauthenticated", func(t *testing.T) {
		q, store := newExchangeQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetExchange(ctx, uuid.New(), view.ID)

		assert.True(t, errs.Is(err, queries.ErrExchangeAccess))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.False(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("失敗: unknown id", func(t *testing.T) {
		q, store := newExchangeQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, infra.WrapRepoErr("failed to get exchange request", pgx.ErrNoRows))

		_, err := q.GetExchange(ctx, view.OwnerID, view.ID)

		assert.True(t, errs.Is(err, queries.ErrExchangeNotFound))
	})

	t.Run("失敗: anonymous caller never reaches the store", func(t *testing.T) {
		q, _ := newExchangeQueries(t)

		_, err := q.GetExchange(ctx, uuid.Nil, view.ID)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}

// ============================================================================
// ListSent / ListReceived
// ============================================================================

func exchangeViewsNewestFirst(n int, base time.Time) []*queries.ExchangeRequestView {
	views := make([]*queries.ExchangeRequestView, 0, n)
	for i := 0; i < n; i++ {
		at := base.Add(-time.Duration(i) * time.Minute)
		views = append(views, builder.NewExchangeBuilder().With(func(b *builder.ExchangeBuilder) {
			b.CreatedAt = at
			b.UpdatedAt = at
		}).BuildView())
	}
	return views
}

func TestListSent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("成功: next cursor points at last row of the page", func(t *testing.T) {
		q, store := newExchangeQueries(t)
		rows := exchangeViewsNewestFirst(3, base)
		store.EXPECT().ListSent(gomock.Any(), userID, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		got, next, err := q.ListSent(ctx, userID, nil, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("成功: cursor becomes keyset", func(t *testing.T) {
		q, store := newExchangeQueries(t)
		id := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, id)}
		store.EXPECT().
			ListSent(gomock.Any(), userID, gomock.Any(), int32(queries.DefaultListLimit+1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, after *queries.Keyset, _ int32) ([]*queries.ExchangeRequestView, error) {
				require.NotNil(t, after)
				assert.Equal(t, id, after.ID)
				assert.True(t, base.Equal(after.CreatedAt))
				return nil, nil
			})

		got, next, err := q.ListSent(ctx, userID, cursor, 0)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("失敗: malformed cursor", func(t *testing.T) {
		q, _ := newExchangeQueries(t)

		_, _, err := q.ListSent(ctx, userID, &queries.Cursor{After: "nope"}, 10)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("失敗: anonymous caller", func(t *testing.T) {
		q, _ := newExchangeQueries(t)

		_, _, err := q.ListSent(ctx, uuid.Nil, nil, 10)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}

func TestListReceived(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	q, store := newExchangeQueries(t)
	rows := exchangeViewsNewestFirst(2, time.Now())
	store.EXPECT().ListReceived(gomock.Any(), ownerID, (*queries.Keyset)(nil), int32(queries.MaxListLimit+1)).Return(rows, nil)

	got, next, err := q.ListReceived(ctx, ownerID, nil, 1000)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Nil(t, next)
}
