//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

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

func newBookQueries(t *testing.T) (queries.BookQueries, *queriesmock.MockBookReadStore, *queriesmock.MockUserBookReadStore) {
	ctrl := gomock.NewController(t)
	books := queriesmock.NewMockBookReadStore(ctrl)
	copies := queriesmock.NewMockUserBookReadStore(ctrl)
	return queries.NewBookQueries(books, copies), books, copies
}

func bookViews(titles ...string) []*queries.BookView {
	views := make([]*queries.BookView, 0, len(titles))
	for _, title := range titles {
		views = append(views, builder.NewBookBuilder().With(func(b *builder.BookBuilder) { b.Title = title }).BuildView())
	}
	return views
}

func TestGetBookDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: includes available copies", func(t *testing.T) {
		q, books, copies := newBookQueries(t)
		book := builder.NewBookBuilder().BuildView()
		offered := builder.NewUserBookBuilder().WithBookID(book.ID).BuildView()
		books.EXPECT().FindByID(gomock.Any(), book.ID).Return(book, nil)
		copies.EXPECT().ListAvailableByBook(gomock.Any(), book.ID).Return([]*queries.UserBookView{offered}, nil)

		detail, err := q.GetBookDetail(ctx, book.ID)

		require.NoError(t, err)
		assert.Equal(t, *book, detail.Book)
		require.Len(t, detail.AvailableCopies, 1)
		assert.Equal(t, offered.ID, detail.AvailableCopies[0].ID)
	})

	t.Run("失敗: unknown book", func(t *testing.T) {
		q, books, _ := newBookQueries(t)
		id := uuid.New()
		books.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("failed to get book", pgx.ErrNoRows))

		_, err := q.GetBookDetail(ctx, id)

		assert.True(t, errs.Is(err, queries.ErrBookNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: full page yields next cursor from last returned row", func(t *testing.T) {
		q, books, _ := newBookQueries(t)
		rows := bookViews("A", "B", "C")
		books.EXPECT().List(gomock.Any(), (*queries.TitleKeyset)(nil), int32(3)).Return(rows, nil)

		got, next, err := q.ListBooks(ctx, nil, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)
		title, id, err := queries.DecodeTitleCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, "B", title)
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("成功: short page has no cursor", func(t *testing.T) {
		q, books, _ := newBookQueries(t)
		books.EXPECT().List(gomock.Any(), gomock.Any(), int32(queries.DefaultListLimit+1)).Return(bookViews("A"), nil)

		got, next, err := q.ListBooks(ctx, &queries.Cursor{}, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("成功: cursor is decoded into keyset", func(t *testing.T) {
		q, books, _ := newBookQueries(t)
		id := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeTitleCursor("Emma", id)}
		books.EXPECT().
			List(gomock.Any(), &queries.TitleKeyset{Title: "Emma", ID: id}, int32(11)).
			Return(nil, nil)

		got, next, err := q.ListBooks(ctx, cursor, 10)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("失敗: malformed cursor is a validation error", func(t *testing.T) {
		q, _, _ := newBookQueries(t)

		_, _, err := q.ListBooks(ctx, &queries.Cursor{After: "garbage"}, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("失敗: store error propagates", func(t *testing.T) {
		q, books, _ := newBookQueries(t)
		dbErr := errors.New("connection reset")
		books.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, _, err := q.ListBooks(ctx, nil, 10)

		assert.ErrorIs(t, err, dbErr)
	})
}
