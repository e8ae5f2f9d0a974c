//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookloop/internal/infra"
	"bookloop/internal/infra/readstore"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/usecase/queries"
	readstoremock "bookloop/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// failingDB fails every dynamic query; sqlc paths go through the query mocks.
type failingDB struct{}

func (failingDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errDBConnectionLost
}

func (failingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errDBConnectionLost
}

func (failingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("failingDB.QueryRow was called unexpectedly")
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	testCases := []struct {
		name      string
		setupMock func(*readstoremock.MockBookReadQueries)
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: book found",
			setupMock: func(m *readstoremock.MockBookReadQueries) {
				m.EXPECT().GetBookByID(ctx, gomock.Any(), bookID).Return(sqlc.Books{
					ID:         bookID,
					Title:      "The Hobbit",
					Author:     "J.R.R. Tolkien",
					Genre:      pgtype.Text{String: "Fantasy", Valid: true},
					Rating:     4.7,
					CoverImage: pgtype.Text{},
					CreatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}, nil)
			},
		},
		{
			name: "error: book not found",
			setupMock: func(m *readstoremock.MockBookReadQueries) {
				m.EXPECT().GetBookByID(ctx, gomock.Any(), bookID).Return(sqlc.Books{}, pgx.ErrNoRows)
			},
			wantKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockBookReadQueries) {
				m.EXPECT().GetBookByID(ctx, gomock.Any(), bookID).Return(sqlc.Books{}, errDBConnectionLost)
			},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookReadQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewBookReadStore(mockQueries, failingDB{})
			view, err := store.FindByID(ctx, bookID)

			if tc.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookID, view.ID)
			require.NotNil(t, view.Genre)
			assert.Equal(t, "Fantasy", *view.Genre)
			assert.Nil(t, view.CoverImage)
			assert.Nil(t, view.Description)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestBuildBookListQuery(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		sql, args, err := readstore.BuildBookListQuery(nil, 21)
		require.NoError(t, err)

		assert.Contains(t, sql, `FROM "books"`)
		assert.Contains(t, sql, `ORDER BY "title" ASC, "id" ASC`)
		assert.Contains(t, sql, "LIMIT $1")
		assert.NotContains(t, sql, "WHERE")
		assert.Len(t, args, 1)
	})

	t.Run("after keyset", func(t *testing.T) {
		after := &queries.TitleKeyset{Title: "Dune", ID: uuid.New()}

		sql, args, err := readstore.BuildBookListQuery(after, 5)
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE (title, id) > ($1, $2)")
		assert.Contains(t, sql, "LIMIT $3")
		require.Len(t, args, 3)
		assert.Equal(t, "Dune", args[0])
		assert.Equal(t, after.ID.String(), args[1])
	})

	t.Run("non-positive limit", func(t *testing.T) {
		_, _, err := readstore.BuildBookListQuery(nil, 0)
		assert.Error(t, err)
	})
}

func TestBookReadStore_List_DBError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := readstore.NewBookReadStore(readstoremock.NewMockBookReadQueries(ctrl), failingDB{})

	views, err := store.List(context.Background(), nil, 10)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, views)
}
