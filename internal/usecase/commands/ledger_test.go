//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/commands"
	"bookloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddCopy(t *testing.T) {
	ctx := context.Background()
	ownerID := mustV7()
	book := builder.NewBookBuilder().BuildSnapshot()

	t.Run("成功: blank condition defaults to Good", func(t *testing.T) {
		h := newUoWHarness(t)
		h.reads.EXPECT().BookByID(gomock.Any(), book.ID).Return(book, nil)
		h.userBooks.EXPECT().ExistsForOwnerAndBook(gomock.Any(), gomock.Any(), ownerID, book.ID).Return(false, nil)
		h.userBooks.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, ub *userbook.UserBook) (uuid.UUID, error) {
				return ub.ID(), nil
			})

		ub, err := h.ledgerCommands().AddCopy(ctx, ownerID, commands.AddCopyInput{BookID: book.ID})

		require.NoError(t, err)
		assert.Equal(t, ownerID, ub.OwnerID())
		assert.Equal(t, book.ID, ub.BookID())
		assert.Equal(t, userbook.StatusAvailable, ub.Status())
		assert.Equal(t, int32(1), ub.Version())
		assert.Equal(t, userbook.DefaultCondition, ub.Condition().String())
		assert.True(t, fixedNow.Equal(ub.AddedAt()))
	})

	testCases := []struct {
		name   string
		caller uuid.UUID
		input  commands.AddCopyInput
		setup  func(h *uowHarness)
		wantIs []error
	}{
		{
			name:   "anonymous caller",
			caller: uuid.Nil,
			input:  commands.AddCopyInput{BookID: book.ID},
			wantIs: []error{errs.ErrUnauthenticated},
		},
		{
			name:   "condition too long",
			caller: ownerID,
			input:  commands.AddCopyInput{BookID: book.ID, Condition: strings.Repeat("x", userbook.MaxConditionLength+1)},
			wantIs: []error{errs.ErrValidation, userbook.ErrConditionTooLong},
		},
		{
			name:   "本が存在しない",
			caller: ownerID,
			input:  commands.AddCopyInput{BookID: book.ID},
			setup: func(h *uowHarness) {
				h.reads.EXPECT().BookByID(gomock.Any(), book.ID).
					Return(nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound))
			},
			wantIs: []error{commands.ErrBookNotFound, errs.ErrNotFound},
		},
		{
			name:   "already listed (pre-check)",
			caller: ownerID,
			input:  commands.AddCopyInput{BookID: book.ID},
			setup: func(h *uowHarness) {
				h.reads.EXPECT().BookByID(gomock.Any(), book.ID).Return(book, nil)
				h.userBooks.EXPECT().ExistsForOwnerAndBook(gomock.Any(), gomock.Any(), ownerID, book.ID).Return(true, nil)
			},
			wantIs: []error{commands.ErrDuplicateCopy, errs.ErrDuplicateOwnership},
		},
		{
			name:   "already listed (constraint race)",
			caller: ownerID,
			input:  commands.AddCopyInput{BookID: book.ID},
			setup: func(h *uowHarness) {
				h.reads.EXPECT().BookByID(gomock.Any(), book.ID).Return(book, nil)
				h.userBooks.EXPECT().ExistsForOwnerAndBook(gomock.Any(), gomock.Any(), ownerID, book.ID).Return(false, nil)
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "user_books_owner_book_key"}
				h.userBooks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create user book", dup))
			},
			wantIs: []error{commands.ErrDuplicateCopy, errs.ErrDuplicateOwnership},
		},
		{
			name:   "owner has no user row",
			caller: ownerID,
			input:  commands.AddCopyInput{BookID: book.ID},
			setup: func(h *uowHarness) {
				h.reads.EXPECT().BookByID(gomock.Any(), book.ID).Return(book, nil)
				h.userBooks.EXPECT().ExistsForOwnerAndBook(gomock.Any(), gomock.Any(), ownerID, book.ID).Return(false, nil)
				fk := &pgconn.PgError{Code: "23503", ConstraintName: "user_books_owner_fkey"}
				h.userBooks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("failed to create user book", fk))
			},
			wantIs: []error{commands.ErrUnknownUser, errs.ErrUnauthorized},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newUoWHarness(t)
			if tc.setup != nil {
				tc.setup(h)
			}

			ub, err := h.ledgerCommands().AddCopy(ctx, tc.caller, tc.input)

			require.Error(t, err)
			assert.Nil(t, ub)
			for _, target := range tc.wantIs {
				assert.True(t, errs.Is(err, target), "expected %v to match %v", err, target)
			}
		})
	}
}
