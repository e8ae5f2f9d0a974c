//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetUserByIDRow), args.Error(1)
}

func TestFindByID(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	withName := sqlc.GetUserByIDRow{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		FullName:  pgtype.Text{String: "Alice Liddell", Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: created, Valid: true},
	}
	withoutName := sqlc.GetUserByIDRow{
		ID:        uuid.New(),
		Username:  "bob",
		Email:     "bob@example.com",
		CreatedAt: pgtype.Timestamptz{Time: created, Valid: true},
	}

	tests := []struct {
		name         string
		userID       uuid.UUID
		mockReturn   sqlc.GetUserByIDRow
		mockError    error
		wantFullName *string
		wantError    bool
		wantKind     infra.RepositoryErrorKind
	}{
		{
			name:         "success - with full name",
			userID:       withName.ID,
			mockReturn:   withName,
			wantFullName: &withName.FullName.String,
		},
		{
			name:       "success - full name is null",
			userID:     withoutName.ID,
			mockReturn: withoutName,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.GetUserByIDRow{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     withName.ID,
			mockReturn: sqlc.GetUserByIDRow{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, tt.mockReturn.Username, view.Username)
				assert.Equal(t, tt.wantFullName, view.FullName)
				assert.True(t, created.Equal(view.CreatedAt))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
