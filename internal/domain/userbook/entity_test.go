//go:build unit

package userbook_test

import (
	"strings"
	"testing"
	"time"

	"bookloop/internal/domain/userbook"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserBook(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	bookID := uuid.New()

	t.Run("new copy starts available at version 1", func(t *testing.T) {
		ub, err := userbook.NewUserBook(ownerID, bookID, "Like new", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, ub.ID())
		assert.Equal(t, ownerID, ub.OwnerID())
		assert.Equal(t, bookID, ub.BookID())
		assert.Equal(t, "Like new", ub.Condition().String())
		assert.Equal(t, userbook.StatusAvailable, ub.Status())
		assert.Equal(t, int32(1), ub.Version())
		assert.Equal(t, now, ub.AddedAt())
		assert.True(t, ub.IsOwnedBy(ownerID))
		assert.False(t, ub.IsOwnedBy(uuid.New()))
		assert.False(t, ub.IsOwnedBy(uuid.Nil))
	})

	tests := []struct {
		name          string
		ownerID       uuid.UUID
		bookID        uuid.UUID
		condition     string
		wantCondition string
		errIs         error
	}{
		{name: "blank condition defaults to Good", ownerID: ownerID, bookID: bookID, condition: "   ", wantCondition: userbook.DefaultCondition},
		{name: "condition is trimmed", ownerID: ownerID, bookID: bookID, condition: "  Worn  ", wantCondition: "Worn"},
		{name: "condition at max length", ownerID: ownerID, bookID: bookID, condition: strings.Repeat("x", userbook.MaxConditionLength), wantCondition: strings.Repeat("x", userbook.MaxConditionLength)},
		{name: "condition too long", ownerID: ownerID, bookID: bookID, condition: strings.Repeat("x", userbook.MaxConditionLength+1), errIs: userbook.ErrConditionTooLong},
		{name: "missing owner", ownerID: uuid.Nil, bookID: bookID, errIs: userbook.ErrOwnerRequired},
		{name: "missing book", ownerID: ownerID, bookID: uuid.Nil, errIs: userbook.ErrBookRequired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ub, err := userbook.NewUserBook(tc.ownerID, tc.bookID, tc.condition, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, ub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCondition, ub.Condition().String())
		})
	}
}

func TestUserBook_MarkExchanged(t *testing.T) {
	added := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := added.Add(time.Hour)

	tests := []struct {
		name       string
		status     userbook.Status
		errIs      error
		wantStatus userbook.Status
	}{
		{name: "available to exchanged", status: userbook.StatusAvailable, wantStatus: userbook.StatusExchanged},
		{name: "reserved to exchanged", status: userbook.StatusReserved, wantStatus: userbook.StatusExchanged},
		{name: "exchanged is final", status: userbook.StatusExchanged, errIs: userbook.ErrAlreadyExchanged, wantStatus: userbook.StatusExchanged},
		{name: "unknown status", status: userbook.Status("lost"), errIs: userbook.ErrInvalidTransition, wantStatus: userbook.Status("lost")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ub := userbook.ReconstructUserBook(uuid.New(), uuid.New(), uuid.New(), "Good", tc.status, 3, added, added)

			err := ub.MarkExchanged(later)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, added, ub.UpdatedAt())
			} else {
				require.NoError(t, err)
				assert.Equal(t, later, ub.UpdatedAt())
				assert.True(t, ub.IsExchanged())
			}
			assert.Equal(t, tc.wantStatus, ub.Status())
			// version is bumped by storage, not by the entity
			assert.Equal(t, int32(3), ub.Version())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"available", "reserved", "exchanged"} {
		st, err := userbook.ParseStatus(s)
		require.NoError(t, err)
		if diff := cmp.Diff(s, st.String()); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	}

	_, err := userbook.ParseStatus("Available")
	assert.ErrorIs(t, err, userbook.ErrInvalidStatus)
}
