//go:build unit

package response_test

import (
	"testing"
	"time"

	"bookloop/internal/handler/dto/response"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookView(t *testing.T) {
	genre := "Fiction"
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	view := &queries.BookView{
		ID:        uuid.New(),
		Title:     "To Kill a Mockingbird",
		Author:    "Harper Lee",
		Genre:     &genre,
		Rating:    4.8,
		CreatedAt: created,
	}

	res, err := response.FromBookView(view)

	require.NoError(t, err)
	assert.Equal(t, view.ID.String(), res.ID)
	assert.Equal(t, view.Title, res.Title)
	assert.Equal(t, view.Author, res.Author)
	require.NotNil(t, res.Genre)
	assert.Equal(t, "Fiction", *res.Genre)
	assert.Nil(t, res.CoverImage)
	assert.InDelta(t, 4.8, res.Rating, 0.0001)
	assert.Equal(t, created.Unix(), res.CreatedAt)
}

func TestFromBookDetailView(t *testing.T) {
	detail := &queries.BookDetailView{
		Book: queries.BookView{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert"},
		AvailableCopies: []*queries.UserBookView{
			{ID: uuid.New(), OwnerUsername: "alice", Status: "available"},
		},
	}

	res, err := response.FromBookDetailView(detail)

	require.NoError(t, err)
	assert.Equal(t, "Dune", res.Title)
	require.Len(t, res.AvailableCopies, 1)
	assert.Equal(t, "alice", res.AvailableCopies[0].OwnerUsername)
}
