package queries

import (
	"context"

	"bookloop/internal/infra"
	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.NewKind(errs.ErrNotFound, "book not found")

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	// List returns books ordered by (title, id) strictly after the keyset.
	List(ctx context.Context, after *TitleKeyset, limit int32) ([]*BookView, error)
}

type BookQueries interface {
	GetBook(ctx context.Context, id uuid.UUID) (*BookView, error)
	GetBookDetail(ctx context.Context, id uuid.UUID) (*BookDetailView, error)
	ListBooks(ctx context.Context, cursor *Cursor, limit int) ([]*BookView, *Cursor, error)
}

type bookQueriesImpl struct {
	books  BookReadStore
	copies UserBookReadStore
}

func NewBookQueries(books BookReadStore, copies UserBookReadStore) BookQueries {
	return &bookQueriesImpl{books: books, copies: copies}
}

func (q *bookQueriesImpl) GetBook(ctx context.Context, id uuid.UUID) (*BookView, error) {
	b, err := q.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookQueriesImpl) GetBookDetail(ctx context.Context, id uuid.UUID) (*BookDetailView, error) {
	b, err := q.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	copies, err := q.copies.ListAvailableByBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BookDetailView{Book: *b, AvailableCopies: copies}, nil
}

func (q *bookQueriesImpl) ListBooks(ctx context.Context, cursor *Cursor, limit int) ([]*BookView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *TitleKeyset
	if cursor != nil && cursor.After != "" {
		title, id, err := DecodeTitleCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(ErrInvalidCursor, err.Error())
		}
		after = &TitleKeyset{Title: title, ID: id}
	}

	rows, err := q.books.List(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeTitleCursor(last.Title, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
