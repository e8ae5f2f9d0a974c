package book

import (
	"strings"
	"time"

	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxTitleLength  = 150
	MaxAuthorLength = 100
	MaxGenreLength  = 50
	MaxCoverLength  = 500
	MinRating       = 0.0
	MaxRating       = 5.0
)

var (
	ErrEmptyTitle     = errs.New("book title cannot be empty")
	ErrTitleTooLong   = errs.New("book title exceeds maximum length")
	ErrEmptyAuthor    = errs.New("book author cannot be empty")
	ErrAuthorTooLong  = errs.New("book author exceeds maximum length")
	ErrGenreTooLong   = errs.New("book genre exceeds maximum length")
	ErrCoverTooLong   = errs.New("cover reference exceeds maximum length")
	ErrRatingOutOfRng = errs.New("rating must be between 0 and 5")
)

// Book is catalog metadata. It is immutable once seeded.
type Book struct {
	id          uuid.UUID
	title       string
	author      string
	genre       string
	rating      float64
	coverImage  string
	description string
	createdAt   time.Time
}

type Attributes struct {
	Title       string
	Author      string
	Genre       string
	Rating      float64
	CoverImage  string
	Description string
}

func NewBook(attrs Attributes, now time.Time) (*Book, error) {
	title := strings.TrimSpace(attrs.Title)
	switch {
	case title == "":
		return nil, ErrEmptyTitle
	case len(title) > MaxTitleLength:
		return nil, ErrTitleTooLong
	}

	author := strings.TrimSpace(attrs.Author)
	switch {
	case author == "":
		return nil, ErrEmptyAuthor
	case len(author) > MaxAuthorLength:
		return nil, ErrAuthorTooLong
	}

	genre := strings.TrimSpace(attrs.Genre)
	if len(genre) > MaxGenreLength {
		return nil, ErrGenreTooLong
	}
	if len(attrs.CoverImage) > MaxCoverLength {
		return nil, ErrCoverTooLong
	}
	if attrs.Rating < MinRating || attrs.Rating > MaxRating {
		return nil, ErrRatingOutOfRng
	}

	return &Book{
		id:          uuid.Must(uuid.NewV7()),
		title:       title,
		author:      author,
		genre:       genre,
		rating:      attrs.Rating,
		coverImage:  attrs.CoverImage,
		description: strings.TrimSpace(attrs.Description),
		createdAt:   now,
	}, nil
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) Genre() string        { return b.genre }
func (b *Book) Rating() float64      { return b.rating }
func (b *Book) CoverImage() string   { return b.coverImage }
func (b *Book) Description() string  { return b.description }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
