package response

import (
	"time"

	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       *string `json:"genre,omitempty"`
	Rating      float64 `json:"rating"`
	CoverImage  *string `json:"cover_image,omitempty"`
	Description *string `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

type BookDetailResponse struct {
	BookResponse
	AvailableCopies []*CopyResponse `json:"available_copies"`
}

// viewCopyOption renders ids as strings and timestamps as unix seconds.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func FromBookView(v *queries.BookView) (*BookResponse, error) {
	res := &BookResponse{}
	if err := copier.CopyWithOption(res, v, viewCopyOption); err != nil {
		return nil, errs.Wrap(err, "failed to map book view")
	}
	return res, nil
}

func FromBookList(items []*queries.BookView) ([]*BookResponse, error) {
	res := make([]*BookResponse, len(items))
	for i, it := range items {
		b, err := FromBookView(it)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}

func FromBookDetailView(v *queries.BookDetailView) (*BookDetailResponse, error) {
	book, err := FromBookView(&v.Book)
	if err != nil {
		return nil, err
	}
	return &BookDetailResponse{
		BookResponse:    *book,
		AvailableCopies: FromCopyList(v.AvailableCopies),
	}, nil
}
