package response

import (
	"bookloop/internal/domain/userbook"
	"bookloop/internal/usecase/queries"
)

type CopyResponse struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	OwnerUsername string `json:"owner_username,omitempty"`
	BookID        string `json:"book_id"`
	BookTitle     string `json:"book_title,omitempty"`
	BookAuthor    string `json:"book_author,omitempty"`
	Condition     string `json:"condition"`
	Status        string `json:"status"`
	AddedAt       int64  `json:"added_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

// FromUserBook renders a freshly written copy; joined fields stay empty.
func FromUserBook(ub *userbook.UserBook) *CopyResponse {
	return &CopyResponse{
		ID:        ub.ID().String(),
		OwnerID:   ub.OwnerID().String(),
		BookID:    ub.BookID().String(),
		Condition: ub.Condition().String(),
		Status:    ub.Status().String(),
		AddedAt:   ub.AddedAt().Unix(),
		UpdatedAt: ub.UpdatedAt().Unix(),
	}
}

func FromCopyView(v *queries.UserBookView) *CopyResponse {
	return &CopyResponse{
		ID:            v.ID.String(),
		OwnerID:       v.OwnerID.String(),
		OwnerUsername: v.OwnerUsername,
		BookID:        v.BookID.String(),
		BookTitle:     v.BookTitle,
		BookAuthor:    v.BookAuthor,
		Condition:     v.Condition,
		Status:        v.Status,
		AddedAt:       v.AddedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

func FromCopyList(items []*queries.UserBookView) []*CopyResponse {
	res := make([]*CopyResponse, len(items))
	for i, it := range items {
		res[i] = FromCopyView(it)
	}
	return res
}
