package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       *string   `json:"genre,omitempty"`
	Rating      float64   `json:"rating"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookDetailView is a book together with the copies currently offered for it.
type BookDetailView struct {
	Book            BookView        `json:"book"`
	AvailableCopies []*UserBookView `json:"available_copies"`
}

type UserBookView struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	BookID        uuid.UUID `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	BookAuthor    string    `json:"book_author"`
	Condition     string    `json:"condition"`
	Status        string    `json:"status"`
	AddedAt       time.Time `json:"added_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ExchangeRequestView struct {
	ID                uuid.UUID `json:"id"`
	RequesterID       uuid.UUID `json:"requester_id"`
	RequesterUsername string    `json:"requester_username"`
	OwnerID           uuid.UUID `json:"owner_id"`
	OwnerUsername     string    `json:"owner_username"`
	UserBookID        uuid.UUID `json:"user_book_id"`
	BookID            uuid.UUID `json:"book_id"`
	BookTitle         string    `json:"book_title"`
	RequesterName     string    `json:"requester_name"`
	RequesterEmail    string    `json:"requester_email"`
	PickupAddress     string    `json:"pickup_address"`
	ExchangeMode      string    `json:"exchange_mode"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
