package request

import (
	"bookloop/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCopyRequest struct {
	BookID    uuid.UUID `json:"book_id" binding:"required"`
	Condition string    `json:"condition" binding:"max=50"`
}

func (r *AddCopyRequest) ToInput() commands.AddCopyInput {
	return commands.AddCopyInput{
		BookID:    r.BookID,
		Condition: r.Condition,
	}
}
