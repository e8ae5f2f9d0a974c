package response

import (
	"bookloop/internal/usecase/queries"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID.String(),
		Username:  v.Username,
		Email:     v.Email,
		FullName:  v.FullName,
		CreatedAt: v.CreatedAt.Unix(),
	}
}
