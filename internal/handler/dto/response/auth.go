package response

import (
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		Name:     view.Name,
		IsActive: view.IsActive,
	}
}
