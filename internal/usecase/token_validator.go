package usecase

import (
	"machine-rental/internal/domain/user"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware needs from the auth usecase.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

var _ TokenValidator = (*AuthUseCase)(nil)
