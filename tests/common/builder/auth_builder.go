//go:build unit || e2e

package builder

import (
	reqdto "machine-rental/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Role     string
	Name     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "client@example.com",
		Password: "password123",
		Role:     "client",
		Name:     "Test Client",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
		Name:     a.Name,
	}
}
