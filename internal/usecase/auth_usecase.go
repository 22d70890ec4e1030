package usecase

import (
	"context"

	"mawadda/internal/domain/entity"
)

// LoginInput defines the data required for a staff member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Person       *entity.Person
}

// AuthUsecase defines the staff authentication operations.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
