package usecase

import (
	"context"

	"subletswipe/internal/domain/entity"
)

// SignUpInput defines the data required to register an account.
type SignUpInput struct {
	Email        string `json:"email" validate:"required,email"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Password     string `json:"password" validate:"required,min=8,max=128"`
	ProfilePhoto string `json:"profile_photo,omitempty" validate:"omitempty,url"`
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase covers authentication state: signup, login, the locally
// persisted signed-in user, and sign-out.
type AuthUsecase interface {
	// SignUp registers a new account and returns its id. The caller still
	// logs in afterwards; signup does not establish a session.
	SignUp(ctx context.Context, input *SignUpInput) (int, error)

	// Login exchanges credentials for the user document and persists it on
	// the device.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// CurrentUser returns the locally persisted signed-in user, or
	// repository.ErrNoSession when signed out.
	CurrentUser(ctx context.Context) (*entity.User, error)

	// SignOut clears the persisted user.
	SignOut(ctx context.Context) error
}
