package repository

import (
	"context"
	"errors"

	"subletswipe/internal/domain/entity"
)

// ErrInvalidCredentials is returned when the server rejects a login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthRepository covers the signup/login endpoints.
type AuthRepository interface {
	// SignUp registers a new account and returns its server-assigned id.
	SignUp(ctx context.Context, user *entity.User, password string) (int, error)

	// Login exchanges credentials for the user document.
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// ErrNoSession is returned when no user is signed in on this device.
var ErrNoSession = errors.New("no signed-in user")

// SessionStore persists the signed-in user on the device across launches.
type SessionStore interface {
	// Save stores the user document, replacing any previous one.
	Save(ctx context.Context, user *entity.User) error

	// Load returns the stored user, or ErrNoSession when signed out.
	Load(ctx context.Context) (*entity.User, error)

	// Clear removes the stored user. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
