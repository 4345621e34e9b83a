package api

import (
	"context"
	"log/slog"
	"net/http"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
)

type authRepository struct {
	client *Client
	logger *slog.Logger
}

// NewAuthRepository creates the signup/login binding.
func NewAuthRepository(client *Client, logger *slog.Logger) repository.AuthRepository {
	return &authRepository{client: client, logger: logger}
}

// SignUp registers a new account and returns its server-assigned id.
func (r *authRepository) SignUp(ctx context.Context, user *entity.User, password string) (int, error) {
	body := struct {
		Email        string `json:"email"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Password     string `json:"password"`
		ProfilePhoto string `json:"profile_photo,omitempty"`
	}{
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Password:     password,
		ProfilePhoto: user.ProfilePhoto,
	}

	var out struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := r.client.Post(ctx, "/signup", body, &out); err != nil {
		return 0, err
	}

	return out.ID, nil
}

// Login exchanges credentials for the user document. A 401 maps to the
// credentials sentinel so callers can show the usual message.
func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var user entity.User
	if err := r.client.Post(ctx, "/login", body, &user); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return nil, repository.ErrInvalidCredentials
		}

		return nil, err
	}

	return &user, nil
}
