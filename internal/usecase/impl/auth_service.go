package impl

import (
	"context"
	"log/slog"

	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"
	"subletswipe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	auth     repository.AuthRepository
	sessions repository.SessionStore
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	auth repository.AuthRepository,
	sessions repository.SessionStore,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		auth:     auth,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// SignUp registers a new account and returns its id.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (int, error) {
	if err := srv.validate.Struct(input); err != nil {
		return 0, errors.Wrap(err, "validate signup input")
	}

	user := &entity.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		ProfilePhoto: input.ProfilePhoto,
	}

	id, err := srv.auth.SignUp(ctx, user, input.Password)
	if err != nil {
		return 0, errors.Wrap(err, "sign up")
	}
	srv.logger.Info("account created", slog.Int("userID", id))

	return id, nil
}

// Login exchanges credentials for the user document and persists it on the
// device. A failed save is logged but does not fail the login; the session
// just will not survive a restart.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate login input")
	}

	user, err := srv.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := srv.sessions.Save(ctx, user); err != nil {
		srv.logger.Warn("failed to persist session",
			slog.Int("userID", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// CurrentUser returns the locally persisted signed-in user.
func (srv *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, repository.ErrNoSession
		}

		return nil, errors.Wrap(err, "load session")
	}

	return user, nil
}

// SignOut clears the persisted user.
func (srv *authService) SignOut(ctx context.Context) error {
	if err := srv.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear session")
	}
	srv.logger.Info("signed out")

	return nil
}
