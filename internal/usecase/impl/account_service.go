// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "signon/internal/delivery/context"
	"signon/internal/domain/entity"
	domainerrors "signon/internal/domain/errors"
	"signon/internal/domain/repository"
	"signon/internal/domain/service"
	"signon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new credential record under the uniqueness invariant.
// The lookup is only a pre-check for the common case; the store's unique key
// on the username remains the authoritative guard, so a duplicate surfacing
// from the write step is reported exactly like one caught here.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("userName", input.UserName))

	_, err := srv.userRepo.FindByUserName(ctx, input.UserName)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, username taken", slog.String("userName", input.UserName))

		return nil, domainerrors.ErrDuplicateUser.WrapMessage("signup pre-check found existing user")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Signup lookup failed", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during signup")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	newUser := &entity.User{
		UserName:       input.UserName,
		PasswordHash:   hashedPassword,
		EmailAddresses: input.EmailAddresses,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Signup create failed", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{
		UserName:       newUser.UserName,
		EmailAddresses: newUser.EmailAddresses,
	}, nil
}

// Login verifies a claimed credential against the stored hash. The unknown-user
// and wrong-password branches return the same fault so callers cannot probe
// which usernames are registered. No persisted state changes on any branch.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("userName", input.UserName))

	user, err := srv.userRepo.FindByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.log(ctx).Error("Login lookup failed", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{UserName: user.UserName}, nil
}
