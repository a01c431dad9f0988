// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"
	"accounts/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyHash is a valid bcrypt hash compared against when a login email is
// unknown, so the response time does not reveal whether the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService implements the AccountUsecase interface.
// It holds no mutable state across calls; every operation is a function of
// its inputs plus repository state at call time.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process: normalize,
// check for an existing email, hash the password, create the record and
// issue a token. The duplicate check short-circuits before any hashing.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    util.Capitalize(input.FirstName),
		LastName:     util.Capitalize(input.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration may win the unique constraint race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		ID:    newUser.ID,
		Name:  newUser.FullName(),
		Email: newUser.Email,
		Token: token,
	}, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password collapse into the same ErrInvalidCredentials; a bcrypt
// compare runs on both paths to keep their timing alike.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		ID:    user.ID,
		Name:  user.FullName(),
		Email: user.Email,
		Token: token,
	}, nil
}

// GetMe returns the calling user's own account data. The user id comes from
// a previously verified token, supplied by the delivery layer.
func (srv *accountService) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.MeOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.MeOutput{
		ID:      user.ID,
		Email:   user.Email,
		Message: fmt.Sprintf("Logged in as %s", user.FirstName),
	}, nil
}

// ListUsers returns name and email for every user, in repository iteration order.
func (srv *accountService) ListUsers(ctx context.Context) ([]usecase.UserSummary, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, usecase.UserSummary{
			Name:  user.FullName(),
			Email: user.Email,
		})
	}

	return summaries, nil
}

// UpdateUser applies a partial update. Touched name and email fields go
// through the same normalization as registration.
func (srv *accountService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id))

	update := &repository.UserUpdate{}
	if input.FirstName != nil {
		firstName := util.Capitalize(*input.FirstName)
		update.FirstName = &firstName
	}
	if input.LastName != nil {
		lastName := util.Capitalize(*input.LastName)
		update.LastName = &lastName
	}
	if input.Email != nil {
		email := util.NormalizeEmail(*input.Email)
		update.Email = &email
	}

	user, err := srv.userRepo.UpdateByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update failed")
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("update failed")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return &usecase.UserOutput{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

// DeleteUser removes an account by id.
func (srv *accountService) DeleteUser(ctx context.Context, id uuid.UUID) (*usecase.DeleteOutput, error) {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	deleted, err := srv.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}
	if !deleted {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("delete failed")
	}

	return &usecase.DeleteOutput{
		Message: fmt.Sprintf("Deleted %s", id),
	}, nil
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
