package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "john",
		LastName:  "DOE",
		Email:     "John.Doe@Example.COM",
		Password:  "Password123!",
	}

	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "john.doe@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "John", user.FirstName)
			assert.Equal(t, "Doe", user.LastName)
			assert.Equal(t, "john.doe@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(userID).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, "John Doe", output.Name)
	assert.Equal(t, "john.doe@example.com", output.Email)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "taken@example.com",
		Password:  "Password123!",
	}

	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	// No Hash or Create expectations: a known email must short-circuit
	// before any password work happens.
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(existing, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_DuplicateRace(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "taken@example.com",
		Password:  "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	// A concurrent registration wins the unique constraint race
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "john@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "John@Example.com",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "john@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.ID).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user.ID, output.ID)
	assert.Equal(t, "John Doe", output.Name)
	assert.Equal(t, "john@example.com", output.Email)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "john@example.com",
		Password: "wrong password",
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "john@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	// The dummy compare still runs so timing matches the known-email path
	fx.hasher.EXPECT().Check(input.Password, mock.AnythingOfType("string")).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_GetMe_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        uuid.New(),
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetMe(ctx, user.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user.ID, output.ID)
	assert.Equal(t, "john@example.com", output.Email)
	assert.Equal(t, "Logged in as John", output.Message)
}

func TestAccountService_GetMe_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetMe(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_ListUsers(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	now := time.Now()
	users := []*entity.User{
		{ID: uuid.New(), FirstName: "John", LastName: "Doe", Email: "john@example.com", CreatedAt: now},
		{ID: uuid.New(), FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", CreatedAt: now.Add(time.Second)},
	}

	fx.userRepo.EXPECT().ListAll(ctx).Return(users, nil)

	output, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, output, 2)
	assert.Equal(t, "John Doe", output[0].Name)
	assert.Equal(t, "john@example.com", output[0].Email)
	assert.Equal(t, "Jane Roe", output[1].Name)
	assert.Equal(t, "jane@example.com", output[1].Email)
}

func TestAccountService_ListUsers_Empty(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ListAll(ctx).Return([]*entity.User{}, nil)

	output, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestAccountService_UpdateUser_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	firstName := "jane"
	email := "Jane.Roe@Example.COM"
	input := &usecase.UpdateUserInput{
		FirstName: &firstName,
		Email:     &email,
	}

	// Touched fields are normalized the same way registration does it
	expectedFirstName := "Jane"
	expectedEmail := "jane.roe@example.com"
	expectedUpdate := &repository.UserUpdate{
		FirstName: &expectedFirstName,
		Email:     &expectedEmail,
	}

	updated := &entity.User{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.roe@example.com",
	}

	fx.userRepo.EXPECT().UpdateByID(ctx, id, expectedUpdate).Return(updated, nil)

	output, err := fx.service.UpdateUser(ctx, id, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, id, output.ID)
	assert.Equal(t, "Jane", output.FirstName)
	assert.Equal(t, "Doe", output.LastName)
	assert.Equal(t, "jane.roe@example.com", output.Email)
}

func TestAccountService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().
		UpdateByID(ctx, id, mock.AnythingOfType("*repository.UserUpdate")).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.UpdateUser(ctx, id, &usecase.UpdateUserInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateUser_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	email := "taken@example.com"

	fx.userRepo.EXPECT().
		UpdateByID(ctx, id, mock.AnythingOfType("*repository.UserUpdate")).
		Return(nil, repository.ErrDuplicateEmail)

	output, err := fx.service.UpdateUser(ctx, id, &usecase.UpdateUserInput{Email: &email})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_DeleteUser_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().DeleteByID(ctx, id).Return(true, nil)

	output, err := fx.service.DeleteUser(ctx, id)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, fmt.Sprintf("Deleted %s", id), output.Message)
}

func TestAccountService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().DeleteByID(ctx, id).Return(false, nil)

	output, err := fx.service.DeleteUser(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_DeleteUser_RepositoryError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().DeleteByID(ctx, id).Return(false, errors.New("connection reset"))

	output, err := fx.service.DeleteUser(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
