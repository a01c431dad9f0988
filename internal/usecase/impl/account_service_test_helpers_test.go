package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
