// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address. Callers pass
// the normalized (lowercase) form; the column stores the same.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity. The unique index on email turns a
// concurrent duplicate registration into ErrDuplicateEmail here.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Write back the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateByID merges only the provided fields into an existing record and
// returns the updated user. Absent ids yield ErrUserNotFound.
func (repo *userRepository) UpdateByID(ctx context.Context, id uuid.UUID, update *repository.UserUpdate) (*entity.User, error) {
	columns := map[string]any{}
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", id).
			Updates(columns)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return nil, repository.ErrDuplicateEmail
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrUserNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// DeleteByID removes a record and reports whether one was removed.
func (repo *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// ListAll returns every user ordered by creation time for a stable listing.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel

	err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
