package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/utils"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// UserInput is the validated field set for user create and update. Password
// is required on create; on update an empty password leaves the stored hash
// untouched.
type UserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Biography            *string
}

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List() ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		logger.Log.Error("Failed to list users",
			zap.Error(err),
		)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) Create(input UserInput) (*models.User, error) {
	if err := s.validateInput(input, nil, true); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Biography:    input.Biography,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User created",
		zap.String("user_id", user.ID.String()),
	)

	return user, nil
}

func (s *UserService) Update(id uuid.UUID, input UserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input, &id, input.Password != ""); err != nil {
		return nil, err
	}

	if input.Password != "" {
		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			logger.Log.Error("Failed to hash password",
				zap.Error(err),
			)
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Biography = input.Biography

	if err := s.userRepo.Save(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User updated",
		zap.String("user_id", id.String()),
	)

	return user, nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.userRepo.SoftDelete(id); err != nil {
		logger.Log.Error("Failed to delete user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("User deleted",
		zap.String("user_id", id.String()),
	)

	return nil
}

func (s *UserService) validateInput(input UserInput, ignoreID *uuid.UUID, passwordRequired bool) error {
	verr := NewValidationError()

	if input.Name == "" {
		verr.Add("name", "name is required")
	}
	if len(input.Name) > 255 {
		verr.Add("name", "name must be at most 255 characters")
	}

	if input.Email == "" {
		verr.Add("email", "email is required")
	} else if !emailRegex.MatchString(input.Email) {
		verr.Add("email", "invalid email format")
	}
	if len(input.Email) > 255 {
		verr.Add("email", "email must be at most 255 characters")
	}

	if input.Email != "" {
		existing, err := s.userRepo.GetByEmail(input.Email)
		if err != nil {
			return err
		}
		if existing != nil && (ignoreID == nil || existing.ID != *ignoreID) {
			verr.Add("email", "this email is already registered")
		}
	}

	if passwordRequired {
		if len(input.Password) < 8 {
			verr.Add("password", "password must be at least 8 characters")
		}
		if len(input.Password) > 128 {
			verr.Add("password", "password must be at most 128 characters")
		}
		if input.Password != input.PasswordConfirmation {
			verr.Add("password", "password confirmation does not match")
		}
	}

	return verr.OrNil()
}
