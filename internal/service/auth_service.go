package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/utils"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or revoked token")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

type AuthService struct {
	userRepo  *repository.UserRepository
	tokenRepo *repository.TokenRepository
}

func NewAuthService(userRepo *repository.UserRepository, tokenRepo *repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func (s *AuthService) Register(name, email, password, passwordConfirmation string) (*models.User, string, error) {
	start := time.Now()

	logger.Log.Debug("Processing user registration",
		zap.String("email", email),
	)

	// 1. Validate input
	if err := validateRegisterInput(name, email, password, passwordConfirmation); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	// 2. Check if email already exists
	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, "", ErrEmailAlreadyExists
	}

	// 3. Hash password (Argon2id)
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, "", err
	}

	// 4. Create user
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	// 5. Issue opaque bearer token
	token, err := s.issueToken(user)
	if err != nil {
		logger.Log.Error("Failed to issue token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	start := time.Now()

	logger.Log.Debug("Processing user login",
		zap.String("email", email),
	)

	// 1. Get user by email
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 2. Verify password
	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("email", email),
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 3. Issue opaque bearer token (replaces the previous one in the slot)
	token, err := s.issueToken(user)
	if err != nil {
		logger.Log.Error("Failed to issue token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

// Authenticate resolves a bearer token to its owning user. Unknown or revoked
// tokens fail with ErrInvalidToken.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	row, err := s.tokenRepo.GetByHash(utils.HashToken(token))
	if err != nil {
		logger.Log.Error("Failed to look up token",
			zap.Error(err),
		)
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidToken
	}
	return &row.User, nil
}

// Logout revokes the presented bearer token. The token is opaque and
// server-side, so deleting the row revokes it immediately.
func (s *AuthService) Logout(token string) error {
	if err := s.tokenRepo.DeleteByHash(utils.HashToken(token)); err != nil {
		logger.Log.Error("Failed to revoke token",
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("User logged out successfully")
	return nil
}

// issueToken replaces the user's token in the shared slot and returns the
// plaintext. Only the SHA-256 digest is persisted.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	if err := s.tokenRepo.DeleteSlot(user.ID, models.TokenSlotAPI); err != nil {
		return "", err
	}

	plaintext, err := utils.GenerateToken()
	if err != nil {
		return "", err
	}

	row := &models.AccessToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      models.TokenSlotAPI,
		TokenHash: utils.HashToken(plaintext),
	}
	if err := s.tokenRepo.Create(row); err != nil {
		return "", err
	}

	return plaintext, nil
}

func validateRegisterInput(name, email, password, passwordConfirmation string) error {
	verr := NewValidationError()

	if name == "" {
		verr.Add("name", "name is required")
	}
	if len(name) > 255 {
		verr.Add("name", "name must be at most 255 characters")
	}

	if !emailRegex.MatchString(email) {
		verr.Add("email", "invalid email format")
	}
	if len(email) > 255 {
		verr.Add("email", "email must be at most 255 characters")
	}

	if len(password) < 8 {
		verr.Add("password", "password must be at least 8 characters")
	}
	if len(password) > 128 {
		verr.Add("password", "password must be at most 128 characters")
	}
	if password != passwordConfirmation {
		verr.Add("password", "password confirmation does not match")
	}

	return verr.OrNil()
}
