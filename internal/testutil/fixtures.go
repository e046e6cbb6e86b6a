package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/utils"
)

// CreateTestUser creates a test user with a hashed password
func CreateTestUser(name, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// DefaultTestUser returns a default test user (regular user)
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("Test User", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("Admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestCategory creates a category row for tests
func CreateTestCategory(name string) *models.Category {
	return &models.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CreateTestProduct creates a product row for tests
func CreateTestProduct(title string, categoryID *uuid.UUID) *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Title:       title,
		Description: "A test product",
		CategoryID:  categoryID,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// CreateTestPendingContact creates an unverified pending contact request
func CreateTestPendingContact(email, token string) *models.PendingContactRequest {
	return &models.PendingContactRequest{
		ID:         uuid.New(),
		Name:       "Test Sender",
		Email:      email,
		Message:    "Hello from a test",
		Token:      token,
		IsVerified: false,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}
