package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// GetByHash resolves a token digest to its row with the owning user loaded.
func (r *TokenRepository) GetByHash(hash string) (*models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.Preload("User").Where("token_hash = ?", hash).First(&token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &token, nil
}

// DeleteSlot revokes every token a user holds under the given slot name.
// Login calls this before issuing so the slot is reused, not accumulated.
func (r *TokenRepository) DeleteSlot(userID uuid.UUID, name string) error {
	return r.db.Where("user_id = ? AND name = ?", userID, name).Delete(&models.AccessToken{}).Error
}

func (r *TokenRepository) DeleteByHash(hash string) error {
	return r.db.Where("token_hash = ?", hash).Delete(&models.AccessToken{}).Error
}
