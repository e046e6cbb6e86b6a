package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Transaction runs fn against a repository bound to a database transaction.
// The verify flow needs mark-verified and promote to commit or fail as one
// unit.
func (r *ContactRepository) Transaction(fn func(tx *ContactRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ContactRepository{db: tx})
	})
}

func (r *ContactRepository) CreatePending(pending *models.PendingContactRequest) error {
	return r.db.Create(pending).Error
}

func (r *ContactRepository) GetPendingByToken(token string) (*models.PendingContactRequest, error) {
	var pending models.PendingContactRequest
	err := r.db.Where("token = ?", token).First(&pending).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pending, nil
}

// MarkVerified flips is_verified with a conditional update and reports how
// many rows changed. Two concurrent verifies of the same token race on this
// update; only the one that affects a row may promote.
func (r *ContactRepository) MarkVerified(token string) (int64, error) {
	result := r.db.Model(&models.PendingContactRequest{}).
		Where("token = ? AND is_verified = ?", token, false).
		Update("is_verified", true)
	return result.RowsAffected, result.Error
}

func (r *ContactRepository) CreateContact(contact *models.ContactRequest) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepository) CountPendingByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PendingContactRequest{}).Where("email = ?", email).Count(&count).Error
	return count, err
}
