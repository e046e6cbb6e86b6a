package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

func (r *NewsRepository) GetByID(id uuid.UUID) (*models.News, error) {
	var news models.News
	err := r.db.Where("id = ?", id).First(&news).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &news, nil
}

func (r *NewsRepository) List(keyword, sort string) ([]*models.News, error) {
	query := r.db.Session(&gorm.Session{})

	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	order := "created_at DESC"
	if sort == "asc" {
		order = "created_at ASC"
	}

	var items []*models.News
	if err := query.Order(order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NewsRepository) Save(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete removes the row permanently; news has no soft-delete column.
func (r *NewsRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.News{}, "id = ?", id).Error
}
