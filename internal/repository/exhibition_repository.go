package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

type ExhibitionRepository struct {
	db *gorm.DB
}

func NewExhibitionRepository(db *gorm.DB) *ExhibitionRepository {
	return &ExhibitionRepository{db: db}
}

func (r *ExhibitionRepository) Create(exhibition *models.Exhibition) error {
	return r.db.Create(exhibition).Error
}

func (r *ExhibitionRepository) GetByID(id uuid.UUID) (*models.Exhibition, error) {
	var exhibition models.Exhibition
	err := r.db.Where("id = ?", id).First(&exhibition).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &exhibition, nil
}

func (r *ExhibitionRepository) List(keyword, sort string) ([]*models.Exhibition, error) {
	query := r.db.Session(&gorm.Session{})

	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	order := "created_at DESC"
	if sort == "asc" {
		order = "created_at ASC"
	}

	var items []*models.Exhibition
	if err := query.Order(order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ExhibitionRepository) Save(exhibition *models.Exhibition) error {
	return r.db.Save(exhibition).Error
}

// Delete removes the row permanently; exhibitions have no soft-delete column.
func (r *ExhibitionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Exhibition{}, "id = ?", id).Error
}
