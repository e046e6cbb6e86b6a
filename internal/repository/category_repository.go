package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Product").Where("id = ?", id).First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

// GetByName finds a category by name, optionally ignoring one id (the record
// being updated) so uniqueness checks don't trip over themselves.
func (r *CategoryRepository) GetByName(name string, ignoreID *uuid.UUID) (*models.Category, error) {
	query := r.db.Where("name = ?", name)
	if ignoreID != nil {
		query = query.Where("id <> ?", *ignoreID)
	}

	var category models.Category
	err := query.First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepository) List() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Preload("Product").Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}

// SoftDelete marks a category as deleted (sets DeletedAt)
func (r *CategoryRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}
