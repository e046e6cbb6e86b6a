package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunstnord/gallery-api/internal/models"
)

// ProductFilter narrows and orders product listings.
type ProductFilter struct {
	Keyword    string
	CategoryID *uuid.UUID
	// Sort orders by creation time, "asc" or "desc". Anything else keeps the
	// default "desc".
	Sort string
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) List(filter ProductFilter) ([]*models.Product, error) {
	query := r.db.Preload("Category")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	sort := "created_at DESC"
	if filter.Sort == "asc" {
		sort = "created_at ASC"
	}

	var products []*models.Product
	if err := query.Order(sort).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// SoftDelete marks a product as deleted (sets DeletedAt)
func (r *ProductRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}
