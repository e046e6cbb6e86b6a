package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// CategoryInput is the validated field set for create and update. Categories
// carry no image of their own; their display image comes from the
// representative product.
type CategoryInput struct {
	Name      string
	ProductID *uuid.UUID
}

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	productRepo  *repository.ProductRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, productRepo *repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *CategoryService) List() ([]*models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		logger.Log.Error("Failed to list categories",
			zap.Error(err),
		)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch category",
			zap.String("category_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := s.validateInput(input, nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:        uuid.New(),
		Name:      input.Name,
		ProductID: input.ProductID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Log.Error("Failed to create category",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Category created",
		zap.String("category_id", category.ID.String()),
	)

	return s.Get(category.ID)
}

func (s *CategoryService) Update(id uuid.UUID, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input, &id); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.ProductID = input.ProductID

	if err := s.categoryRepo.Save(category); err != nil {
		logger.Log.Error("Failed to update category",
			zap.String("category_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Category updated",
		zap.String("category_id", id.String()),
	)

	return s.Get(id)
}

func (s *CategoryService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.categoryRepo.SoftDelete(id); err != nil {
		logger.Log.Error("Failed to delete category",
			zap.String("category_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Category deleted",
		zap.String("category_id", id.String()),
	)

	return nil
}

func (s *CategoryService) validateInput(input CategoryInput, ignoreID *uuid.UUID) error {
	verr := NewValidationError()

	if input.Name == "" {
		verr.Add("name", "name is required")
	}
	if len(input.Name) > 255 {
		verr.Add("name", "name must be at most 255 characters")
	}

	if input.Name != "" {
		existing, err := s.categoryRepo.GetByName(input.Name, ignoreID)
		if err != nil {
			return err
		}
		if existing != nil {
			verr.Add("name", "a category with this name already exists")
		}
	}

	if input.ProductID != nil {
		product, err := s.productRepo.GetByID(*input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			verr.Add("product_id", "the selected product does not exist")
		}
	}

	return verr.OrNil()
}
