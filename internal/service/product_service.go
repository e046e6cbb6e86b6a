package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/storage"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

const productImagePrefix = "products"

// ProductInput is the validated field set for create and update. Image is
// only applied when a new upload is present; updates without a file leave the
// stored image untouched.
type ProductInput struct {
	Title       string
	Description string
	Price       *float64
	CategoryID  *uuid.UUID
	IsActive    *bool
	Image       *ImageUpload
}

// ListOptions narrows entity listings.
type ListOptions struct {
	Keyword    string
	CategoryID *uuid.UUID
	Sort       string
}

type ProductService struct {
	productRepo    *repository.ProductRepository
	categoryRepo   *repository.CategoryRepository
	blobs          storage.BlobStore
	placeholderKey string
}

func NewProductService(
	productRepo *repository.ProductRepository,
	categoryRepo *repository.CategoryRepository,
	blobs storage.BlobStore,
	placeholderKey string,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		blobs:          blobs,
		placeholderKey: placeholderKey,
	}
}

func (s *ProductService) List(opts ListOptions) ([]*models.Product, error) {
	products, err := s.productRepo.List(repository.ProductFilter{
		Keyword:    opts.Keyword,
		CategoryID: opts.CategoryID,
		Sort:       opts.Sort,
	})
	if err != nil {
		logger.Log.Error("Failed to list products",
			zap.Error(err),
		)
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch product",
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if input.Image != nil {
		key, err := storeImage(ctx, s.blobs, productImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store product image",
				zap.Error(err),
			)
			return nil, err
		}
		product.Image = &key
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Log.Error("Failed to create product",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Product created",
		zap.String("product_id", product.ID.String()),
	)

	return s.Get(product.ID)
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if input.Image != nil {
		// Replace: drop the previous blob first, placeholder keys excepted.
		deleteImage(ctx, s.blobs, s.placeholderKey, product.Image)

		key, err := storeImage(ctx, s.blobs, productImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store product image",
				zap.String("product_id", id.String()),
				zap.Error(err),
			)
			return nil, err
		}
		product.Image = &key
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Save(product); err != nil {
		logger.Log.Error("Failed to update product",
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Product updated",
		zap.String("product_id", id.String()),
	)

	return s.Get(id)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	deleteImage(ctx, s.blobs, s.placeholderKey, product.Image)

	if err := s.productRepo.SoftDelete(id); err != nil {
		logger.Log.Error("Failed to delete product",
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Product deleted",
		zap.String("product_id", id.String()),
	)

	return nil
}

func (s *ProductService) validateInput(input ProductInput) error {
	verr := NewValidationError()

	if input.Title == "" {
		verr.Add("title", "title is required")
	}
	if len(input.Title) > 255 {
		verr.Add("title", "title must be at most 255 characters")
	}
	if input.Description == "" {
		verr.Add("description", "description is required")
	}
	if input.Price != nil && *input.Price < 0 {
		verr.Add("price", "price must not be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			verr.Add("category_id", "the selected category does not exist")
		}
	}

	return verr.OrNil()
}
