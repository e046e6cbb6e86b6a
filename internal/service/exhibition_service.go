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

const exhibitionImagePrefix = "exhibitions"

type ExhibitionService struct {
	exhibitionRepo *repository.ExhibitionRepository
	blobs          storage.BlobStore
	placeholderKey string
}

func NewExhibitionService(exhibitionRepo *repository.ExhibitionRepository, blobs storage.BlobStore, placeholderKey string) *ExhibitionService {
	return &ExhibitionService{
		exhibitionRepo: exhibitionRepo,
		blobs:          blobs,
		placeholderKey: placeholderKey,
	}
}

func (s *ExhibitionService) List(keyword, sort string) ([]*models.Exhibition, error) {
	items, err := s.exhibitionRepo.List(keyword, sort)
	if err != nil {
		logger.Log.Error("Failed to list exhibitions",
			zap.Error(err),
		)
		return nil, err
	}
	return items, nil
}

func (s *ExhibitionService) Get(id uuid.UUID) (*models.Exhibition, error) {
	exhibition, err := s.exhibitionRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch exhibition",
			zap.String("exhibition_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if exhibition == nil {
		return nil, ErrNotFound
	}
	return exhibition, nil
}

func (s *ExhibitionService) Create(ctx context.Context, input ArticleInput) (*models.Exhibition, error) {
	date, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	exhibition := &models.Exhibition{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Text:        input.Text,
		Date:        date,
		IsActive:    true,
	}
	if input.IsActive != nil {
		exhibition.IsActive = *input.IsActive
	}

	if input.Image != nil {
		key, err := storeImage(ctx, s.blobs, exhibitionImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store exhibition image",
				zap.Error(err),
			)
			return nil, err
		}
		exhibition.Image = &key
	}

	if err := s.exhibitionRepo.Create(exhibition); err != nil {
		logger.Log.Error("Failed to create exhibition",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Exhibition created",
		zap.String("exhibition_id", exhibition.ID.String()),
	)

	return exhibition, nil
}

func (s *ExhibitionService) Update(ctx context.Context, id uuid.UUID, input ArticleInput) (*models.Exhibition, error) {
	exhibition, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	date, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	if input.Image != nil {
		deleteImage(ctx, s.blobs, s.placeholderKey, exhibition.Image)

		key, err := storeImage(ctx, s.blobs, exhibitionImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store exhibition image",
				zap.String("exhibition_id", id.String()),
				zap.Error(err),
			)
			return nil, err
		}
		exhibition.Image = &key
	}

	exhibition.Title = input.Title
	exhibition.Description = input.Description
	exhibition.Text = input.Text
	exhibition.Date = date
	if input.IsActive != nil {
		exhibition.IsActive = *input.IsActive
	}

	if err := s.exhibitionRepo.Save(exhibition); err != nil {
		logger.Log.Error("Failed to update exhibition",
			zap.String("exhibition_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Exhibition updated",
		zap.String("exhibition_id", id.String()),
	)

	return exhibition, nil
}

func (s *ExhibitionService) Delete(ctx context.Context, id uuid.UUID) error {
	exhibition, err := s.Get(id)
	if err != nil {
		return err
	}

	deleteImage(ctx, s.blobs, s.placeholderKey, exhibition.Image)

	if err := s.exhibitionRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete exhibition",
			zap.String("exhibition_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Exhibition deleted",
		zap.String("exhibition_id", id.String()),
	)

	return nil
}
