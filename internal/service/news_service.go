package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/storage"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

const newsImagePrefix = "news"

// DateLayout is the wire format for news and exhibition dates.
const DateLayout = "2006-01-02"

// ArticleInput is the shared validated field set for news and exhibitions.
type ArticleInput struct {
	Title       string
	Description string
	Text        string
	Date        string
	IsActive    *bool
	Image       *ImageUpload
}

type NewsService struct {
	newsRepo       *repository.NewsRepository
	blobs          storage.BlobStore
	placeholderKey string
}

func NewNewsService(newsRepo *repository.NewsRepository, blobs storage.BlobStore, placeholderKey string) *NewsService {
	return &NewsService{
		newsRepo:       newsRepo,
		blobs:          blobs,
		placeholderKey: placeholderKey,
	}
}

func (s *NewsService) List(keyword, sort string) ([]*models.News, error) {
	items, err := s.newsRepo.List(keyword, sort)
	if err != nil {
		logger.Log.Error("Failed to list news",
			zap.Error(err),
		)
		return nil, err
	}
	return items, nil
}

func (s *NewsService) Get(id uuid.UUID) (*models.News, error) {
	news, err := s.newsRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch news",
			zap.String("news_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}
	return news, nil
}

func (s *NewsService) Create(ctx context.Context, input ArticleInput) (*models.News, error) {
	date, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Text:        input.Text,
		Date:        date,
		IsActive:    true,
	}
	if input.IsActive != nil {
		news.IsActive = *input.IsActive
	}

	if input.Image != nil {
		key, err := storeImage(ctx, s.blobs, newsImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store news image",
				zap.Error(err),
			)
			return nil, err
		}
		news.Image = &key
	}

	if err := s.newsRepo.Create(news); err != nil {
		logger.Log.Error("Failed to create news",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("News created",
		zap.String("news_id", news.ID.String()),
	)

	return news, nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, input ArticleInput) (*models.News, error) {
	news, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	date, err := validateArticleInput(input)
	if err != nil {
		return nil, err
	}

	if input.Image != nil {
		deleteImage(ctx, s.blobs, s.placeholderKey, news.Image)

		key, err := storeImage(ctx, s.blobs, newsImagePrefix, input.Image)
		if err != nil {
			logger.Log.Error("Failed to store news image",
				zap.String("news_id", id.String()),
				zap.Error(err),
			)
			return nil, err
		}
		news.Image = &key
	}

	news.Title = input.Title
	news.Description = input.Description
	news.Text = input.Text
	news.Date = date
	if input.IsActive != nil {
		news.IsActive = *input.IsActive
	}

	if err := s.newsRepo.Save(news); err != nil {
		logger.Log.Error("Failed to update news",
			zap.String("news_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("News updated",
		zap.String("news_id", id.String()),
	)

	return news, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	news, err := s.Get(id)
	if err != nil {
		return err
	}

	deleteImage(ctx, s.blobs, s.placeholderKey, news.Image)

	if err := s.newsRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete news",
			zap.String("news_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("News deleted",
		zap.String("news_id", id.String()),
	)

	return nil
}

func validateArticleInput(input ArticleInput) (time.Time, error) {
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
	if input.Text == "" {
		verr.Add("text", "text is required")
	}

	var date time.Time
	if input.Date == "" {
		verr.Add("date", "date is required")
	} else {
		parsed, err := time.Parse(DateLayout, input.Date)
		if err != nil {
			verr.Add("date", "date must be formatted as YYYY-MM-DD")
		} else {
			date = parsed
		}
	}

	return date, verr.OrNil()
}
