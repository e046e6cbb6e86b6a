package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/testutil"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

type NewsServiceIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	blobs  *testutil.FakeBlobStore
	svc    *service.NewsService
}

func (s *NewsServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
}

func (s *NewsServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *NewsServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.blobs = testutil.NewFakeBlobStore()
	newsRepo := repository.NewNewsRepository(s.testDB.DB)
	s.svc = service.NewNewsService(newsRepo, s.blobs, "news/placeholder.webp")
}

func (s *NewsServiceIntegrationTestSuite) validInput() service.ArticleInput {
	return service.ArticleInput{
		Title:       "Spring opening",
		Description: "The gallery reopens for the season",
		Text:        "We are happy to welcome visitors again starting next week.",
		Date:        "2026-04-01",
	}
}

func (s *NewsServiceIntegrationTestSuite) TestCreateParsesDate() {
	news, err := s.svc.Create(context.Background(), s.validInput())
	assert.NoError(s.T(), err)

	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.True(s.T(), news.Date.Equal(want))
	assert.True(s.T(), news.IsActive)
}

func (s *NewsServiceIntegrationTestSuite) TestCreateRejectsBadDate() {
	input := s.validInput()
	input.Date = "01.04.2026"

	_, err := s.svc.Create(context.Background(), input)

	var verr *service.ValidationError
	assert.ErrorAs(s.T(), err, &verr)
	assert.Contains(s.T(), verr.Fields, "date")

	var count int64
	s.testDB.DB.Model(&models.News{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func (s *NewsServiceIntegrationTestSuite) TestCreateRequiresContent() {
	_, err := s.svc.Create(context.Background(), service.ArticleInput{})

	var verr *service.ValidationError
	assert.ErrorAs(s.T(), err, &verr)
	assert.Contains(s.T(), verr.Fields, "title")
	assert.Contains(s.T(), verr.Fields, "description")
	assert.Contains(s.T(), verr.Fields, "text")
	assert.Contains(s.T(), verr.Fields, "date")
}

func (s *NewsServiceIntegrationTestSuite) TestUpdateKeepsImageWithoutNewUpload() {
	input := s.validInput()
	input.Image = &service.ImageUpload{
		Reader:      testutil.ImageBody(),
		Size:        8,
		ContentType: "image/png",
		Filename:    "opening.png",
	}
	created, err := s.svc.Create(context.Background(), input)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), created.Image)
	originalKey := *created.Image

	update := s.validInput()
	update.Title = "Spring opening, extended"
	updated, err := s.svc.Update(context.Background(), created.ID, update)
	assert.NoError(s.T(), err)

	assert.Equal(s.T(), "Spring opening, extended", updated.Title)
	assert.NotNil(s.T(), updated.Image)
	assert.Equal(s.T(), originalKey, *updated.Image)
	assert.Empty(s.T(), s.blobs.Deleted)
}

func (s *NewsServiceIntegrationTestSuite) TestDeleteIsPermanent() {
	created, err := s.svc.Create(context.Background(), s.validInput())
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.svc.Delete(context.Background(), created.ID))

	_, err = s.svc.Get(created.ID)
	assert.ErrorIs(s.T(), err, service.ErrNotFound)

	// Hard delete, no soft-deleted leftovers
	var count int64
	s.testDB.DB.Unscoped().Model(&models.News{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func TestNewsServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceIntegrationTestSuite))
}
