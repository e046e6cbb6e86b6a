package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
)

type NewsHandler struct {
	newsService *service.NewsService
	blobs       storage.BlobStore
	production  bool
}

func NewNewsHandler(newsService *service.NewsService, blobs storage.BlobStore, production bool) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		blobs:       blobs,
		production:  production,
	}
}

// GET /api/v1/news
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.newsService.List(strings.TrimSpace(c.Query("keyword")), c.DefaultQuery("sort", "desc"))
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.NewsCollection(items, presigner(c, h.blobs)),
	})
}

// GET /api/v1/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	news, err := h.newsService.Get(id)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.News(news, presigner(c, h.blobs)),
	})
}

// POST /api/v1/news (multipart, bearer auth)
func (h *NewsHandler) Create(c *gin.Context) {
	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	news, err := h.newsService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": resource.News(news, presigner(c, h.blobs)),
	})
}

// PUT /api/v1/news/:id (multipart, bearer auth)
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	news, err := h.newsService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.News(news, presigner(c, h.blobs)),
	})
}

// DELETE /api/v1/news/:id (bearer auth)
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "News", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News deleted successfully.",
	})
}

func (h *NewsHandler) bindInput(c *gin.Context) (service.ArticleInput, func(), bool) {
	verr := service.NewValidationError()

	input := service.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Text:        c.PostForm("text"),
		Date:        c.PostForm("date"),
		IsActive:    formBool(verr, c, "is_active"),
	}

	upload, cleanup, err := formImage(c)
	if err != nil {
		verr.Add("image", "image upload is invalid")
	}
	input.Image = upload

	if verr.HasErrors() {
		respondError(c, verr, "News", h.production)
		return input, cleanup, false
	}
	return input, cleanup, true
}
