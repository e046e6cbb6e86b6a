package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	blobs           storage.BlobStore
	production      bool
}

func NewCategoryHandler(categoryService *service.CategoryService, blobs storage.BlobStore, production bool) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		blobs:           blobs,
		production:      production,
	}
}

type CategoryRequest struct {
	Name      string     `json:"name"`
	ProductID *uuid.UUID `json:"product_id"`
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.CategoryCollection(categories, presigner(c, h.blobs)),
	})
}

// GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Category(category, presigner(c, h.blobs)),
	})
}

// POST /api/v1/categories (bearer auth)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed.",
			"errors":  gin.H{"body": []string{"invalid request body"}},
		})
		return
	}

	category, err := h.categoryService.Create(service.CategoryInput{
		Name:      req.Name,
		ProductID: req.ProductID,
	})
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": resource.Category(category, presigner(c, h.blobs)),
	})
}

// PUT /api/v1/categories/:id (bearer auth)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed.",
			"errors":  gin.H{"body": []string{"invalid request body"}},
		})
		return
	}

	category, err := h.categoryService.Update(id, service.CategoryInput{
		Name:      req.Name,
		ProductID: req.ProductID,
	})
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Category(category, presigner(c, h.blobs)),
	})
}

// DELETE /api/v1/categories/:id (bearer auth)
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		respondError(c, err, "Category", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully.",
	})
}
