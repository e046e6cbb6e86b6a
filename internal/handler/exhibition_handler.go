package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
)

type ExhibitionHandler struct {
	exhibitionService *service.ExhibitionService
	blobs             storage.BlobStore
	production        bool
}

func NewExhibitionHandler(exhibitionService *service.ExhibitionService, blobs storage.BlobStore, production bool) *ExhibitionHandler {
	return &ExhibitionHandler{
		exhibitionService: exhibitionService,
		blobs:             blobs,
		production:        production,
	}
}

// GET /api/v1/exhibitions
func (h *ExhibitionHandler) List(c *gin.Context) {
	items, err := h.exhibitionService.List(strings.TrimSpace(c.Query("keyword")), c.DefaultQuery("sort", "desc"))
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.ExhibitionCollection(items, presigner(c, h.blobs)),
	})
}

// GET /api/v1/exhibitions/:id
func (h *ExhibitionHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	exhibition, err := h.exhibitionService.Get(id)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Exhibition(exhibition, presigner(c, h.blobs)),
	})
}

// POST /api/v1/exhibitions (multipart, bearer auth)
func (h *ExhibitionHandler) Create(c *gin.Context) {
	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	exhibition, err := h.exhibitionService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": resource.Exhibition(exhibition, presigner(c, h.blobs)),
	})
}

// PUT /api/v1/exhibitions/:id (multipart, bearer auth)
func (h *ExhibitionHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	exhibition, err := h.exhibitionService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Exhibition(exhibition, presigner(c, h.blobs)),
	})
}

// DELETE /api/v1/exhibitions/:id (bearer auth)
func (h *ExhibitionHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	if err := h.exhibitionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Exhibition", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exhibition deleted successfully.",
	})
}

func (h *ExhibitionHandler) bindInput(c *gin.Context) (service.ArticleInput, func(), bool) {
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
		respondError(c, verr, "Exhibition", h.production)
		return input, cleanup, false
	}
	return input, cleanup, true
}
