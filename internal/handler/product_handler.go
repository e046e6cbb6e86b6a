package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
)

type ProductHandler struct {
	productService *service.ProductService
	blobs          storage.BlobStore
	production     bool
}

func NewProductHandler(productService *service.ProductService, blobs storage.BlobStore, production bool) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		blobs:          blobs,
		production:     production,
	}
}

// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	opts := service.ListOptions{
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		CategoryID: queryUUID(c, "category"),
		Sort:       c.DefaultQuery("sort", "desc"),
	}

	products, err := h.productService.List(opts)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.ProductCollection(products, presigner(c, h.blobs)),
	})
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Product(product, presigner(c, h.blobs)),
	})
}

// POST /api/v1/products (multipart, bearer auth)
func (h *ProductHandler) Create(c *gin.Context) {
	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": resource.Product(product, presigner(c, h.blobs)),
	})
}

// PUT /api/v1/products/:id (multipart, bearer auth)
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	input, cleanup, ok := h.bindInput(c)
	if cleanup != nil {
		defer cleanup()
	}
	if !ok {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.Product(product, presigner(c, h.blobs)),
	})
}

// DELETE /api/v1/products/:id (bearer auth)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Product", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully.",
	})
}

// bindInput decodes the multipart form. The returned cleanup closes the
// uploaded file and must be deferred by the caller after the service has
// streamed it.
func (h *ProductHandler) bindInput(c *gin.Context) (service.ProductInput, func(), bool) {
	verr := service.NewValidationError()

	input := service.ProductInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       formFloat(verr, c, "price"),
		CategoryID:  formUUID(verr, c, "category_id"),
		IsActive:    formBool(verr, c, "is_active"),
	}

	upload, cleanup, err := formImage(c)
	if err != nil {
		verr.Add("image", "image upload is invalid")
	}
	input.Image = upload

	if verr.HasErrors() {
		respondError(c, verr, "Product", h.production)
		return input, cleanup, false
	}
	return input, cleanup, true
}
