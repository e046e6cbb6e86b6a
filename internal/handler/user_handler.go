package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	production  bool
}

func NewUserHandler(userService *service.UserService, production bool) *UserHandler {
	return &UserHandler{
		userService: userService,
		production:  production,
	}
}

type UserRequest struct {
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	Password             string  `json:"password"`
	PasswordConfirmation string  `json:"password_confirmation"`
	Biography            *string `json:"biography"`
}

// GET /api/v1/users (bearer auth)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.UserCollection(users),
	})
}

// GET /api/v1/users/:id (bearer auth)
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.User(user),
	})
}

// POST /api/v1/users (bearer auth)
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed.",
			"errors":  gin.H{"body": []string{"invalid request body"}},
		})
		return
	}

	user, err := h.userService.Create(service.UserInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Biography:            req.Biography,
	})
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": resource.User(user),
	})
}

// PUT /api/v1/users/:id (bearer auth)
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed.",
			"errors":  gin.H{"body": []string{"invalid request body"}},
		})
		return
	}

	user, err := h.userService.Update(id, service.UserInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Biography:            req.Biography,
	})
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resource.User(user),
	})
}

// DELETE /api/v1/users/:id (bearer auth)
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		respondError(c, err, "User", h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully.",
	})
}
