package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptcha_token"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "Validation failed.",
			"errors":  gin.H{"body": []string{"invalid request body"}},
		})
		return
	}

	err := h.contactService.Submit(c.Request.Context(), service.SubmitContactInput{
		Name:         req.Name,
		Email:        req.Email,
		Message:      req.Message,
		CaptchaToken: req.RecaptchaToken,
		ClientIP:     c.ClientIP(),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"message": "Validation failed.",
				"errors":  verr.Fields,
			})
			return
		}
		if errors.Is(err, service.ErrBotRejected) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"message": "Bot verification failed.",
			})
			return
		}

		logger.Log.Error("Contact submission failed",
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Unable to process the contact request.",
		})
		return
	}

	// Success is reported regardless of mail delivery; the response must not
	// reveal which addresses receive mail.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you! Please check your inbox to confirm your request.",
	})
}

// POST /api/v1/contact/verify
func (h *ContactHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "A verification token is required.",
		})
		return
	}

	err := h.contactService.Verify(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrContactTokenInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"message": "The verification link is invalid.",
			})
			return
		}
		if errors.Is(err, service.ErrAlreadyVerified) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"message": "This contact request was already confirmed.",
			})
			return
		}

		logger.Log.Error("Contact verification failed",
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Unable to verify the contact request.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your contact request has been confirmed.",
	})
}
