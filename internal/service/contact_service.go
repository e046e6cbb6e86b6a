package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/mailer"
	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/recaptcha"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/utils"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

var (
	// ErrBotRejected means the score API reported failure or a confidence
	// score below the policy threshold.
	ErrBotRejected = errors.New("bot verification failed")
	// ErrContactTokenInvalid covers unknown (or consumed-and-cleaned-up)
	// verification tokens.
	ErrContactTokenInvalid = errors.New("verification token is invalid")
	// ErrAlreadyVerified means the link was already used. Verification is
	// single-use; a second visit is an error, not a no-op.
	ErrAlreadyVerified = errors.New("contact request already verified")
)

// SubmitContactInput carries one contact-form submission. ClientIP is
// forwarded to the bot-score API, nothing else.
type SubmitContactInput struct {
	Name         string
	Email        string
	Message      string
	CaptchaToken string
	ClientIP     string
}

// ContactService orchestrates the contact workflow: submit with bot check and
// verification mail, then verify with promotion to a permanent record.
type ContactService struct {
	contactRepo *repository.ContactRepository
	verifier    recaptcha.Verifier
	mailer      mailer.Mailer

	minScore    float64
	baseURL     string
	notifyEmail string
}

func NewContactService(
	contactRepo *repository.ContactRepository,
	verifier recaptcha.Verifier,
	mail mailer.Mailer,
	minScore float64,
	baseURL string,
	notifyEmail string,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		verifier:    verifier,
		mailer:      mail,
		minScore:    minScore,
		baseURL:     baseURL,
		notifyEmail: notifyEmail,
	}
}

// Submit validates the form, runs the bot check, stores a pending request and
// mails the verification link. Mail dispatch failure is logged but does not
// fail the submission: the caller must not be able to probe which addresses
// receive mail.
func (s *ContactService) Submit(ctx context.Context, input SubmitContactInput) error {
	// 1. Validate required fields
	if err := validateContactInput(input); err != nil {
		logger.Log.Warn("Contact submission validation failed",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return err
	}

	// 2. Bot check. A transport failure is treated as a rejection rather
	// than letting an outage skip the gate.
	result, err := s.verifier.Verify(ctx, input.CaptchaToken, input.ClientIP)
	if err != nil {
		logger.Log.Warn("Bot verification request failed",
			zap.String("ip", input.ClientIP),
			zap.Error(err),
		)
		return ErrBotRejected
	}
	if !result.Success {
		logger.Log.Warn("Bot verification reported failure",
			zap.String("ip", input.ClientIP),
			zap.Strings("error_codes", result.ErrorCodes),
		)
		return ErrBotRejected
	}
	if result.Score != nil && *result.Score < s.minScore {
		logger.Log.Warn("Bot verification score below threshold",
			zap.Float64("score", *result.Score),
			zap.Float64("threshold", s.minScore),
		)
		return ErrBotRejected
	}

	// 3. Generate the opaque verification token. Uniqueness is backed by the
	// database constraint; 32 random bytes make a collision negligible.
	token, err := utils.GenerateToken()
	if err != nil {
		logger.Log.Error("Failed to generate verification token",
			zap.Error(err),
		)
		return err
	}

	// 4. Persist the pending request
	pending := &models.PendingContactRequest{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		Message:    input.Message,
		Token:      token,
		IsVerified: false,
	}
	if err := s.contactRepo.CreatePending(pending); err != nil {
		logger.Log.Error("Failed to persist pending contact request",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return err
	}

	// 5. Dispatch the verification mail. Failure must not roll back the
	// pending record.
	verifyURL := fmt.Sprintf("%s/contact/verify/%s", s.baseURL, token)
	body := fmt.Sprintf(
		"Hello %s,\n\nplease confirm your contact request by opening the link below:\n\n%s\n\nIf you did not submit this request, you can ignore this mail.\n",
		input.Name, verifyURL,
	)
	if err := s.mailer.Send(input.Email, "Please confirm your contact request", body); err != nil {
		logger.Log.Error("Failed to send verification mail",
			zap.String("pending_id", pending.ID.String()),
			zap.Error(err),
		)
	}

	logger.Log.Info("Contact request submitted",
		zap.String("pending_id", pending.ID.String()),
	)

	return nil
}

// Verify consumes a verification token: it marks the pending request verified
// and promotes it to a ContactRequest in one transaction. The promoted record
// is built from the pending row's stored fields, so the content is exactly
// what was bot-checked at submit time.
func (s *ContactService) Verify(ctx context.Context, token string) error {
	var promoted *models.ContactRequest

	err := s.contactRepo.Transaction(func(tx *repository.ContactRepository) error {
		pending, err := tx.GetPendingByToken(token)
		if err != nil {
			return err
		}
		if pending == nil {
			return ErrContactTokenInvalid
		}
		if pending.IsVerified {
			return ErrAlreadyVerified
		}

		// Conditional update: if a concurrent verify won the race between
		// our read and this write, zero rows are affected and we bail out.
		affected, err := tx.MarkVerified(token)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyVerified
		}

		promoted = &models.ContactRequest{
			ID:      uuid.New(),
			Name:    pending.Name,
			Email:   pending.Email,
			Message: pending.Message,
		}
		return tx.CreateContact(promoted)
	})
	if err != nil {
		if errors.Is(err, ErrContactTokenInvalid) || errors.Is(err, ErrAlreadyVerified) {
			logger.Log.Warn("Contact verification rejected",
				zap.Error(err),
			)
		} else {
			logger.Log.Error("Contact verification failed",
				zap.Error(err),
			)
		}
		return err
	}

	logger.Log.Info("Contact request verified and promoted",
		zap.String("contact_id", promoted.ID.String()),
	)

	// Operator notification is best-effort; the contact record is already
	// durable.
	if s.notifyEmail != "" {
		body := fmt.Sprintf(
			"New verified contact request:\n\nName: %s\nEmail: %s\n\n%s\n",
			promoted.Name, promoted.Email, promoted.Message,
		)
		if err := s.mailer.Send(s.notifyEmail, "New contact request", body); err != nil {
			logger.Log.Error("Failed to send operator notification",
				zap.String("contact_id", promoted.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

func validateContactInput(input SubmitContactInput) error {
	verr := NewValidationError()

	if input.Name == "" {
		verr.Add("name", "name is required")
	}
	if len(input.Name) > 255 {
		verr.Add("name", "name must be at most 255 characters")
	}

	if input.Email == "" {
		verr.Add("email", "email is required")
	} else if !emailRegex.MatchString(input.Email) {
		verr.Add("email", "invalid email format")
	}
	if len(input.Email) > 255 {
		verr.Add("email", "email must be at most 255 characters")
	}

	if input.Message == "" {
		verr.Add("message", "message is required")
	}

	if input.CaptchaToken == "" {
		verr.Add("recaptcha_token", "recaptcha token is required")
	}

	return verr.OrNil()
}
