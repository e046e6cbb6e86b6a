package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/kunstnord/gallery-api/internal/handler"
	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/testutil"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// ContactHandlerIntegrationTestSuite exercises submit and verify over HTTP
// with a faked bot check and mailer.
type ContactHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB   *testutil.TestDatabase
	verifier *testutil.FakeVerifier
	mailer   *testutil.FakeMailer
	router   *gin.Engine
}

func (s *ContactHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
}

func (s *ContactHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ContactHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.verifier = testutil.PassingVerifier(0.9)
	s.mailer = &testutil.FakeMailer{}

	contactRepo := repository.NewContactRepository(s.testDB.DB)
	contactService := service.NewContactService(
		contactRepo,
		s.verifier,
		s.mailer,
		0.5,
		"https://gallery.example.com",
		"owner@gallery.example.com",
	)
	contactHandler := handler.NewContactHandler(contactService)

	s.router = gin.New()
	s.router.POST("/api/v1/contact", contactHandler.Submit)
	s.router.POST("/api/v1/contact/verify", contactHandler.Verify)
}

func (s *ContactHandlerIntegrationTestSuite) postJSON(path string, body map[string]string) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ContactHandlerIntegrationTestSuite) submitForm() *httptest.ResponseRecorder {
	return s.postJSON("/api/v1/contact", map[string]string{
		"name":            "Jane Visitor",
		"email":           "jane@example.com",
		"message":         "I would like to ask about a painting.",
		"recaptcha_token": "captcha-token",
	})
}

// TestSubmitSuccess tests that a human submission creates one pending row
func (s *ContactHandlerIntegrationTestSuite) TestSubmitSuccess() {
	w := s.submitForm()

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), true, response["success"])

	var pendings []models.PendingContactRequest
	s.testDB.DB.Find(&pendings)
	assert.Len(s.T(), pendings, 1)
	assert.False(s.T(), pendings[0].IsVerified)

	mail := s.mailer.LastMail()
	assert.NotNil(s.T(), mail)
	assert.Equal(s.T(), "jane@example.com", mail.To)
}

// TestSubmitBotRejected tests the 422 bot-rejection path
func (s *ContactHandlerIntegrationTestSuite) TestSubmitBotRejected() {
	s.verifier.Result = testutil.FailingVerifier().Result

	w := s.submitForm()

	assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), false, response["success"])
	assert.Equal(s.T(), "Bot verification failed.", response["message"])

	var count int64
	s.testDB.DB.Model(&models.PendingContactRequest{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

// TestSubmitValidation tests field validation errors
func (s *ContactHandlerIntegrationTestSuite) TestSubmitValidation() {
	w := s.postJSON("/api/v1/contact", map[string]string{
		"name":            "",
		"email":           "not-an-email",
		"message":         "",
		"recaptcha_token": "captcha-token",
	})

	assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Validation failed.", response["message"])
	errs := response["errors"].(map[string]interface{})
	assert.Contains(s.T(), errs, "name")
	assert.Contains(s.T(), errs, "email")
	assert.Contains(s.T(), errs, "message")
}

// TestVerifyFlow tests the full submit-then-verify workflow
func (s *ContactHandlerIntegrationTestSuite) TestVerifyFlow() {
	assert.Equal(s.T(), http.StatusOK, s.submitForm().Code)

	var pending models.PendingContactRequest
	s.testDB.DB.First(&pending)

	w := s.postJSON("/api/v1/contact/verify", map[string]string{
		"token": pending.Token,
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var contacts []models.ContactRequest
	s.testDB.DB.Find(&contacts)
	assert.Len(s.T(), contacts, 1)
	assert.Equal(s.T(), "jane@example.com", contacts[0].Email)

	// Second verification with the same link is rejected
	w2 := s.postJSON("/api/v1/contact/verify", map[string]string{
		"token": pending.Token,
	})
	assert.Equal(s.T(), http.StatusUnprocessableEntity, w2.Code)

	var response map[string]interface{}
	json.Unmarshal(w2.Body.Bytes(), &response)
	assert.Equal(s.T(), "This contact request was already confirmed.", response["message"])

	s.testDB.DB.Find(&contacts)
	assert.Len(s.T(), contacts, 1)
}

// TestVerifyUnknownToken tests verification with a token nobody was issued
func (s *ContactHandlerIntegrationTestSuite) TestVerifyUnknownToken() {
	w := s.postJSON("/api/v1/contact/verify", map[string]string{
		"token": "not-a-real-token",
	})

	assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "The verification link is invalid.", response["message"])
}

// TestVerifyMissingToken tests the bind-level token requirement
func (s *ContactHandlerIntegrationTestSuite) TestVerifyMissingToken() {
	w := s.postJSON("/api/v1/contact/verify", map[string]string{})
	assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)
}

func TestContactHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerIntegrationTestSuite))
}
