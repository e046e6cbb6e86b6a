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
	"github.com/kunstnord/gallery-api/internal/middleware"
	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/repository"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/testutil"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// AuthHandlerIntegrationTestSuite defines test suite
type AuthHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	authHandler *handler.AuthHandler
	router      *gin.Engine
}

// SetupSuite runs before all tests
func (s *AuthHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	// Initialize logger (required for handlers)
	logger.Init(false) // false = production mode (no verbose logs)

	// Start in-memory SQLite test database (migrations run automatically)
	s.testDB = testutil.SetupTestDatabase(s.T())

	// Setup repositories and services
	userRepo := repository.NewUserRepository(s.testDB.DB)
	tokenRepo := repository.NewTokenRepository(s.testDB.DB)
	authService := service.NewAuthService(userRepo, tokenRepo)

	// Setup handler
	s.authHandler = handler.NewAuthHandler(authService)

	// Setup router
	s.router = gin.New()
	s.router.POST("/api/v1/auth/register", s.authHandler.Register)
	s.router.POST("/api/v1/auth/login", s.authHandler.Login)

	authRequired := middleware.AuthMiddleware(authService)
	s.router.POST("/api/v1/auth/logout", authRequired, s.authHandler.Logout)
	s.router.GET("/api/v1/protected", authRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

// TearDownSuite runs after all tests
func (s *AuthHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *AuthHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *AuthHandlerIntegrationTestSuite) postJSON(path string, body map[string]string) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// TestRegisterSuccess tests successful user registration
func (s *AuthHandlerIntegrationTestSuite) TestRegisterSuccess() {
	w := s.postJSON("/api/v1/auth/register", map[string]string{
		"name":                  "New User",
		"email":                 "newuser@example.com",
		"password":              "SecurePass123",
		"password_confirmation": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), true, response["success"])
	assert.NotEmpty(s.T(), response["token"])

	// Check user data
	user := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "New User", user["name"])
	assert.Equal(s.T(), "newuser@example.com", user["email"])

	// Registration issues a working token
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer "+response["token"].(string))
	w2 := httptest.NewRecorder()
	s.router.ServeHTTP(w2, req)
	assert.Equal(s.T(), http.StatusOK, w2.Code)
}

// TestRegisterDuplicateEmail tests registration with existing email
func (s *AuthHandlerIntegrationTestSuite) TestRegisterDuplicateEmail() {
	existingUser, _ := testutil.CreateTestUser("Existing", "test@example.com", "Pass1234", models.RoleUser)
	s.testDB.DB.Create(existingUser)

	w := s.postJSON("/api/v1/auth/register", map[string]string{
		"name":                  "Different",
		"email":                 "test@example.com", // Same email
		"password":              "SecurePass123",
		"password_confirmation": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Validation failed.", response["message"])
	errs := response["errors"].(map[string]interface{})
	assert.Contains(s.T(), errs, "email")
}

// TestRegisterInvalidInput tests registration with invalid input
func (s *AuthHandlerIntegrationTestSuite) TestRegisterInvalidInput() {
	testCases := []struct {
		name    string
		reqBody map[string]string
		field   string
	}{
		{
			name: "Invalid email",
			reqBody: map[string]string{
				"name":                  "Test User",
				"email":                 "invalid-email",
				"password":              "Pass123456",
				"password_confirmation": "Pass123456",
			},
			field: "email",
		},
		{
			name: "Short password",
			reqBody: map[string]string{
				"name":                  "Test User",
				"email":                 "test@example.com",
				"password":              "short",
				"password_confirmation": "short",
			},
			field: "password",
		},
		{
			name: "Password confirmation mismatch",
			reqBody: map[string]string{
				"name":                  "Test User",
				"email":                 "test@example.com",
				"password":              "Pass123456",
				"password_confirmation": "Different123",
			},
			field: "password",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := s.postJSON("/api/v1/auth/register", tc.reqBody)

			assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			errs := response["errors"].(map[string]interface{})
			assert.Contains(s.T(), errs, tc.field)
		})
	}
}

// TestLoginSuccess tests successful login
func (s *AuthHandlerIntegrationTestSuite) TestLoginSuccess() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "LoginPass123", models.RoleUser)
	s.testDB.DB.Create(testUser)

	w := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "LoginPass123",
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Login successful.", response["message"])
	assert.NotEmpty(s.T(), response["token"])

	user := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "Login User", user["name"])
	assert.Equal(s.T(), "login@example.com", user["email"])
}

// TestLoginReplacesPreviousToken tests that each login invalidates the token
// from the previous login (one active token per user)
func (s *AuthHandlerIntegrationTestSuite) TestLoginReplacesPreviousToken() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "LoginPass123", models.RoleUser)
	s.testDB.DB.Create(testUser)

	creds := map[string]string{"email": "login@example.com", "password": "LoginPass123"}

	w1 := s.postJSON("/api/v1/auth/login", creds)
	var first map[string]interface{}
	json.Unmarshal(w1.Body.Bytes(), &first)
	firstToken := first["token"].(string)

	w2 := s.postJSON("/api/v1/auth/login", creds)
	var second map[string]interface{}
	json.Unmarshal(w2.Body.Bytes(), &second)
	secondToken := second["token"].(string)

	assert.NotEqual(s.T(), firstToken, secondToken)

	// Old token is revoked
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer "+firstToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// New token works
	req2, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req2.Header.Set("Authorization", "Bearer "+secondToken)
	w3 := httptest.NewRecorder()
	s.router.ServeHTTP(w3, req2)
	assert.Equal(s.T(), http.StatusOK, w3.Code)
}

// TestLoginInvalidCredentials tests login with wrong password
func (s *AuthHandlerIntegrationTestSuite) TestLoginInvalidCredentials() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "CorrectPass123", models.RoleUser)
	s.testDB.DB.Create(testUser)

	w := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "WrongPass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), false, response["success"])
	assert.Equal(s.T(), "Invalid login credentials.", response["message"])
}

// TestLoginNonExistentUser tests login with non-existent email
func (s *AuthHandlerIntegrationTestSuite) TestLoginNonExistentUser() {
	w := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    "nonexistent@example.com",
		"password": "SomePass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Invalid login credentials.", response["message"])
}

// TestLogoutRevokesToken tests that logout deletes the active token
func (s *AuthHandlerIntegrationTestSuite) TestLogoutRevokesToken() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "LoginPass123", models.RoleUser)
	s.testDB.DB.Create(testUser)

	w := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "LoginPass123",
	})
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	token := response["token"].(string)

	// Logout with the token
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	s.router.ServeHTTP(w2, req)
	assert.Equal(s.T(), http.StatusOK, w2.Code)

	// The token no longer authenticates
	req3, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req3.Header.Set("Authorization", "Bearer "+token)
	w3 := httptest.NewRecorder()
	s.router.ServeHTTP(w3, req3)
	assert.Equal(s.T(), http.StatusUnauthorized, w3.Code)
}

// TestProtectedRouteWithoutToken tests bearer requirement
func (s *AuthHandlerIntegrationTestSuite) TestProtectedRouteWithoutToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// Malformed header
	req2, _ := http.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req2.Header.Set("Authorization", "Token abc")
	w2 := httptest.NewRecorder()
	s.router.ServeHTTP(w2, req2)
	assert.Equal(s.T(), http.StatusUnauthorized, w2.Code)
}

// TestSuite runs all tests in the suite
func TestAuthHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerIntegrationTestSuite))
}
