package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nortetech-site/internal/api/handlers"
	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouterWithUserMocks() (*gin.Engine, *MockUserService) {
	mockService := new(MockUserService)
	handler := handlers.NewUserHandler(mockService, dto.NewValidator())
	router := newTestRouter()
	router.POST("/cadastro/", handler.Register)
	router.POST("/login/", handler.Login)
	router.POST("/logout/", handler.Logout)
	return router, mockService
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestUserHandler_Register(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()

	t.Run("Success", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleCandidate, CreatedAt: time.Now()}
		mockService.On("Register", mock.Anything, &dto.CreateUserRequest{
			Name:     "Ana Lima",
			Email:    "ana@example.com",
			Password: "supersecret",
		}).Return(user, nil).Once()

		rec := postJSON(router, "/cadastro/", `{"name":"Ana Lima","email":"ana@example.com","password":"supersecret"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeNotice(t, rec)
		assert.Equal(t, "/login/", body.Notice.Redirect)
		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.NotContains(t, rec.Body.String(), "password")
		mockService.AssertExpectations(t)
	})

	t.Run("Validation error", func(t *testing.T) {
		router, mockService := setupTestRouterWithUserMocks()

		rec := postJSON(router, "/cadastro/", `{"name":"A","email":"not-an-email","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		details, ok := resp["details"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "Email")
		assert.Contains(t, details, "Password")
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mockService.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		rec := postJSON(router, "/cadastro/", `{"name":"Ana Lima","email":"ana@example.com","password":"supersecret"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUserHandler_Login(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()

	t.Run("Success", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Email: "ana@example.com", Role: models.RoleCandidate}
		pair := &dto.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}
		mockService.On("Login", mock.Anything, &dto.LoginRequest{Email: "ana@example.com", Password: "supersecret"}).
			Return(user, pair, nil).Once()

		rec := postJSON(router, "/login/", `{"email":"ana@example.com","password":"supersecret"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.Tokens.AccessToken)
		assert.Equal(t, user.ID, resp.User.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.On("Login", mock.Anything, mock.Anything).Return(nil, nil, services.ErrInvalidCredentials).Once()

		rec := postJSON(router, "/login/", `{"email":"ana@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login/", decodeNotice(t, rec).Notice.Redirect)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rec := postJSON(router, "/login/", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Logout(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()
	mockService.On("Logout", mock.Anything, &dto.LogoutRequest{RefreshToken: "refresh"}).Return(nil).Once()

	rec := postJSON(router, "/logout/", `{"refresh_token":"refresh"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.NoticeSuccess, decodeNotice(t, rec).Notice.Level)
	mockService.AssertExpectations(t)
}
