package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nortetech-site/internal/api/handlers"
	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noticeBody struct {
	Notice dto.Notice      `json:"notice"`
	Data   json.RawMessage `json:"data"`
}

func decodeNotice(t *testing.T, rec *httptest.ResponseRecorder) noticeBody {
	t.Helper()
	var body noticeBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCareersHandler_Apply(t *testing.T) {
	mockService := new(MockCareersService)
	handler := handlers.NewCareersHandler(mockService, "https://nortetech.example/")
	router := newTestRouter()
	router.POST("/carreiras/aplicar/:job_id/", authed(handler.Apply)...)

	userID := uuid.New()
	jobID := uuid.New()
	path := "/carreiras/aplicar/" + jobID.String() + "/"

	send := func(t *testing.T, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, target, nil)
		req.Header.Set("Authorization", bearer(t, userID, models.RoleCandidate))
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Success", func(t *testing.T) {
		title := "Desenvolvedor Go"
		candidate := &models.Candidate{
			ID:       uuid.New(),
			JobID:    &jobID,
			JobTitle: &title,
			Status:   models.CandidateStatusNew,
			SentAt:   time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		}
		mockService.On("Apply", mock.Anything, userID, jobID).Return(candidate, nil).Once()

		rec := send(t, path)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeNotice(t, rec)
		assert.Equal(t, dto.NoticeSuccess, body.Notice.Level)
		assert.Equal(t, "Sucesso! Sua candidatura para Desenvolvedor Go foi enviada.", body.Notice.Message)
		assert.Equal(t, "/carreiras/", body.Notice.Redirect)

		var app dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(body.Data, &app))
		assert.Equal(t, candidate.ID, app.ID)
		assert.Equal(t, "https://nortetech.example/onboarding/"+candidate.ID.String()+"/", app.OnboardingURL)
		mockService.AssertExpectations(t)
	})

	t.Run("Incomplete profile", func(t *testing.T) {
		mockService.On("Apply", mock.Anything, userID, jobID).Return(nil, services.ErrIncompleteProfile).Once()

		rec := send(t, path)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeNotice(t, rec)
		assert.Equal(t, dto.NoticeWarning, body.Notice.Level)
		assert.Equal(t, "/meu-perfil/", body.Notice.Redirect)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate application", func(t *testing.T) {
		mockService.On("Apply", mock.Anything, userID, jobID).Return(nil, services.ErrDuplicateApplication).Once()

		rec := send(t, path)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeNotice(t, rec)
		assert.Equal(t, dto.NoticeWarning, body.Notice.Level)
		assert.Equal(t, "Você já se candidatou para esta vaga.", body.Notice.Message)
		mockService.AssertExpectations(t)
	})

	t.Run("Closed job", func(t *testing.T) {
		mockService.On("Apply", mock.Anything, userID, jobID).Return(nil, services.ErrNotFound).Once()

		rec := send(t, path)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid job id", func(t *testing.T) {
		calls := len(mockService.Calls)

		rec := send(t, "/carreiras/aplicar/not-a-uuid/")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, mockService.Calls, calls, "the service is not reached")
	})

	t.Run("Anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, path, nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "/login/")
	})
}

func TestCareersHandler_ListMyApplications(t *testing.T) {
	mockService := new(MockCareersService)
	handler := handlers.NewCareersHandler(mockService, "http://localhost:8080")
	router := newTestRouter()
	router.GET("/carreiras/minhas-candidaturas/", authed(handler.ListMyApplications)...)

	userID := uuid.New()

	t.Run("Talent pool application", func(t *testing.T) {
		candidate := models.Candidate{ID: uuid.New(), Status: models.CandidateStatusInReview, SentAt: time.Now()}
		mockService.On("ListMyApplications", mock.Anything, userID).Return([]models.Candidate{candidate}, nil).Once()

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/carreiras/minhas-candidaturas/", nil)
		req.Header.Set("Authorization", bearer(t, userID, models.RoleCandidate))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, models.TalentPoolLabel, resp[0].JobDisplay)
		assert.Equal(t, models.CandidateStatusInReview, resp[0].Status)
		mockService.AssertExpectations(t)
	})

	t.Run("Internal Server Error", func(t *testing.T) {
		mockService.On("ListMyApplications", mock.Anything, userID).Return(nil, errors.New("database error")).Once()

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/carreiras/minhas-candidaturas/", nil)
		req.Header.Set("Authorization", bearer(t, userID, models.RoleCandidate))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database error")
		mockService.AssertExpectations(t)
	})
}

func TestCareersHandler_ListOpenJobs(t *testing.T) {
	mockService := new(MockCareersService)
	handler := handlers.NewCareersHandler(mockService, "")
	router := newTestRouter()
	router.GET("/carreiras/", handler.ListOpenJobs)

	jobs := []models.Job{{ID: uuid.New(), Title: "Analista de Dados", IsActive: true}}
	mockService.On("ListOpenJobs", mock.Anything).Return(jobs, nil).Once()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/carreiras/", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Analista de Dados")
	mockService.AssertExpectations(t)
}
