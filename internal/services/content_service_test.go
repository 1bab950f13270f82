package services_test

import (
	"context"
	"errors"
	"testing"

	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/storage"
	"nortetech-site/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentService_Home(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates the home blocks", func(t *testing.T) {
		store := new(MockContentStore)
		store.On("GetSettings", mock.Anything).Return(models.DefaultCompanySettings(), nil)
		store.On("ListActiveCarousel", mock.Anything).Return([]models.CarouselImage{{ID: 1}}, nil)
		store.On("ListNews", mock.Anything, 4).Return([]models.News{{ID: 1}, {ID: 2}}, nil)
		store.On("ActiveVideo", mock.Anything).Return(nil, nil)
		store.On("ListActiveServices", mock.Anything, 6).Return([]models.Service{{ID: 1}}, nil)
		store.On("ListCertifications", mock.Anything).Return([]models.Certification{}, nil)

		home, err := services.NewContentService(store).Home(ctx)

		require.NoError(t, err)
		assert.Len(t, home.LatestNews, 2)
		assert.Nil(t, home.Video)
		assert.Equal(t, models.DefaultCompanySettings().SiteTitle, home.Settings.SiteTitle)
		store.AssertExpectations(t)
	})

	t.Run("Store failure", func(t *testing.T) {
		store := new(MockContentStore)
		store.On("GetSettings", mock.Anything).Return(models.CompanySettings{}, errors.New("db down"))
		store.On("ListActiveCarousel", mock.Anything).Return([]models.CarouselImage{}, nil).Maybe()
		store.On("ListNews", mock.Anything, 4).Return([]models.News{}, nil).Maybe()
		store.On("ActiveVideo", mock.Anything).Return(nil, nil).Maybe()
		store.On("ListActiveServices", mock.Anything, 6).Return([]models.Service{}, nil).Maybe()
		store.On("ListCertifications", mock.Anything).Return([]models.Certification{}, nil).Maybe()

		_, err := services.NewContentService(store).Home(ctx)

		assert.Error(t, err)
	})
}

func TestContentService_GetService_NotFound(t *testing.T) {
	store := new(MockContentStore)
	store.On("GetServiceBySlug", mock.Anything, "inexistente").Return(nil, storage.ErrNotFound)

	_, err := services.NewContentService(store).GetService(context.Background(), "inexistente")

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestContentService_SubmitContactMessage(t *testing.T) {
	store := new(MockContentStore)
	store.On("CreateContactMessage", mock.Anything, mock.MatchedBy(func(m *models.ContactMessage) bool {
		return m.Email == "cliente@example.com" && m.Name == "Cliente" && !m.IsRead
	})).Return(nil)

	msg, err := services.NewContentService(store).SubmitContactMessage(context.Background(), &dto.ContactMessageRequest{
		Name:    " Cliente ",
		Email:   "Cliente@Example.com",
		Subject: "Orçamento",
		Message: "Olá",
	})

	require.NoError(t, err)
	assert.Equal(t, "Orçamento", msg.Subject)
}

func TestContentService_UpdateSettings(t *testing.T) {
	store := new(MockContentStore)
	store.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s *models.CompanySettings) bool {
		return s.ID == models.CompanySettingsID && s.SocialLinks["linkedin"] == "https://linkedin.com/company/nortetech"
	})).Return(nil)

	got, err := services.NewContentService(store).UpdateSettings(context.Background(), &dto.UpdateSettingsRequest{
		SiteTitle:   "Norte Tech",
		SocialLinks: map[string]string{"linkedin": "https://linkedin.com/company/nortetech"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Norte Tech", got.SiteTitle)
}

func TestContentService_ActivateVideo(t *testing.T) {
	store := new(MockContentStore)
	store.On("ActivateVideo", mock.Anything, uint(3)).Return(&models.HomeVideo{ID: 3, IsActive: true}, nil)
	store.On("ActivateVideo", mock.Anything, uint(9)).Return(nil, storage.ErrNotFound)
	svc := services.NewContentService(store)

	video, err := svc.ActivateVideo(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, video.IsActive)

	_, err = svc.ActivateVideo(context.Background(), 9)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
