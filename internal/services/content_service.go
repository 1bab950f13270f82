package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"nortetech-site/internal/models"
	"nortetech-site/internal/transport/dto"

	"golang.org/x/sync/errgroup"
)

const (
	homeNewsLimit     = 4
	homeServicesLimit = 6
)

type contentService struct {
	store ContentStore
}

// NewContentService creates a new instance of ContentService.
func NewContentService(store ContentStore) ContentService {
	return &contentService{store: store}
}

// Home loads the home page blocks concurrently.
func (s *contentService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	var resp dto.HomeResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		resp.Settings, err = s.store.GetSettings(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Carousel, err = s.store.ListActiveCarousel(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.LatestNews, err = s.store.ListNews(gctx, homeNewsLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Video, err = s.store.ActiveVideo(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Services, err = s.store.ListActiveServices(gctx, homeServicesLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Certifications, err = s.store.ListCertifications(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, mapRepoError(err, "loading home page")
	}
	return &resp, nil
}

func (s *contentService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.store.ListActiveServices(ctx, 0)
	if err != nil {
		return nil, mapRepoError(err, "listing services")
	}
	return services, nil
}

func (s *contentService) GetService(ctx context.Context, slug string) (*models.Service, error) {
	service, err := s.store.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching service %q", slug))
	}
	return service, nil
}

func (s *contentService) About(ctx context.Context) (*dto.AboutResponse, error) {
	var resp dto.AboutResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		resp.Settings, err = s.store.GetSettings(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Bases, err = s.store.ListOperatingBases(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Certifications, err = s.store.ListCertifications(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, mapRepoError(err, "loading about page")
	}
	return &resp, nil
}

func (s *contentService) ListNews(ctx context.Context) ([]models.News, error) {
	news, err := s.store.ListNews(ctx, 0)
	if err != nil {
		return nil, mapRepoError(err, "listing news")
	}
	return news, nil
}

func (s *contentService) GetNews(ctx context.Context, slug string) (*models.News, error) {
	news, err := s.store.GetNewsBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching news %q", slug))
	}
	return news, nil
}

func (s *contentService) ContactPage(ctx context.Context) (*dto.ContactPageResponse, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, mapRepoError(err, "fetching settings")
	}
	channels, err := s.store.ListContactChannels(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing contact channels")
	}
	return &dto.ContactPageResponse{Settings: settings, Channels: channels}, nil
}

// SubmitContactMessage stores a contact form entry as unread.
func (s *contentService) SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.store.CreateContactMessage(ctx, msg); err != nil {
		return nil, mapRepoError(err, "saving contact message")
	}
	log.Printf("Contact: Message %d received from %s", msg.ID, msg.Email)
	return msg, nil
}

// UpdateSettings overwrites the settings row.
func (s *contentService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*models.CompanySettings, error) {
	links := make(map[string]interface{}, len(req.SocialLinks))
	for k, v := range req.SocialLinks {
		links[k] = v
	}
	settings := &models.CompanySettings{
		ID:           models.CompanySettingsID,
		SiteTitle:    req.SiteTitle,
		Mission:      req.Mission,
		Vision:       req.Vision,
		Values:       req.Values,
		Phone:        req.Phone,
		EmailContact: req.EmailContact,
		Address:      req.Address,
		SocialLinks:  links,
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, mapRepoError(err, "saving settings")
	}
	return settings, nil
}

// CreateVideo registers a video; when it is created active the others are switched off.
func (s *contentService) CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*models.HomeVideo, error) {
	video := &models.HomeVideo{Title: req.Title, VideoFile: req.VideoFile, IsActive: req.IsActive}
	if err := s.store.CreateVideo(ctx, video); err != nil {
		return nil, mapRepoError(err, "creating video")
	}
	return video, nil
}

func (s *contentService) ActivateVideo(ctx context.Context, id uint) (*models.HomeVideo, error) {
	video, err := s.store.ActivateVideo(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("activating video %d", id))
	}
	log.Printf("Content: Video %d is now the home video", id)
	return video, nil
}

func (s *contentService) ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error) {
	msgs, err := s.store.ListContactMessages(ctx, unreadOnly)
	if err != nil {
		return nil, mapRepoError(err, "listing contact messages")
	}
	return msgs, nil
}

func (s *contentService) MarkContactMessageRead(ctx context.Context, id uint) error {
	if err := s.store.MarkContactMessageRead(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("marking contact message %d read", id))
	}
	return nil
}
