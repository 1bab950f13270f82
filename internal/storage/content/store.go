// Package content stores the institutional pages of the site (settings, news,
// services, videos, contact messages) with gorm.
package content

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nortetech-site/internal/models"
	"nortetech-site/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm-backed site content repository.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on an open gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the content tables and their extra indexes.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(
		&models.CompanySettings{},
		&models.Certification{},
		&models.HomeVideo{},
		&models.ContactMessage{},
		&models.OperatingBase{},
		&models.News{},
		&models.ContactChannel{},
		&models.CarouselImage{},
		&models.Service{},
	); err != nil {
		return fmt.Errorf("auto migrate content models: %w", err)
	}

	// At most one active home video.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS home_videos_single_active ON home_videos (is_active) WHERE is_active`).Error; err != nil {
		return fmt.Errorf("create home video index: %w", err)
	}
	return nil
}

func mapGormError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	log.Printf("Error %s: %v\n", op, err)
	return fmt.Errorf("failed to %s: %w", op, err)
}

// GetSettings returns the company settings, or the defaults when none were saved.
func (s *Store) GetSettings(ctx context.Context) (models.CompanySettings, error) {
	var settings models.CompanySettings
	err := s.db.WithContext(ctx).First(&settings, models.CompanySettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultCompanySettings(), nil
	}
	if err != nil {
		return models.CompanySettings{}, mapGormError(err, "get company settings")
	}
	return settings, nil
}

// SaveSettings writes the single settings row, inserting it the first time.
func (s *Store) SaveSettings(ctx context.Context, settings *models.CompanySettings) error {
	settings.ID = models.CompanySettingsID
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error
	if err != nil {
		return mapGormError(err, "save company settings")
	}
	return nil
}

// ListCertifications returns the certifications in display order.
func (s *Store) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	var certs []models.Certification
	if err := s.db.WithContext(ctx).Order("display_order, id").Find(&certs).Error; err != nil {
		return nil, mapGormError(err, "list certifications")
	}
	return certs, nil
}

// ListActiveCarousel returns the active carousel slides in display order.
func (s *Store) ListActiveCarousel(ctx context.Context) ([]models.CarouselImage, error) {
	var images []models.CarouselImage
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("display_order, id").Find(&images).Error; err != nil {
		return nil, mapGormError(err, "list carousel")
	}
	return images, nil
}

// ListNews returns news newest first. limit <= 0 returns everything.
func (s *Store) ListNews(ctx context.Context, limit int) ([]models.News, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var news []models.News
	if err := q.Find(&news).Error; err != nil {
		return nil, mapGormError(err, "list news")
	}
	return news, nil
}

// GetNewsBySlug returns one post.
func (s *Store) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	var n models.News
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&n).Error; err != nil {
		return nil, mapGormError(err, "get news "+slug)
	}
	return &n, nil
}

// ListActiveServices returns the active services in display order. limit <= 0 returns all.
func (s *Store) ListActiveServices(ctx context.Context, limit int) ([]models.Service, error) {
	q := s.db.WithContext(ctx).Where("is_active = ?", true).Order("display_order, id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, mapGormError(err, "list services")
	}
	return services, nil
}

// GetServiceBySlug returns an active service.
func (s *Store) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&svc).Error; err != nil {
		return nil, mapGormError(err, "get service "+slug)
	}
	return &svc, nil
}

// ListOperatingBases returns the field bases in display order.
func (s *Store) ListOperatingBases(ctx context.Context) ([]models.OperatingBase, error) {
	var bases []models.OperatingBase
	if err := s.db.WithContext(ctx).Order("display_order, id").Find(&bases).Error; err != nil {
		return nil, mapGormError(err, "list operating bases")
	}
	return bases, nil
}

// ListContactChannels returns the contact page lines in display order.
func (s *Store) ListContactChannels(ctx context.Context) ([]models.ContactChannel, error) {
	var channels []models.ContactChannel
	if err := s.db.WithContext(ctx).Order("display_order, id").Find(&channels).Error; err != nil {
		return nil, mapGormError(err, "list contact channels")
	}
	return channels, nil
}

// CreateContactMessage stores a message from the contact form as unread.
func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = 0
	msg.IsRead = false
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return mapGormError(err, "create contact message")
	}
	log.Printf("Contact message %d received from %s", msg.ID, msg.Email)
	return nil
}

// ListContactMessages returns messages newest first, optionally only the unread ones.
func (s *Store) ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var msgs []models.ContactMessage
	if err := q.Find(&msgs).Error; err != nil {
		return nil, mapGormError(err, "list contact messages")
	}
	return msgs, nil
}

// MarkContactMessageRead flags a message as read.
func (s *Store) MarkContactMessageRead(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return mapGormError(res.Error, "mark contact message read")
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ActiveVideo returns the active home video, or nil when there is none.
func (s *Store) ActiveVideo(ctx context.Context) (*models.HomeVideo, error) {
	var v models.HomeVideo
	err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapGormError(err, "get active video")
	}
	return &v, nil
}

// CreateVideo stores a video. An active video deactivates the others in the same transaction.
func (s *Store) CreateVideo(ctx context.Context, v *models.HomeVideo) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if v.IsActive {
			if err := deactivateVideos(tx, 0); err != nil {
				return err
			}
		}
		return tx.Create(v).Error
	})
	if err != nil {
		return mapGormError(err, "create video")
	}
	return nil
}

// ActivateVideo makes id the only active video.
func (s *Store) ActivateVideo(ctx context.Context, id uint) (*models.HomeVideo, error) {
	var v models.HomeVideo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		if err := deactivateVideos(tx, id); err != nil {
			return err
		}
		v.IsActive = true
		return tx.Model(&v).Update("is_active", true).Error
	})
	if err != nil {
		return nil, mapGormError(err, fmt.Sprintf("activate video %d", id))
	}
	log.Printf("Home video %d activated", id)
	return &v, nil
}

// deactivateVideos clears the active flag of every video except keepID.
func deactivateVideos(tx *gorm.DB, keepID uint) error {
	return tx.Model(&models.HomeVideo{}).
		Where("is_active = ? AND id <> ?", true, keepID).
		Update("is_active", false).Error
}
