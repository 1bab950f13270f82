package models

import (
	"time"

	"gorm.io/datatypes"
)

// CompanySettingsID is the only primary key the settings table accepts.
const CompanySettingsID = 1

// CompanySettings holds the site-wide institutional data (footer, contacts, links).
// It is a single-row table: the row is addressed by CompanySettingsID and written by upsert.
type CompanySettings struct {
	ID           uint              `gorm:"primaryKey;autoIncrement:false;check:company_settings_singleton,id = 1" json:"-"`
	SiteTitle    string            `gorm:"size:100;not null" json:"site_title"`
	Mission      string            `gorm:"type:text" json:"mission"`
	Vision       string            `gorm:"type:text" json:"vision"`
	Values       string            `gorm:"type:text" json:"values"`
	Phone        string            `gorm:"size:20" json:"phone"`
	EmailContact string            `gorm:"size:254" json:"email_contact"`
	Address      string            `gorm:"type:text" json:"address"`
	SocialLinks  datatypes.JSONMap `json:"social_links"` // instagram, linkedin, youtube, facebook
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DefaultCompanySettings is what the site shows before HR saves anything.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		ID:           CompanySettingsID,
		SiteTitle:    "Norte Tech - Serviços em Energia",
		Mission:      "Garantir a satisfação de nossos clientes...",
		Vision:       "Ser reconhecida como a melhor prestadora...",
		Values:       "Valorização e respeito à vida; Segurança...",
		EmailContact: "comercial@nortetech.net",
		Address:      "Av. Torquato Tapajós, 12363 - Tarumã Açu - Manaus - AM",
		SocialLinks:  datatypes.JSONMap{},
	}
}

// Certification is a quality seal shown on the home and about pages.
type Certification struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Image string `gorm:"size:255" json:"image"`
	Order int    `gorm:"column:display_order;default:0;index" json:"order"`
}

// HomeVideo is the institutional video of the home page. At most one is active,
// enforced by a partial unique index created with the table.
type HomeVideo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	VideoFile string    `gorm:"size:255;not null" json:"video_file"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Subject   string    `gorm:"size:100;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// OperatingBase is a field base listed on the about page.
type OperatingBase struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100;default:'Manaus - AM'" json:"city"`
	Phone   string `gorm:"size:20" json:"phone"`
	Image   string `gorm:"size:255" json:"image,omitempty"`
	MapLink string `gorm:"size:255" json:"map_link,omitempty"`
	Order   int    `gorm:"column:display_order;default:0;index" json:"order"`
}

// News is a post of the news section, addressed by slug.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Summary   string    `gorm:"type:text" json:"summary"`
	Body      string    `gorm:"type:text" json:"body"`
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// ContactChannel is one line of the contact page (phone, e-mail, WhatsApp...).
type ContactChannel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"size:255;not null" json:"content"`
	Kind    string `gorm:"size:30" json:"kind"`
	Order   int    `gorm:"column:display_order;default:0;index" json:"order"`
}

// CarouselImage is a slide of the home carousel.
type CarouselImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:100" json:"title"`
	Image    string `gorm:"size:255;not null" json:"image"`
	IsActive bool   `gorm:"index" json:"is_active"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
}

// Service is an offering listed on the services pages.
type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Slug     string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Summary  string `gorm:"type:text" json:"summary"`
	Body     string `gorm:"type:text" json:"body"`
	IsActive bool   `gorm:"index" json:"is_active"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
}
