package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleHR        Role = "hr"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanString(value, "Role")
	if err != nil {
		return err
	}
	v := Role(strVal)
	switch v {
	case RoleCandidate, RoleHR:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Candidate Status Enum ---
// The set is operator-defined; these are the values HR works with today.
type CandidateStatus string

const (
	CandidateStatusNew      CandidateStatus = "NEW"
	CandidateStatusInReview CandidateStatus = "IN_REVIEW"
	CandidateStatusApproved CandidateStatus = "APPROVED"
	CandidateStatusRejected CandidateStatus = "REJECTED"
)

// CandidateStatuses lists the valid candidate statuses in display order.
var CandidateStatuses = []CandidateStatus{
	CandidateStatusNew,
	CandidateStatusInReview,
	CandidateStatusApproved,
	CandidateStatusRejected,
}

// IsValid reports whether s is a known candidate status.
func (s CandidateStatus) IsValid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Scan implements the sql.Scanner interface for CandidateStatus
func (s *CandidateStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "CandidateStatus")
	if err != nil {
		return err
	}
	v := CandidateStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid CandidateStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for CandidateStatus
func (s CandidateStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Document Status Enum ---
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "PENDING"
	DocumentStatusSubmitted DocumentStatus = "SUBMITTED"
	DocumentStatusApproved  DocumentStatus = "APPROVED"
	DocumentStatusRejected  DocumentStatus = "REJECTED"
)

var documentStatusLabels = map[DocumentStatus]string{
	DocumentStatusPending:   "PENDENTE",
	DocumentStatusSubmitted: "ENVIADO",
	DocumentStatusApproved:  "APROVADO",
	DocumentStatusRejected:  "REJEITADO",
}

// IsValid reports whether s is a known document status.
func (s DocumentStatus) IsValid() bool {
	_, ok := documentStatusLabels[s]
	return ok
}

// Label is the name shown to candidates and HR on the site.
func (s DocumentStatus) Label() string {
	if label, ok := documentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Scan implements the sql.Scanner interface for DocumentStatus
func (s *DocumentStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "DocumentStatus")
	if err != nil {
		return err
	}
	v := DocumentStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid DocumentStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for DocumentStatus
func (s DocumentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func scanString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// User represents an account on the site (candidate or HR staff).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the candidate's résumé header kept by the accounts area.
type Profile struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Phone      string    `json:"phone" db:"phone"`
	ResumeFile string    `json:"resume_file" db:"resume_file"` // Blob key, empty when nothing uploaded
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the profile carries everything an application copies.
func (p *Profile) IsComplete() bool {
	return p != nil && p.FullName != "" && p.Phone != "" && p.ResumeFile != ""
}

// Education is one academic entry of a résumé.
type Education struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Course      string     `json:"course" db:"course"`
	Institution string     `json:"institution" db:"institution"`
	Level       string     `json:"level" db:"level"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"` // NULL while still studying
}

// Experience is one professional entry of a résumé.
type Experience struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Role        string     `json:"role" db:"role"`
	Company     string     `json:"company" db:"company"`
	Description string     `json:"description" db:"description"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"` // NULL for the current position
}

// Course is an extra course listed on a résumé.
type Course struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Institution    string    `json:"institution" db:"institution"`
	Hours          int       `json:"hours" db:"hours"`
	CompletionYear int       `json:"completion_year" db:"completion_year"`
}

// ResumeSnapshot is the copy of the résumé lists taken when a candidate applies.
type ResumeSnapshot struct {
	Educations  []Education  `json:"educations"`
	Experiences []Experience `json:"experiences"`
	Courses     []Course     `json:"courses"`
}

// Job is an open position published on the careers page.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Department  string    `json:"department" db:"department"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Candidate is one application. Name, phone, résumé and snapshot are copied at
// submission time and never follow later profile edits.
type Candidate struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	JobID          *uuid.UUID      `json:"job_id,omitempty" db:"job_id"` // NULL means general talent pool
	JobTitle       *string         `json:"job_title,omitempty" db:"job_title"`
	UserID         *uuid.UUID      `json:"user_id,omitempty" db:"user_id"`
	Name           string          `json:"name" db:"name"`
	Email          string          `json:"email" db:"email"`
	Phone          string          `json:"phone" db:"phone"`
	ResumeFile     string          `json:"resume_file" db:"resume_file"`
	Message        string          `json:"message" db:"message"`
	SentAt         time.Time       `json:"sent_at" db:"sent_at"`
	Status         CandidateStatus `json:"status" db:"status"`
	HRNotes        string          `json:"hr_notes" db:"hr_notes"`
	ResumeSnapshot ResumeSnapshot  `json:"resume_snapshot" db:"resume_snapshot"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// TalentPoolLabel is shown instead of a job title for candidates without a job.
const TalentPoolLabel = "Banco de Talentos"

// JobDisplay returns the job title, or the talent pool label when there is no job.
func (c *Candidate) JobDisplay() string {
	if c.JobTitle == nil || *c.JobTitle == "" {
		return TalentPoolLabel
	}
	return *c.JobTitle
}

// DocumentType is a catalog entry HR can request from candidates.
type DocumentType struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CandidateDocument is one requested document of a candidate and its upload slot.
type CandidateDocument struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	CandidateID     uuid.UUID      `json:"candidate_id" db:"candidate_id"`
	DocTypeID       uuid.UUID      `json:"doc_type_id" db:"doc_type_id"`
	DocTypeTitle    string         `json:"doc_type_title" db:"doc_type_title"`
	File            *string        `json:"file,omitempty" db:"file"` // NULL until the first upload
	Status          DocumentStatus `json:"status" db:"status"`
	RejectionReason string         `json:"rejection_reason" db:"rejection_reason"`
	UploadedAt      *time.Time     `json:"uploaded_at,omitempty" db:"uploaded_at"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}
