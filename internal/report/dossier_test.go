package report

import (
	"bytes"
	"testing"
	"time"

	"nortetech-site/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateDossierPDF(t *testing.T) {
	title := "Eletricista de Manutenção"
	end := time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)
	reason := "Documento ilegível"
	docs := []models.CandidateDocument{
		{ID: uuid.New(), DocTypeTitle: "CPF", Status: models.DocumentStatusApproved},
		{ID: uuid.New(), DocTypeTitle: "Comprovante de Residência", Status: models.DocumentStatusRejected, RejectionReason: reason},
	}

	pdf, err := CandidateDossierPDF(Dossier{
		Candidate: models.Candidate{
			ID:       uuid.New(),
			JobTitle: &title,
			Name:     "João Araújo",
			Email:    "joao@example.com",
			Phone:    "(92) 99999-0000",
			SentAt:   time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
			Status:   models.CandidateStatusInReview,
			ResumeSnapshot: models.ResumeSnapshot{
				Educations:  []models.Education{{Course: "Eletrotécnica", Institution: "IFAM", Level: "Técnico", EndDate: &end}},
				Experiences: []models.Experience{{Role: "Eletricista", Company: "Norte", StartDate: end}},
				Courses:     []models.Course{{Name: "NR-10", Institution: "SENAI", Hours: 40, CompletionYear: 2021}},
			},
		},
		Documents:     docs,
		DocsStatus:    models.CountDocuments(docs).Summarize(),
		OnboardingURL: "http://localhost:8080/onboarding/123/",
		GeneratedAt:   time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Greater(t, len(pdf), 1000)
}

func TestCandidateDossierPDF_TalentPoolWithoutDocuments(t *testing.T) {
	pdf, err := CandidateDossierPDF(Dossier{
		Candidate:  models.Candidate{Name: "Maria", Status: models.CandidateStatusNew},
		DocsStatus: models.CountDocuments(nil).Summarize(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
}
