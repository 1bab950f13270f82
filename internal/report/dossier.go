// Package report renders printable documents for HR.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"nortetech-site/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Dossier is everything printed on a candidate dossier.
type Dossier struct {
	Candidate     models.Candidate
	Documents     []models.CandidateDocument
	DocsStatus    models.DocsStatus
	OnboardingURL string
	GeneratedAt   time.Time
}

const dateLayout = "02/01/2006"

// CandidateDossierPDF renders the application snapshot, the requested documents and
// a QR code pointing to the candidate's onboarding page.
func CandidateDossierPDF(d Dossier) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("") // Core fonts are cp1252
	pdf.AddPage()

	c := d.Candidate

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(140, 8, tr("Dossiê do Candidato"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(140, 5, tr("Gerado em "+d.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")

	if d.OnboardingURL != "" {
		qrPng, err := qrcode.Encode(d.OnboardingURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode onboarding qr: %w", err)
		}
		imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("onboarding_qr", imgOptions, bytes.NewReader(qrPng))
		pdf.ImageOptions("onboarding_qr", 165, 12, 30, 30, false, imgOptions, 0, "")
	}
	pdf.Ln(12)

	section(pdf, tr, "Candidatura")
	field(pdf, tr, "Nome", c.Name)
	field(pdf, tr, "E-mail", c.Email)
	field(pdf, tr, "Telefone", c.Phone)
	field(pdf, tr, "Vaga", c.JobDisplay())
	field(pdf, tr, "Enviado em", c.SentAt.Format(dateLayout))
	field(pdf, tr, "Status", string(c.Status))
	// cp1252 has no check mark
	field(pdf, tr, "Documentos", strings.TrimPrefix(d.DocsStatus.Label, "✔ "))
	if c.HRNotes != "" {
		field(pdf, tr, "Notas do RH", c.HRNotes)
	}

	resume := c.ResumeSnapshot
	if len(resume.Experiences) > 0 {
		section(pdf, tr, "Experiência Profissional")
		for _, e := range resume.Experiences {
			end := "atual"
			if e.EndDate != nil {
				end = e.EndDate.Format(dateLayout)
			}
			line(pdf, tr, fmt.Sprintf("%s - %s (%s a %s)", e.Role, e.Company, e.StartDate.Format(dateLayout), end))
			if e.Description != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, tr(e.Description), "", "L", false)
			}
		}
	}
	if len(resume.Educations) > 0 {
		section(pdf, tr, "Formação Acadêmica")
		for _, e := range resume.Educations {
			end := "em andamento"
			if e.EndDate != nil {
				end = e.EndDate.Format(dateLayout)
			}
			line(pdf, tr, fmt.Sprintf("%s em %s, %s (%s)", e.Level, e.Course, e.Institution, end))
		}
	}
	if len(resume.Courses) > 0 {
		section(pdf, tr, "Cursos")
		for _, co := range resume.Courses {
			line(pdf, tr, fmt.Sprintf("%s, %s - %dh (%d)", co.Name, co.Institution, co.Hours, co.CompletionYear))
		}
	}

	section(pdf, tr, "Documentos Solicitados")
	if len(d.Documents) == 0 {
		line(pdf, tr, "Nenhum documento solicitado.")
	} else {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(80, 6, tr("Documento"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr("Status"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, tr("Observação"), "1", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, doc := range d.Documents {
			pdf.CellFormat(80, 6, tr(doc.DocTypeTitle), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tr(doc.Status.Label()), "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(truncate(doc.RejectionReason, 45)), "1", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render dossier: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func field(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(35, 6, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr(text), "", "L", false)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
