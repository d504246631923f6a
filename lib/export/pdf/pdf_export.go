package pdfexport

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	ExportCoverLetter(rec dbmodels.CoverLetter, companyName, jobTitle string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportCoverLetter рендерит сопроводительное письмо в PDF для скачивания.
func (i impl) ExportCoverLetter(rec dbmodels.CoverLetter, companyName, jobTitle string) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	title := rec.Title
	if title == "" {
		title = jobTitle + " - " + companyName
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, rec.Body, "", "L", false)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка генерации PDF")
	}
	return buf, nil
}
