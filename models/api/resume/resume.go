package resumeapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type ResumeView struct {
	ID          string `json:"id"`
	VersionName string `json:"version_name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
}

type ResumeData struct {
	VersionName string `json:"version_name"`
	Notes       string `json:"notes"`
}

func (r ResumeData) Validate() error {
	if r.VersionName == "" {
		return errors.Wrap(models.ErrValidation, "не указано название версии резюме")
	}
	return nil
}

func Convert(rec dbmodels.Resume) ResumeView {
	return ResumeView{
		ID:          rec.ID,
		VersionName: rec.VersionName,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		SizeBytes:   rec.SizeBytes,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
