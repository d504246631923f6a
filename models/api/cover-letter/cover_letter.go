package coverletterapimodels

import (
	"time"

	dbmodels "job-tracker-backend/models/db"
)

type CoverLetterView struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Generated     bool   `json:"generated"` // текст получен от генератора
	CreatedAt     string `json:"created_at"`
}

type CoverLetterData struct {
	ApplicationID string `json:"application_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}

func Convert(rec dbmodels.CoverLetter) CoverLetterView {
	return CoverLetterView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		Title:         rec.Title,
		Body:          rec.Body,
		Generated:     rec.Generated,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}
