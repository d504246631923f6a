package aiapimodels

import (
	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

type ParseJobRequest struct {
	Text string `json:"text"` // Сырой текст вакансии
}

func (r ParseJobRequest) Validate() error {
	if r.Text == "" {
		return errors.Wrap(models.ErrValidation, "не передан текст вакансии")
	}
	return nil
}

// ParsedJob - структурированные поля, извлечённые парсером вакансий.
type ParsedJob struct {
	CompanyName      string `json:"company_name"`
	JobTitle         string `json:"job_title"`
	LocationCity     string `json:"location_city"`
	LocationCountry  string `json:"location_country"`
	WorkMode         string `json:"work_mode"`
	SalaryMin        *int   `json:"salary_min"`
	SalaryMax        *int   `json:"salary_max"`
	SalaryCurrency   string `json:"salary_currency"`
	CompensationType string `json:"compensation_type"`
	Description      string `json:"description"`
}

type GenerateCoverRequest struct {
	ApplicationID string `json:"application_id"`
	Tone          string `json:"tone"`  // формальный/нейтральный/свободный
	Extra         string `json:"extra"` // дополнительные пожелания к тексту
}

func (r GenerateCoverRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.Wrap(models.ErrValidation, "не указана заявка")
	}
	return nil
}

type GenerateCoverResponse struct {
	Body string `json:"body"`
}

type MatchScoreResponse struct {
	Score     int    `json:"score"` // 1-5
	Reasoning string `json:"reasoning"`
}
