package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

const dateFormat = "2006-01-02"

type ApplicationView struct {
	ID                 string                   `json:"id"`                   // Идентификатор заявки
	CompanyName        string                   `json:"company_name"`         // Название компании
	CompanyWebsite     string                   `json:"company_website"`      // Сайт компании
	CompanySize        models.CompanySize       `json:"company_size"`         // Размер компании
	JobTitle           string                   `json:"job_title"`            // Название позиции
	JobURL             string                   `json:"job_url"`              // Ссылка на вакансию
	JobDescriptionRaw  string                   `json:"job_description_raw"`  // Исходный текст вакансии
	SalaryMin          *int                     `json:"salary_min"`           // Нижняя граница зарплаты
	SalaryMax          *int                     `json:"salary_max"`           // Верхняя граница зарплаты
	SalaryCurrency     string                   `json:"salary_currency"`      // Валюта
	CompensationType   models.CompensationType  `json:"compensation_type"`    // Тип компенсации
	SalaryNotSpecified bool                     `json:"salary_not_specified"` // Зарплата не указана
	LocationCity       string                   `json:"location_city"`        // Город
	LocationCountry    string                   `json:"location_country"`     // Страна
	WorkMode           models.WorkMode          `json:"work_mode"`            // Формат работы
	Status             models.ApplicationStatus `json:"status"`               // Текущий статус
	StatusLabel        string                   `json:"status_label"`         // Отображаемое имя статуса
	StatusOrdinal      int                      `json:"status_ordinal"`       // Позиция статуса в воронке
	DateApplied        *string                  `json:"date_applied"`         // Дата подачи ГГГГ-ММ-ДД
	DateAdded          string                   `json:"date_added"`           // Дата добавления (RFC3339)
	MatchScore         *int                     `json:"match_score"`          // Оценка соответствия 1-5
	Source             models.ApplicationSource `json:"source"`               // Источник вакансии
	ContactName        string                   `json:"contact_name"`         // Контактное лицо
	ContactEmail       string                   `json:"contact_email"`        // Почта контакта
	ContactRole        string                   `json:"contact_role"`         // Роль контакта
	Notes              string                   `json:"notes"`                // Заметки
	Priority           models.Priority          `json:"priority"`             // Приоритет
	FollowUpDate       *string                  `json:"follow_up_date"`       // Дата напоминания ГГГГ-ММ-ДД
	ResumeID           *string                  `json:"resume_id"`            // Версия резюме
	CoverLetterNotes   string                   `json:"cover_letter_notes"`   // Заметки к сопроводительному письму
	Tags               []string                 `json:"tags"`                 // Теги
	StatusHistory      []StatusHistoryView      `json:"status_history,omitempty"`
}

type StatusHistoryView struct {
	ID         string                    `json:"id"`
	FromStatus *models.ApplicationStatus `json:"from_status"` // null только у первой записи
	ToStatus   models.ApplicationStatus  `json:"to_status"`
	ChangedAt  string                    `json:"changed_at"` // RFC3339
	Notes      *string                   `json:"notes"`
}

type ApplicationData struct {
	CompanyName        string                   `json:"company_name"`
	CompanyWebsite     string                   `json:"company_website"`
	CompanySize        models.CompanySize       `json:"company_size"`
	JobTitle           string                   `json:"job_title"`
	JobURL             string                   `json:"job_url"`
	JobDescriptionRaw  string                   `json:"job_description_raw"`
	SalaryMin          *int                     `json:"salary_min"`
	SalaryMax          *int                     `json:"salary_max"`
	SalaryCurrency     string                   `json:"salary_currency"`
	CompensationType   models.CompensationType  `json:"compensation_type"`
	SalaryNotSpecified bool                     `json:"salary_not_specified"`
	LocationCity       string                   `json:"location_city"`
	LocationCountry    string                   `json:"location_country"`
	WorkMode           models.WorkMode          `json:"work_mode"`
	Status             models.ApplicationStatus `json:"status"` // статус при создании, по умолчанию saved
	DateApplied        string                   `json:"date_applied"`
	MatchScore         *int                     `json:"match_score"`
	Source             models.ApplicationSource `json:"source"`
	ContactName        string                   `json:"contact_name"`
	ContactEmail       string                   `json:"contact_email"`
	ContactRole        string                   `json:"contact_role"`
	Notes              string                   `json:"notes"`
	Priority           models.Priority          `json:"priority"`
	FollowUpDate       string                   `json:"follow_up_date"`
	ResumeID           string                   `json:"resume_id"`
	CoverLetterNotes   string                   `json:"cover_letter_notes"`
	Tags               []string                 `json:"tags"`
}

func (a ApplicationData) Validate() error {
	if _, err := a.GetDateApplied(); err != nil {
		return errors.Wrap(models.ErrValidation, "некорректный формат даты подачи")
	}
	if _, err := a.GetFollowUpDate(); err != nil {
		return errors.Wrap(models.ErrValidation, "некорректный формат даты напоминания")
	}
	return a.ToRecord().Validate()
}

func (a ApplicationData) GetDateApplied() (*time.Time, error) {
	return parseDate(a.DateApplied)
}

func (a ApplicationData) GetFollowUpDate() (*time.Time, error) {
	return parseDate(a.FollowUpDate)
}

func (a ApplicationData) ToRecord() dbmodels.Application {
	status := a.Status
	if status == "" {
		status = models.StatusSaved
	}
	priority := a.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	rec := dbmodels.Application{
		CompanyName:        a.CompanyName,
		CompanyWebsite:     a.CompanyWebsite,
		CompanySize:        a.CompanySize,
		JobTitle:           a.JobTitle,
		JobURL:             a.JobURL,
		JobDescriptionRaw:  a.JobDescriptionRaw,
		SalaryMin:          a.SalaryMin,
		SalaryMax:          a.SalaryMax,
		SalaryCurrency:     a.SalaryCurrency,
		CompensationType:   a.CompensationType,
		SalaryNotSpecified: a.SalaryNotSpecified,
		LocationCity:       a.LocationCity,
		LocationCountry:    a.LocationCountry,
		WorkMode:           a.WorkMode,
		Status:             status,
		MatchScore:         a.MatchScore,
		Source:             a.Source,
		ContactName:        a.ContactName,
		ContactEmail:       a.ContactEmail,
		ContactRole:        a.ContactRole,
		Notes:              a.Notes,
		Priority:           priority,
		CoverLetterNotes:   a.CoverLetterNotes,
	}
	if a.ResumeID != "" {
		rec.ResumeID = &a.ResumeID
	}
	if dateApplied, err := a.GetDateApplied(); err == nil {
		rec.DateApplied = dateApplied
	}
	if followUp, err := a.GetFollowUpDate(); err == nil {
		rec.FollowUpDate = followUp
	}
	return rec
}

// ApplicationUpdateData - частичное обновление, nil-поля не трогаем.
type ApplicationUpdateData struct {
	CompanyName        *string                   `json:"company_name"`
	CompanyWebsite     *string                   `json:"company_website"`
	CompanySize        *models.CompanySize       `json:"company_size"`
	JobTitle           *string                   `json:"job_title"`
	JobURL             *string                   `json:"job_url"`
	JobDescriptionRaw  *string                   `json:"job_description_raw"`
	SalaryMin          *int                      `json:"salary_min"`
	SalaryMax          *int                      `json:"salary_max"`
	SalaryCurrency     *string                   `json:"salary_currency"`
	CompensationType   *models.CompensationType  `json:"compensation_type"`
	SalaryNotSpecified *bool                     `json:"salary_not_specified"`
	LocationCity       *string                   `json:"location_city"`
	LocationCountry    *string                   `json:"location_country"`
	WorkMode           *models.WorkMode          `json:"work_mode"`
	Status             *models.ApplicationStatus `json:"status"` // смена идёт через движок переходов
	DateApplied        *string                   `json:"date_applied"`
	MatchScore         *int                      `json:"match_score"`
	Source             *models.ApplicationSource `json:"source"`
	ContactName        *string                   `json:"contact_name"`
	ContactEmail       *string                   `json:"contact_email"`
	ContactRole        *string                   `json:"contact_role"`
	Notes              *string                   `json:"notes"`
	Priority           *models.Priority          `json:"priority"`
	FollowUpDate       *string                   `json:"follow_up_date"`
	ResumeID           *string                   `json:"resume_id"`
	CoverLetterNotes   *string                   `json:"cover_letter_notes"`
	Tags               []string                  `json:"tags"`
}

type TransitionRequest struct {
	Status        models.ApplicationStatus `json:"status"`         // Целевой статус
	OperatorValue string                   `json:"operator_value"` // Дата/время из диалога, опционально
}

type BulkStatusRequest struct {
	IDs    []string                 `json:"ids"`
	Status models.ApplicationStatus `json:"status"`
}

func (b BulkStatusRequest) Validate() error {
	if len(b.IDs) == 0 {
		return errors.Wrap(models.ErrValidation, "не указаны идентификаторы заявок")
	}
	if !b.Status.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный статус (%v)", b.Status)
	}
	return nil
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:                 rec.ID,
		CompanyName:        rec.CompanyName,
		CompanyWebsite:     rec.CompanyWebsite,
		CompanySize:        rec.CompanySize,
		JobTitle:           rec.JobTitle,
		JobURL:             rec.JobURL,
		JobDescriptionRaw:  rec.JobDescriptionRaw,
		SalaryMin:          rec.SalaryMin,
		SalaryMax:          rec.SalaryMax,
		SalaryCurrency:     rec.SalaryCurrency,
		CompensationType:   rec.CompensationType,
		SalaryNotSpecified: rec.SalaryNotSpecified,
		LocationCity:       rec.LocationCity,
		LocationCountry:    rec.LocationCountry,
		WorkMode:           rec.WorkMode,
		Status:             rec.Status,
		StatusLabel:        rec.Status.Label(),
		StatusOrdinal:      rec.Status.Ordinal(),
		DateAdded:          rec.DateAdded.Format(time.RFC3339),
		MatchScore:         rec.MatchScore,
		Source:             rec.Source,
		ContactName:        rec.ContactName,
		ContactEmail:       rec.ContactEmail,
		ContactRole:        rec.ContactRole,
		Notes:              rec.Notes,
		Priority:           rec.Priority,
		ResumeID:           rec.ResumeID,
		CoverLetterNotes:   rec.CoverLetterNotes,
		Tags:               make([]string, 0, len(rec.Tags)),
	}
	if rec.DateApplied != nil {
		value := rec.DateApplied.Format(dateFormat)
		view.DateApplied = &value
	}
	if rec.FollowUpDate != nil {
		value := rec.FollowUpDate.Format(dateFormat)
		view.FollowUpDate = &value
	}
	for _, tag := range rec.Tags {
		view.Tags = append(view.Tags, tag.Name)
	}
	return view
}

func ConvertExt(rec dbmodels.Application) ApplicationView {
	view := Convert(rec)
	view.StatusHistory = make([]StatusHistoryView, 0, len(rec.StatusHistory))
	for _, entry := range rec.StatusHistory {
		view.StatusHistory = append(view.StatusHistory, ConvertHistory(entry))
	}
	return view
}

func ConvertHistory(rec dbmodels.StatusHistory) StatusHistoryView {
	return StatusHistoryView{
		ID:         rec.ID,
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		ChangedAt:  rec.ChangedAt.Format(time.RFC3339),
		Notes:      rec.Notes,
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateFormat, value)
	if err != nil {
		// допускаем и полный timestamp
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}
