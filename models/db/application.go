package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

type Application struct {
	BaseModel
	CompanyName       string                   `gorm:"type:varchar(255);not null"`
	CompanyWebsite    string                   `gorm:"type:varchar(512)"`
	CompanySize       models.CompanySize       `gorm:"type:varchar(50)"`
	JobTitle          string                   `gorm:"type:varchar(255);not null"`
	JobURL            string                   `gorm:"type:varchar(1024)"`
	JobDescriptionRaw string                   `gorm:"type:text"`
	SalaryMin         *int
	SalaryMax         *int
	SalaryCurrency    string                   `gorm:"type:varchar(10);default:EUR"`
	CompensationType  models.CompensationType  `gorm:"type:varchar(50)"`
	SalaryNotSpecified bool
	LocationCity      string                   `gorm:"type:varchar(255)"`
	LocationCountry   string                   `gorm:"type:varchar(255)"`
	WorkMode          models.WorkMode          `gorm:"type:varchar(50)"`
	Status            models.ApplicationStatus `gorm:"type:varchar(50);index;default:saved"`
	DateApplied       *time.Time
	DateAdded         time.Time `gorm:"index"` // выставляется один раз при создании
	MatchScore        *int
	Source            models.ApplicationSource `gorm:"type:varchar(50)"`
	ContactName       string                   `gorm:"type:varchar(255)"`
	ContactEmail      string                   `gorm:"type:varchar(255)"`
	ContactRole       string                   `gorm:"type:varchar(255)"`
	Notes             string                   `gorm:"type:text"`
	Priority          models.Priority          `gorm:"type:varchar(20);default:medium"`
	FollowUpDate      *time.Time
	ResumeID          *string `gorm:"type:varchar(36)"`
	Resume            *Resume `gorm:"foreignKey:ResumeID"`
	CoverLetterNotes  string  `gorm:"type:text"`

	Tags          []Tag           `gorm:"many2many:application_tags;constraint:OnDelete:CASCADE"`
	StatusHistory []StatusHistory `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	CoverLetters  []CoverLetter   `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

func (a Application) Validate() error {
	if a.CompanyName == "" {
		return errors.Wrap(models.ErrValidation, "не указано название компании")
	}
	if a.JobTitle == "" {
		return errors.Wrap(models.ErrValidation, "не указано название позиции")
	}
	if !a.Status.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный статус (%v)", a.Status)
	}
	if a.CompanySize != "" && !a.CompanySize.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный размер компании (%v)", a.CompanySize)
	}
	if a.CompensationType != "" && !a.CompensationType.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный тип компенсации (%v)", a.CompensationType)
	}
	if a.WorkMode != "" && !a.WorkMode.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный формат работы (%v)", a.WorkMode)
	}
	if a.Source != "" && !a.Source.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный источник (%v)", a.Source)
	}
	if a.Priority != "" && !a.Priority.IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный приоритет (%v)", a.Priority)
	}
	if a.SalaryMin != nil && *a.SalaryMin < 0 {
		return errors.Wrap(models.ErrValidation, "нижняя граница зарплаты не может быть отрицательной")
	}
	if a.SalaryMax != nil && *a.SalaryMax < 0 {
		return errors.Wrap(models.ErrValidation, "верхняя граница зарплаты не может быть отрицательной")
	}
	if a.SalaryMin != nil && a.SalaryMax != nil && *a.SalaryMin > *a.SalaryMax {
		return errors.Wrap(models.ErrValidation, "нижняя граница зарплаты больше верхней")
	}
	if a.MatchScore != nil && (*a.MatchScore < 1 || *a.MatchScore > 5) {
		return errors.Wrap(models.ErrValidation, "оценка соответствия должна быть от 1 до 5")
	}
	return nil
}

type ApplicationFilter struct {
	Status   models.ApplicationStatus `json:"status"`
	Priority models.Priority          `json:"priority"`
	WorkMode models.WorkMode          `json:"work_mode"`
	Search   string                   `json:"search"`
	Tag      string                   `json:"tag"`
	Sort     string                   `json:"sort"` // "<поле>:<asc|desc>"
}
