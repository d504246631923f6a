package dbmodels

import (
	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

type CoverLetter struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index;not null"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	Title         string       `gorm:"type:varchar(255)"`
	Body          string       `gorm:"type:text;not null"`
	Generated     bool         // true, если текст получен от генератора
}

func (c CoverLetter) Validate() error {
	if c.ApplicationID == "" {
		return errors.Wrap(models.ErrValidation, "не указана заявка")
	}
	if c.Body == "" {
		return errors.Wrap(models.ErrValidation, "пустой текст сопроводительного письма")
	}
	return nil
}
