package dbmodels

import (
	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

// Tag уникален по имени без учёта регистра (uniqueIndex по lower(name)
// создаётся миграцией). Неиспользуемые теги допустимо не удалять.
type Tag struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`

	Applications []Application `gorm:"many2many:application_tags"`
}

func (t Tag) Validate() error {
	if t.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя тега")
	}
	return nil
}
