package tagapimodels

import (
	"github.com/pkg/errors"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type TagView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UsageCount int64  `json:"usage_count"` // Кол-во заявок с тегом
}

type TagData struct {
	Name string `json:"name"`
}

func (t TagData) Validate() error {
	if t.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя тега")
	}
	return nil
}

type MergeRequest struct {
	SourceID string `json:"source_id"` // Тег, который вливаем
	TargetID string `json:"target_id"` // Тег, в который вливаем
}

func (m MergeRequest) Validate() error {
	if m.SourceID == "" || m.TargetID == "" {
		return errors.Wrap(models.ErrValidation, "не указаны теги для слияния")
	}
	if m.SourceID == m.TargetID {
		return errors.Wrap(models.ErrValidation, "нельзя слить тег сам в себя")
	}
	return nil
}

func Convert(rec dbmodels.Tag, usageCount int64) TagView {
	return TagView{
		ID:         rec.ID,
		Name:       rec.Name,
		UsageCount: usageCount,
	}
}
