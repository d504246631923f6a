package tagstore

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type TagWithUsage struct {
	dbmodels.Tag
	UsageCount int64
}

type Provider interface {
	ListWithUsage() ([]TagWithUsage, error)
	GetByID(id string) (*dbmodels.Tag, error)
	UpsertByName(name string) (*dbmodels.Tag, error)
	Rename(id, name string) error
	Delete(id string) error
	Merge(sourceID, targetID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListWithUsage() (list []TagWithUsage, err error) {
	list = []TagWithUsage{}
	err = i.db.
		Model(&dbmodels.Tag{}).
		Select("tags.*, count(at2.application_id) as usage_count").
		Joins("left join application_tags as at2 on tags.id = at2.tag_id").
		Group("tags.id").
		Order("tags.name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Tag, error) {
	rec := dbmodels.Tag{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// UpsertByName возвращает существующий тег (без учёта регистра имени)
// или создаёт новый.
func (i impl) UpsertByName(name string) (*dbmodels.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(models.ErrValidation, "не указано имя тега")
	}
	rec := dbmodels.Tag{}
	err := i.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rec = dbmodels.Tag{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		Name:      name,
	}
	if err := i.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) Rename(id, name string) error {
	tx := i.db.
		Model(&dbmodels.Tag{}).
		Where("id = ?", id).
		Update("name", name)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM application_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&dbmodels.Tag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// Merge переносит связи исходного тега на целевой и удаляет исходный.
func (i impl) Merge(sourceID, targetID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmodels.Tag{}).Where("id IN ?", []string{sourceID, targetID}).Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return errors.Wrap(models.ErrNotFound, "тег для слияния не найден")
		}
		err := tx.Exec(`INSERT INTO application_tags (application_id, tag_id)
			SELECT application_id, ? FROM application_tags WHERE tag_id = ?
			ON CONFLICT DO NOTHING`, targetID, sourceID).Error
		if err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM application_tags WHERE tag_id = ?", sourceID).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sourceID).Delete(&dbmodels.Tag{}).Error
	})
}
