package resumestore

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Resume) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Resume, error)
	List() ([]dbmodels.Resume, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Resume) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Resume{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Resume, err error) {
	list = []dbmodels.Resume{}
	err = i.db.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	res := i.db.Where("id = ?", id).Delete(&dbmodels.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
