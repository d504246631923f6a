package coverletterstore

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CoverLetter) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.CoverLetter, error)
	ListFor(applicationID string) ([]dbmodels.CoverLetter, error)
	List() ([]dbmodels.CoverLetter, error)
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

func (i impl) Create(rec dbmodels.CoverLetter) (id string, err error) {
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
		Model(&dbmodels.CoverLetter{}).
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

func (i impl) GetByID(id string) (*dbmodels.CoverLetter, error) {
	rec := dbmodels.CoverLetter{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListFor(applicationID string) (list []dbmodels.CoverLetter, err error) {
	list = []dbmodels.CoverLetter{}
	err = i.db.
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.CoverLetter, err error) {
	list = []dbmodels.CoverLetter{}
	err = i.db.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	res := i.db.Where("id = ?", id).Delete(&dbmodels.CoverLetter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
