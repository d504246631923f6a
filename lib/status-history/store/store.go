package statushistorystore

import (
	"gorm.io/gorm"
	dbmodels "job-tracker-backend/models/db"
)

// Записи журнала добавляются только внутри транзакций application store
// (создание заявки и смена статуса), поэтому здесь только чтение.
type Provider interface {
	ListFor(applicationID string) ([]dbmodels.StatusHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListFor(applicationID string) (list []dbmodels.StatusHistory, err error) {
	list = []dbmodels.StatusHistory{}
	err = i.db.
		Where("application_id = ?", applicationID).
		Order("changed_at ASC, created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
