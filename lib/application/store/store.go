package applicationstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application, entry dbmodels.StatusHistory) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Application, err error)
	List(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error)
	ListWithHistory() ([]dbmodels.Application, error)
	ListDueFollowUps(asOf time.Time) ([]dbmodels.Application, error)
	Delete(id string) error
	DeleteMany(ids []string) (deleted int64, err error)
	ApplyTransition(id string, updMap map[string]interface{}, entry dbmodels.StatusHistory) error
	ReplaceTags(id string, tags []dbmodels.Tag) error
	ClearAll() error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create сохраняет заявку вместе с записью истории о создании,
// обе записи в одной транзакции.
func (i impl) Create(rec dbmodels.Application, entry dbmodels.StatusHistory) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.DateAdded.IsZero() {
		rec.DateAdded = time.Now()
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("StatusHistory", "CoverLetters", "Resume").Create(&rec).Error; err != nil {
			return err
		}
		entry.ID = uuid.NewString()
		entry.ApplicationID = rec.ID
		entry.ChangedAt = time.Now()
		return tx.Create(&entry).Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
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

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
		Preload("Tags").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC, created_at ASC")
		}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Distinct("applications.*")
	i.addFilter(tx, filter)
	i.addSort(tx, filter.Sort)
	err = tx.Preload("Tags").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListWithHistory используется аналитикой и календарём - заявки целиком,
// с тегами и историей в порядке возрастания.
func (i impl) ListWithHistory() (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Preload("Tags").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC, created_at ASC")
		}).
		Order("date_added DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListDueFollowUps - заявки с наступившей датой напоминания,
// закрытые статусы не напоминаем.
func (i impl) ListDueFollowUps(asOf time.Time) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Where("follow_up_date IS NOT NULL AND follow_up_date <= ?", asOf).
		Where("status NOT IN ?", []models.ApplicationStatus{
			models.StatusRejected,
			models.StatusWithdrawn,
			models.StatusAccepted,
		}).
		Order("follow_up_date ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Select(clause.Associations).Delete(&dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: id}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		// каскады на случай, если БД создана без внешних ключей
		tx.Where("application_id = ?", id).Delete(&dbmodels.StatusHistory{})
		tx.Where("application_id = ?", id).Delete(&dbmodels.CoverLetter{})
		tx.Exec("DELETE FROM application_tags WHERE application_id = ?", id)
		return nil
	})
}

func (i impl) DeleteMany(ids []string) (deleted int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id IN ?", ids).Delete(&dbmodels.Application{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		tx.Where("application_id IN ?", ids).Delete(&dbmodels.StatusHistory{})
		tx.Where("application_id IN ?", ids).Delete(&dbmodels.CoverLetter{})
		tx.Exec("DELETE FROM application_tags WHERE application_id IN ?", ids)
		return nil
	})
	return deleted, err
}

// ApplyTransition атомарно применяет смену статуса: обновление заявки и
// запись истории либо проходят вместе, либо не проходят вовсе.
func (i impl) ApplyTransition(id string, updMap map[string]interface{}, entry dbmodels.StatusHistory) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&dbmodels.Application{}).
			Where("id = ?", id).
			Updates(updMap)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		entry.ID = uuid.NewString()
		entry.ApplicationID = id
		entry.ChangedAt = time.Now()
		return tx.Create(&entry).Error
	})
}

func (i impl) ReplaceTags(id string, tags []dbmodels.Tag) error {
	rec := dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.Model(&rec).Association("Tags").Replace(tags)
}

// ClearAll полностью очищает данные трекера (настройки "clear data").
func (i impl) ClearAll() error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM application_tags").Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&dbmodels.StatusHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&dbmodels.CoverLetter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&dbmodels.Application{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&dbmodels.Tag{}).Error
	})
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.Status != "" {
		tx.Where("applications.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx.Where("applications.priority = ?", filter.Priority)
	}
	if filter.WorkMode != "" {
		tx.Where("applications.work_mode = ?", filter.WorkMode)
	}
	if filter.Search != "" || filter.Tag != "" {
		tx.Joins("left join application_tags as at2 on applications.id = at2.application_id").
			Joins("left join tags as t on at2.tag_id = t.id")
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(applications.company_name) like ? or LOWER(applications.job_title) like ? or LOWER(applications.notes) like ? or LOWER(t.name) like ?",
			searchValue, searchValue, searchValue, searchValue)
	}
	if filter.Tag != "" {
		tx.Where("LOWER(t.name) = ?", strings.ToLower(filter.Tag))
	}
}

var sortableFields = map[string]bool{
	"company_name": true,
	"job_title":    true,
	"date_applied": true,
	"date_added":   true,
	"salary_min":   true,
	"priority":     true,
	"status":       true,
}

func (i impl) addSort(tx *gorm.DB, sort string) {
	if sort != "" {
		parts := strings.SplitN(sort, ":", 2)
		if sortableFields[parts[0]] {
			direction := "ASC"
			if len(parts) == 2 && parts[1] == "desc" {
				direction = "DESC"
			}
			tx.Order("applications." + parts[0] + " " + direction)
			return
		}
	}
	tx.Order("applications.date_added DESC")
}
