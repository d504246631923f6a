package tag

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	tagstore "job-tracker-backend/lib/tag/store"
	"job-tracker-backend/models"
	tagapimodels "job-tracker-backend/models/api/tag"
)

type Provider interface {
	List() ([]tagapimodels.TagView, error)
	Create(data tagapimodels.TagData) (tagapimodels.TagView, error)
	Rename(id string, data tagapimodels.TagData) error
	Delete(id string) error
	Merge(req tagapimodels.MergeRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: tagstore.NewInstance(db.DB),
	}
}

type impl struct {
	store tagstore.Provider
}

func (i impl) List() ([]tagapimodels.TagView, error) {
	list, err := i.store.ListWithUsage()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка тегов")
		return nil, errors.New("ошибка получения списка тегов")
	}
	result := make([]tagapimodels.TagView, 0, len(list))
	for _, rec := range list {
		result = append(result, tagapimodels.Convert(rec.Tag, rec.UsageCount))
	}
	return result, nil
}

// Create - upsert по имени: повторное создание возвращает существующий тег.
func (i impl) Create(data tagapimodels.TagData) (tagapimodels.TagView, error) {
	if err := data.Validate(); err != nil {
		return tagapimodels.TagView{}, err
	}
	rec, err := i.store.UpsertByName(data.Name)
	if err != nil {
		log.WithField("tag_name", data.Name).WithError(err).Error("ошибка создания тега")
		return tagapimodels.TagView{}, errors.New("ошибка создания тега")
	}
	return tagapimodels.Convert(*rec, 0), nil
}

func (i impl) Rename(id string, data tagapimodels.TagData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return i.store.Rename(id, data.Name)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Merge(req tagapimodels.MergeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := i.store.Merge(req.SourceID, req.TargetID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		log.
			WithField("source_id", req.SourceID).
			WithField("target_id", req.TargetID).
			WithError(err).
			Error("ошибка слияния тегов")
		return errors.New("ошибка слияния тегов")
	}
	return nil
}
