package application

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	tagstore "job-tracker-backend/lib/tag/store"
	"job-tracker-backend/lib/transition"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(data applicationapimodels.ApplicationData) (applicationapimodels.ApplicationView, error)
	Update(id string, data applicationapimodels.ApplicationUpdateData) (applicationapimodels.ApplicationView, error)
	GetByID(id string) (applicationapimodels.ApplicationView, error)
	List(filter dbmodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error)
	ListWithHistory() ([]dbmodels.Application, error)
	Delete(id string) error
	DeleteMany(ids []string) (deleted int64, err error)
	ClearAll() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicationstore.NewInstance(db.DB),
		tagStore: tagstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    applicationstore.Provider
	tagStore tagstore.Provider
}

func (i impl) Create(data applicationapimodels.ApplicationData) (applicationapimodels.ApplicationView, error) {
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	rec := data.ToRecord()
	// создание заявки само по себе переход: null -> начальный статус
	id, err := i.store.Create(rec, transition.CreationEntry(rec.Status))
	if err != nil {
		log.WithError(err).Error("ошибка создания заявки")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка создания заявки")
	}
	if len(data.Tags) != 0 {
		if err := i.applyTags(id, data.Tags); err != nil {
			log.WithField("application_id", id).WithError(err).Error("ошибка привязки тегов")
		}
	}
	log.
		WithField("application_id", id).
		WithField("company_name", rec.CompanyName).
		Info("заявка создана")
	return i.GetByID(id)
}

// Update - частичное обновление. Смена статуса не пишется напрямую,
// а уходит в движок переходов, иначе журнал разойдётся с заявкой.
func (i impl) Update(id string, data applicationapimodels.ApplicationUpdateData) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	updMap, err := buildUpdateMap(rec, data)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if len(updMap) != 0 {
		if err := i.store.Update(id, updMap); err != nil {
			return applicationapimodels.ApplicationView{}, err
		}
	}
	if data.Tags != nil {
		if err := i.applyTags(id, data.Tags); err != nil {
			log.WithField("application_id", id).WithError(err).Error("ошибка привязки тегов")
		}
	}
	if data.Status != nil && *data.Status != rec.Status {
		if _, err := transition.Instance.RequestTransition(id, *data.Status, ""); err != nil {
			return applicationapimodels.ApplicationView{}, err
		}
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	return applicationapimodels.ConvertExt(*rec), nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок")
		return nil, errors.New("ошибка получения списка заявок")
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) ListWithHistory() ([]dbmodels.Application, error) {
	return i.store.ListWithHistory()
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) DeleteMany(ids []string) (int64, error) {
	return i.store.DeleteMany(ids)
}

func (i impl) ClearAll() error {
	return i.store.ClearAll()
}

func (i impl) applyTags(id string, names []string) error {
	tags := make([]dbmodels.Tag, 0, len(names))
	for _, name := range names {
		tag, err := i.tagStore.UpsertByName(name)
		if err != nil {
			return err
		}
		tags = append(tags, *tag)
	}
	return i.store.ReplaceTags(id, tags)
}

func buildUpdateMap(rec *dbmodels.Application, data applicationapimodels.ApplicationUpdateData) (map[string]interface{}, error) {
	updMap := map[string]interface{}{}
	if data.CompanyName != nil {
		if *data.CompanyName == "" {
			return nil, errors.Wrap(models.ErrValidation, "не указано название компании")
		}
		updMap["company_name"] = *data.CompanyName
	}
	if data.JobTitle != nil {
		if *data.JobTitle == "" {
			return nil, errors.Wrap(models.ErrValidation, "не указано название позиции")
		}
		updMap["job_title"] = *data.JobTitle
	}
	if data.CompanyWebsite != nil {
		updMap["company_website"] = *data.CompanyWebsite
	}
	if data.CompanySize != nil {
		if *data.CompanySize != "" && !data.CompanySize.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "неизвестный размер компании (%v)", *data.CompanySize)
		}
		updMap["company_size"] = *data.CompanySize
	}
	if data.JobURL != nil {
		updMap["job_url"] = *data.JobURL
	}
	if data.JobDescriptionRaw != nil {
		updMap["job_description_raw"] = *data.JobDescriptionRaw
	}
	if data.SalaryMin != nil || data.SalaryMax != nil {
		newMin := rec.SalaryMin
		newMax := rec.SalaryMax
		if data.SalaryMin != nil {
			newMin = data.SalaryMin
			updMap["salary_min"] = *data.SalaryMin
		}
		if data.SalaryMax != nil {
			newMax = data.SalaryMax
			updMap["salary_max"] = *data.SalaryMax
		}
		if newMin != nil && *newMin < 0 {
			return nil, errors.Wrap(models.ErrValidation, "нижняя граница зарплаты не может быть отрицательной")
		}
		if newMax != nil && *newMax < 0 {
			return nil, errors.Wrap(models.ErrValidation, "верхняя граница зарплаты не может быть отрицательной")
		}
		if newMin != nil && newMax != nil && *newMin > *newMax {
			return nil, errors.Wrap(models.ErrValidation, "нижняя граница зарплаты больше верхней")
		}
	}
	if data.SalaryCurrency != nil {
		updMap["salary_currency"] = *data.SalaryCurrency
	}
	if data.CompensationType != nil {
		if *data.CompensationType != "" && !data.CompensationType.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "неизвестный тип компенсации (%v)", *data.CompensationType)
		}
		updMap["compensation_type"] = *data.CompensationType
	}
	if data.SalaryNotSpecified != nil {
		updMap["salary_not_specified"] = *data.SalaryNotSpecified
	}
	if data.LocationCity != nil {
		updMap["location_city"] = *data.LocationCity
	}
	if data.LocationCountry != nil {
		updMap["location_country"] = *data.LocationCountry
	}
	if data.WorkMode != nil {
		if *data.WorkMode != "" && !data.WorkMode.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "неизвестный формат работы (%v)", *data.WorkMode)
		}
		updMap["work_mode"] = *data.WorkMode
	}
	if data.DateApplied != nil {
		value, err := parseNullableDate(*data.DateApplied)
		if err != nil {
			return nil, errors.Wrap(models.ErrValidation, "некорректный формат даты подачи")
		}
		updMap["date_applied"] = value
	}
	if data.MatchScore != nil {
		if *data.MatchScore < 1 || *data.MatchScore > 5 {
			return nil, errors.Wrap(models.ErrValidation, "оценка соответствия должна быть от 1 до 5")
		}
		updMap["match_score"] = *data.MatchScore
	}
	if data.Source != nil {
		if *data.Source != "" && !data.Source.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "неизвестный источник (%v)", *data.Source)
		}
		updMap["source"] = *data.Source
	}
	if data.ContactName != nil {
		updMap["contact_name"] = *data.ContactName
	}
	if data.ContactEmail != nil {
		updMap["contact_email"] = *data.ContactEmail
	}
	if data.ContactRole != nil {
		updMap["contact_role"] = *data.ContactRole
	}
	if data.Notes != nil {
		updMap["notes"] = *data.Notes
	}
	if data.Priority != nil {
		if !data.Priority.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "неизвестный приоритет (%v)", *data.Priority)
		}
		updMap["priority"] = *data.Priority
	}
	if data.FollowUpDate != nil {
		value, err := parseNullableDate(*data.FollowUpDate)
		if err != nil {
			return nil, errors.Wrap(models.ErrValidation, "некорректный формат даты напоминания")
		}
		updMap["follow_up_date"] = value
	}
	if data.ResumeID != nil {
		if *data.ResumeID == "" {
			updMap["resume_id"] = nil
		} else {
			updMap["resume_id"] = *data.ResumeID
		}
	}
	if data.CoverLetterNotes != nil {
		updMap["cover_letter_notes"] = *data.CoverLetterNotes
	}
	// статус и date_added через updMap не меняются:
	// date_added неизменяем, статус идёт через движок переходов
	return updMap, nil
}

// parseNullableDate: пустая строка означает сброс даты в null.
func parseNullableDate(value string) (interface{}, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, err
		}
	}
	return parsed, nil
}
