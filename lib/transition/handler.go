package transition

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

// Provider - единственный разрешённый путь смены Application.Status.
// Прямые записи статуса мимо движка ломают инвариант
// "у каждого статуса есть запись в журнале".
type Provider interface {
	RequestTransition(id string, target models.ApplicationStatus, operatorValue string) (*dbmodels.Application, error)
	RequestBulkTransition(ids []string, target models.ApplicationStatus) (updated int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store applicationstore.Provider
}

const creationNotes = "Application created"

// CreationEntry - запись журнала для только что созданной заявки:
// переход из "ниоткуда" в начальный статус.
func CreationEntry(initial models.ApplicationStatus) dbmodels.StatusHistory {
	notes := creationNotes
	return dbmodels.StatusHistory{
		FromStatus: nil,
		ToStatus:   initial,
		Notes:      &notes,
	}
}

func (i impl) RequestTransition(id string, target models.ApplicationStatus, operatorValue string) (*dbmodels.Application, error) {
	if !target.IsValid() {
		return nil, errors.Wrapf(models.ErrInvalidTransition, "неизвестный статус (%v)", target)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	// UI отсекает no-op переходы сам, но движок обязан защищаться
	if rec.Status == target {
		return nil, errors.Wrapf(models.ErrInvalidTransition, "заявка уже в статусе (%v)", target)
	}

	entry := dbmodels.StatusHistory{
		FromStatus: statusPtr(rec.Status),
		ToStatus:   target,
		Notes:      buildNotes(target, operatorValue),
	}
	if err := i.store.ApplyTransition(id, i.buildUpdates(rec, target), entry); err != nil {
		return nil, err
	}
	log.
		WithField("application_id", id).
		WithField("from_status", rec.Status).
		WithField("to_status", target).
		Info("статус заявки изменён")
	return i.store.GetByID(id)
}

// RequestBulkTransition применяет переход к каждой заявке независимо:
// атомарность важна на уровне записи, а не всего набора. Несуществующие
// идентификаторы пропускаются. Заметки при массовой смене не пишутся.
func (i impl) RequestBulkTransition(ids []string, target models.ApplicationStatus) (updated int, err error) {
	if !target.IsValid() {
		return 0, errors.Wrapf(models.ErrInvalidTransition, "неизвестный статус (%v)", target)
	}
	for _, id := range ids {
		rec, err := i.store.GetByID(id)
		if err != nil {
			return updated, err
		}
		if rec == nil {
			continue
		}
		entry := dbmodels.StatusHistory{
			FromStatus: statusPtr(rec.Status),
			ToStatus:   target,
		}
		if err := i.store.ApplyTransition(id, i.buildUpdates(rec, target), entry); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return updated, err
		}
		updated++
	}
	log.
		WithField("to_status", target).
		WithField("updated", updated).
		Info("массовая смена статуса выполнена")
	return updated, nil
}

// buildUpdates: помимо статуса движок трогает только date_applied,
// и только при первом переходе в applied.
func (i impl) buildUpdates(rec *dbmodels.Application, target models.ApplicationStatus) map[string]interface{} {
	updMap := map[string]interface{}{
		"status": target,
	}
	if target == models.StatusApplied && rec.DateApplied == nil {
		updMap["date_applied"] = time.Now()
	}
	return updMap
}

func buildNotes(target models.ApplicationStatus, operatorValue string) *string {
	if models.SuppressesPrompt(target) {
		return nil
	}
	spec := models.NeedsDatePrompt(target)
	if spec == nil || operatorValue == "" {
		// пропуск даты оператором - не ошибка, просто без заметки
		return nil
	}
	notes := spec.Label + ": " + operatorValue
	return &notes
}

func statusPtr(s models.ApplicationStatus) *models.ApplicationStatus {
	return &s
}
