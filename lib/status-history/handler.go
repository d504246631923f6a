package statushistoryhandler

import (
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	statushistorystore "job-tracker-backend/lib/status-history/store"
	applicationapimodels "job-tracker-backend/models/api/application"
)

type Provider interface {
	ListFor(applicationID string) ([]applicationapimodels.StatusHistoryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: statushistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store statushistorystore.Provider
}

func (i impl) ListFor(applicationID string) ([]applicationapimodels.StatusHistoryView, error) {
	list, err := i.store.ListFor(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка получения журнала статусов")
		return nil, err
	}
	result := make([]applicationapimodels.StatusHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ConvertHistory(rec))
	}
	return result, nil
}
