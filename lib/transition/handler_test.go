package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type fakeStore struct {
	recs        map[string]*dbmodels.Application
	lastUpdates map[string]interface{}
	lastEntry   *dbmodels.StatusHistory
}

func newFakeStore(recs ...*dbmodels.Application) *fakeStore {
	store := &fakeStore{recs: map[string]*dbmodels.Application{}}
	for _, rec := range recs {
		store.recs[rec.ID] = rec
	}
	return store
}

func (f *fakeStore) Create(rec dbmodels.Application, entry dbmodels.StatusHistory) (string, error) {
	f.recs[rec.ID] = &rec
	f.lastEntry = &entry
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	if _, ok := f.recs[id]; !ok {
		return models.ErrNotFound
	}
	f.lastUpdates = updMap
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeStore) List(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeStore) ListWithHistory() ([]dbmodels.Application, error) { return nil, nil }

func (f *fakeStore) ListDueFollowUps(asOf time.Time) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeStore) Delete(id string) error { return nil }

func (f *fakeStore) DeleteMany(ids []string) (int64, error) { return 0, nil }

func (f *fakeStore) ApplyTransition(id string, updMap map[string]interface{}, entry dbmodels.StatusHistory) error {
	rec, ok := f.recs[id]
	if !ok {
		return models.ErrNotFound
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.ApplicationStatus)
	}
	if value, ok := updMap["date_applied"]; ok {
		date := value.(time.Time)
		rec.DateApplied = &date
	}
	f.lastUpdates = updMap
	f.lastEntry = &entry
	rec.StatusHistory = append(rec.StatusHistory, entry)
	return nil
}

func (f *fakeStore) ReplaceTags(id string, tags []dbmodels.Tag) error { return nil }

func (f *fakeStore) ClearAll() error { return nil }

func app(id string, status models.ApplicationStatus) *dbmodels.Application {
	return &dbmodels.Application{
		BaseModel: dbmodels.BaseModel{ID: id},
		Status:    status,
		DateAdded: time.Now(),
	}
}

func TestRequestTransition(t *testing.T) {
	t.Run(`неизвестный целевой статус`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		_, err := handler.RequestTransition("a1", "ghosted", "")
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run(`заявка не найдена`, func(t *testing.T) {
		store := newFakeStore()
		handler := impl{store: store}
		_, err := handler.RequestTransition("missing", models.StatusApplied, "")
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run(`переход в тот же статус отклоняется`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusApplied))
		handler := impl{store: store}
		_, err := handler.RequestTransition("a1", models.StatusApplied, "")
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run(`успешный переход пишет журнал`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		rec, err := handler.RequestTransition("a1", models.StatusPhoneScreen, "2024-03-10T15:00")
		require.Nil(t, err)
		require.Equal(t, models.StatusPhoneScreen, rec.Status)
		require.NotNil(t, store.lastEntry)
		require.NotNil(t, store.lastEntry.FromStatus)
		require.Equal(t, models.StatusSaved, *store.lastEntry.FromStatus)
		require.Equal(t, models.StatusPhoneScreen, store.lastEntry.ToStatus)
		require.NotNil(t, store.lastEntry.Notes)
		require.Equal(t, "Phone Screen Date & Time: 2024-03-10T15:00", *store.lastEntry.Notes)
	})

	t.Run(`пропуск даты оператором - заметки нет`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		_, err := handler.RequestTransition("a1", models.StatusOffer, "")
		require.Nil(t, err)
		require.Nil(t, store.lastEntry.Notes)
	})

	t.Run(`rejected и withdrawn проходят молча`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusOffer))
		handler := impl{store: store}
		_, err := handler.RequestTransition("a1", models.StatusRejected, "2024-03-10")
		require.Nil(t, err)
		// даже с переданным значением заметка не пишется
		require.Nil(t, store.lastEntry.Notes)
	})

	t.Run(`первый переход в applied ставит date_applied`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		rec, err := handler.RequestTransition("a1", models.StatusApplied, "")
		require.Nil(t, err)
		require.NotNil(t, rec.DateApplied)
	})

	t.Run(`повторный заход в applied дату не трогает`, func(t *testing.T) {
		rec := app("a1", models.StatusPhoneScreen)
		applied := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		rec.DateApplied = &applied
		store := newFakeStore(rec)
		handler := impl{store: store}
		updated, err := handler.RequestTransition("a1", models.StatusApplied, "")
		require.Nil(t, err)
		require.Equal(t, applied, *updated.DateApplied)
		_, touched := store.lastUpdates["date_applied"]
		require.False(t, touched)
	})
}

func TestRequestBulkTransition(t *testing.T) {
	t.Run(`несуществующие идентификаторы пропускаются`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved), app("a2", models.StatusSaved))
		handler := impl{store: store}
		updated, err := handler.RequestBulkTransition([]string{"a1", "missing", "a2"}, models.StatusRejected)
		require.Nil(t, err)
		require.Equal(t, 2, updated)
	})

	t.Run(`массовый переход не пишет заметок`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		_, err := handler.RequestBulkTransition([]string{"a1"}, models.StatusPhoneScreen)
		require.Nil(t, err)
		require.Nil(t, store.lastEntry.Notes)
	})

	t.Run(`неизвестный статус отклоняется целиком`, func(t *testing.T) {
		store := newFakeStore(app("a1", models.StatusSaved))
		handler := impl{store: store}
		_, err := handler.RequestBulkTransition([]string{"a1"}, "ghosted")
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})
}

func TestCreationEntry(t *testing.T) {
	entry := CreationEntry(models.StatusSaved)
	require.Nil(t, entry.FromStatus)
	require.Equal(t, models.StatusSaved, entry.ToStatus)
	require.NotNil(t, entry.Notes)
	require.Equal(t, "Application created", *entry.Notes)
}
