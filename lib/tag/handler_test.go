package tag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	tagstore "job-tracker-backend/lib/tag/store"
	"job-tracker-backend/models"
	tagapimodels "job-tracker-backend/models/api/tag"
	dbmodels "job-tracker-backend/models/db"
)

type fakeTagStore struct {
	tags   []tagstore.TagWithUsage
	merged [][2]string
}

func (f *fakeTagStore) ListWithUsage() ([]tagstore.TagWithUsage, error) {
	return f.tags, nil
}

func (f *fakeTagStore) GetByID(id string) (*dbmodels.Tag, error) {
	for _, rec := range f.tags {
		if rec.ID == id {
			tag := rec.Tag
			return &tag, nil
		}
	}
	return nil, nil
}

func (f *fakeTagStore) UpsertByName(name string) (*dbmodels.Tag, error) {
	for _, rec := range f.tags {
		if strings.EqualFold(rec.Name, name) {
			tag := rec.Tag
			return &tag, nil
		}
	}
	rec := dbmodels.Tag{BaseModel: dbmodels.BaseModel{ID: "t-new"}, Name: name}
	f.tags = append(f.tags, tagstore.TagWithUsage{Tag: rec})
	return &rec, nil
}

func (f *fakeTagStore) Rename(id, name string) error {
	for idx, rec := range f.tags {
		if rec.ID == id {
			f.tags[idx].Name = name
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeTagStore) Delete(id string) error { return nil }

func (f *fakeTagStore) Merge(sourceID, targetID string) error {
	found := 0
	for _, rec := range f.tags {
		if rec.ID == sourceID || rec.ID == targetID {
			found++
		}
	}
	if found != 2 {
		return models.ErrNotFound
	}
	f.merged = append(f.merged, [2]string{sourceID, targetID})
	return nil
}

func storedTag(id, name string, usage int64) tagstore.TagWithUsage {
	return tagstore.TagWithUsage{
		Tag:        dbmodels.Tag{BaseModel: dbmodels.BaseModel{ID: id}, Name: name},
		UsageCount: usage,
	}
}

func TestTagHandler(t *testing.T) {
	t.Run(`список с количеством использований`, func(t *testing.T) {
		store := &fakeTagStore{tags: []tagstore.TagWithUsage{
			storedTag("t1", "go", 3),
			storedTag("t2", "remote", 0),
		}}
		handler := impl{store: store}
		list, err := handler.List()
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "go", list[0].Name)
		require.Equal(t, int64(3), list[0].UsageCount)
	})

	t.Run(`создание - upsert без учёта регистра`, func(t *testing.T) {
		store := &fakeTagStore{tags: []tagstore.TagWithUsage{storedTag("t1", "go", 1)}}
		handler := impl{store: store}
		view, err := handler.Create(tagapimodels.TagData{Name: "GO"})
		require.Nil(t, err)
		require.Equal(t, "t1", view.ID)
		require.Len(t, store.tags, 1)
	})

	t.Run(`создание без имени - ошибка валидации`, func(t *testing.T) {
		handler := impl{store: &fakeTagStore{}}
		_, err := handler.Create(tagapimodels.TagData{})
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run(`слияние тега с самим собой запрещено`, func(t *testing.T) {
		handler := impl{store: &fakeTagStore{}}
		err := handler.Merge(tagapimodels.MergeRequest{SourceID: "t1", TargetID: "t1"})
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run(`слияние с отсутствующим тегом - not found`, func(t *testing.T) {
		store := &fakeTagStore{tags: []tagstore.TagWithUsage{storedTag("t1", "go", 0)}}
		handler := impl{store: store}
		err := handler.Merge(tagapimodels.MergeRequest{SourceID: "t1", TargetID: "t2"})
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run(`успешное слияние доходит до стора`, func(t *testing.T) {
		store := &fakeTagStore{tags: []tagstore.TagWithUsage{
			storedTag("t1", "golang", 2),
			storedTag("t2", "go", 5),
		}}
		handler := impl{store: store}
		err := handler.Merge(tagapimodels.MergeRequest{SourceID: "t1", TargetID: "t2"})
		require.Nil(t, err)
		require.Equal(t, [][2]string{{"t1", "t2"}}, store.merged)
	})

	t.Run(`переименование отсутствующего тега`, func(t *testing.T) {
		handler := impl{store: &fakeTagStore{}}
		err := handler.Rename("missing", tagapimodels.TagData{Name: "new"})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
