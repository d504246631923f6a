package resume

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	filestorage "job-tracker-backend/lib/file-storage"
	resumestore "job-tracker-backend/lib/resume/store"
	"job-tracker-backend/models"
	resumeapimodels "job-tracker-backend/models/api/resume"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, data resumeapimodels.ResumeData, fileName, contentType string, file []byte) (resumeapimodels.ResumeView, error)
	List() ([]resumeapimodels.ResumeView, error)
	GetByID(id string) (resumeapimodels.ResumeView, error)
	Download(ctx context.Context, id string) (fileName, contentType string, content []byte, err error)
	Update(id string, data resumeapimodels.ResumeData) error
	Delete(ctx context.Context, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: resumestore.NewInstance(db.DB),
	}
}

type impl struct {
	store resumestore.Provider
}

func (i impl) Upload(ctx context.Context, data resumeapimodels.ResumeData, fileName, contentType string, file []byte) (resumeapimodels.ResumeView, error) {
	if err := data.Validate(); err != nil {
		return resumeapimodels.ResumeView{}, err
	}
	if len(file) == 0 {
		return resumeapimodels.ResumeView{}, errors.Wrap(models.ErrValidation, "пустой файл резюме")
	}
	fileKey := fmt.Sprintf("resumes/%s", uuid.NewString())
	if err := filestorage.Instance.UploadFile(ctx, fileKey, contentType, bytes.NewReader(file), int64(len(file))); err != nil {
		log.WithField("file_name", fileName).WithError(err).Error("ошибка загрузки файла резюме")
		return resumeapimodels.ResumeView{}, errors.New("ошибка загрузки файла резюме")
	}
	rec := dbmodels.Resume{
		VersionName: data.VersionName,
		FileName:    fileName,
		FileKey:     fileKey,
		ContentType: contentType,
		SizeBytes:   int64(len(file)),
		Notes:       data.Notes,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("file_name", fileName).WithError(err).Error("ошибка сохранения резюме")
		return resumeapimodels.ResumeView{}, errors.New("ошибка сохранения резюме")
	}
	return i.GetByID(id)
}

func (i impl) List() ([]resumeapimodels.ResumeView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка резюме")
		return nil, errors.New("ошибка получения списка резюме")
	}
	result := make([]resumeapimodels.ResumeView, 0, len(list))
	for _, rec := range list {
		result = append(result, resumeapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (resumeapimodels.ResumeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return resumeapimodels.ResumeView{}, err
	}
	if rec == nil {
		return resumeapimodels.ResumeView{}, errors.Wrap(models.ErrNotFound, "резюме не найдено")
	}
	return resumeapimodels.Convert(*rec), nil
}

func (i impl) Download(ctx context.Context, id string) (fileName, contentType string, content []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", "", nil, err
	}
	if rec == nil {
		return "", "", nil, errors.Wrap(models.ErrNotFound, "резюме не найдено")
	}
	content, err = filestorage.Instance.GetFile(ctx, rec.FileKey)
	if err != nil {
		log.WithField("resume_id", id).WithError(err).Error("ошибка получения файла резюме")
		return "", "", nil, errors.New("ошибка получения файла резюме")
	}
	return rec.FileName, rec.ContentType, content, nil
}

func (i impl) Update(id string, data resumeapimodels.ResumeData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return i.store.Update(id, map[string]interface{}{
		"version_name": data.VersionName,
		"notes":        data.Notes,
	})
}

func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "резюме не найдено")
	}
	if rec.FileKey != "" {
		if err := filestorage.Instance.DeleteFile(ctx, rec.FileKey); err != nil {
			// запись удаляем в любом случае, осиротевший объект не критичен
			log.WithField("resume_id", id).WithError(err).Warn("не удалось удалить файл резюме из хранилища")
		}
	}
	return i.store.Delete(id)
}
