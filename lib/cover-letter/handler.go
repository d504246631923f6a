package coverletter

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	coverletterstore "job-tracker-backend/lib/cover-letter/store"
	pdfexport "job-tracker-backend/lib/export/pdf"
	"job-tracker-backend/models"
	coverletterapimodels "job-tracker-backend/models/api/cover-letter"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(data coverletterapimodels.CoverLetterData) (coverletterapimodels.CoverLetterView, error)
	ListFor(applicationID string) ([]coverletterapimodels.CoverLetterView, error)
	GetByID(id string) (coverletterapimodels.CoverLetterView, error)
	Update(id string, data coverletterapimodels.CoverLetterData) error
	Delete(id string) error
	ExportPdf(id string) (fileName string, content *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            coverletterstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            coverletterstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Create(data coverletterapimodels.CoverLetterData) (coverletterapimodels.CoverLetterView, error) {
	rec := dbmodels.CoverLetter{
		ApplicationID: data.ApplicationID,
		Title:         data.Title,
		Body:          data.Body,
	}
	if err := rec.Validate(); err != nil {
		return coverletterapimodels.CoverLetterView{}, err
	}
	app, err := i.applicationStore.GetByID(data.ApplicationID)
	if err != nil {
		return coverletterapimodels.CoverLetterView{}, err
	}
	if app == nil {
		return coverletterapimodels.CoverLetterView{}, errors.Wrap(models.ErrNotFound, "заявка не найдена")
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithField("application_id", data.ApplicationID).WithError(err).Error("ошибка создания сопроводительного письма")
		return coverletterapimodels.CoverLetterView{}, errors.New("ошибка создания сопроводительного письма")
	}
	return i.GetByID(id)
}

func (i impl) ListFor(applicationID string) ([]coverletterapimodels.CoverLetterView, error) {
	list, err := i.store.ListFor(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка получения списка писем")
		return nil, errors.New("ошибка получения списка писем")
	}
	result := make([]coverletterapimodels.CoverLetterView, 0, len(list))
	for _, rec := range list {
		result = append(result, coverletterapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (coverletterapimodels.CoverLetterView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return coverletterapimodels.CoverLetterView{}, err
	}
	if rec == nil {
		return coverletterapimodels.CoverLetterView{}, errors.Wrap(models.ErrNotFound, "сопроводительное письмо не найдено")
	}
	return coverletterapimodels.Convert(*rec), nil
}

func (i impl) Update(id string, data coverletterapimodels.CoverLetterData) error {
	if data.Body == "" {
		return errors.Wrap(models.ErrValidation, "пустой текст сопроводительного письма")
	}
	return i.store.Update(id, map[string]interface{}{
		"title": data.Title,
		"body":  data.Body,
		// ручная правка снимает отметку о сгенерированном тексте
		"generated": false,
	})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) ExportPdf(id string) (string, *bytes.Buffer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.Wrap(models.ErrNotFound, "сопроводительное письмо не найдено")
	}
	companyName := ""
	jobTitle := ""
	if app, err := i.applicationStore.GetByID(rec.ApplicationID); err == nil && app != nil {
		companyName = app.CompanyName
		jobTitle = app.JobTitle
	}
	content, err := pdfexport.Instance.ExportCoverLetter(*rec, companyName, jobTitle)
	if err != nil {
		log.WithField("cover_letter_id", id).WithError(err).Error("ошибка экспорта письма в PDF")
		return "", nil, errors.New("ошибка экспорта письма в PDF")
	}
	fileName := "cover-letter.pdf"
	if companyName != "" {
		fileName = companyName + "-cover-letter.pdf"
	}
	return fileName, content, nil
}
