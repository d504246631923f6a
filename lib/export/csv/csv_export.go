package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	ExportCsv() (*bytes.Buffer, error)
	ExportJson() (*bytes.Buffer, error)
	ImportCsv(content []byte) (imported int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationProvider: application.Instance,
	}
}

type impl struct {
	applicationProvider application.Provider
}

// Порядок колонок - контракт экспорта, идентификаторы статусов
// уходят в файл как есть и так же возвращаются при импорте.
var csvHeaders = []string{
	"company_name", "company_website", "company_size", "job_title", "job_url",
	"job_description_raw", "salary_min", "salary_max", "salary_currency",
	"compensation_type", "salary_not_specified", "location_city", "location_country",
	"work_mode", "status", "date_applied", "date_added", "match_score", "source",
	"contact_name", "contact_email", "contact_role", "notes", "priority",
	"follow_up_date", "cover_letter_notes", "tags",
}

func (i impl) ExportCsv() (*bytes.Buffer, error) {
	list, err := i.applicationProvider.ListWithHistory()
	if err != nil {
		log.WithError(err).Error("ошибка получения заявок для экспорта")
		return nil, errors.New("ошибка получения заявок для экспорта")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, rec := range list {
		if err := writer.Write(toRow(rec)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (i impl) ExportJson() (*bytes.Buffer, error) {
	list, err := i.applicationProvider.ListWithHistory()
	if err != nil {
		log.WithError(err).Error("ошибка получения заявок для экспорта")
		return nil, errors.New("ошибка получения заявок для экспорта")
	}
	views := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		views = append(views, applicationapimodels.Convert(rec))
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(data), nil
}

// ImportCsv создаёт заявку на каждую строку файла. Создание идёт через
// обычный путь, так что запись журнала о создании и теги не теряются.
// Строки с ошибками валидации пропускаются.
func (i impl) ImportCsv(content []byte) (imported int, err error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, errors.Wrap(models.ErrValidation, "не удалось разобрать CSV")
	}
	if len(rows) < 2 {
		return 0, errors.Wrap(models.ErrValidation, "в CSV нет строк с данными")
	}
	headers := rows[0]
	for _, row := range rows[1:] {
		data := rowToData(headers, row)
		if _, err := i.applicationProvider.Create(data); err != nil {
			log.WithField("company_name", data.CompanyName).WithError(err).Warn("строка импорта пропущена")
			continue
		}
		imported++
	}
	return imported, nil
}

func toRow(rec dbmodels.Application) []string {
	tags := make([]string, 0, len(rec.Tags))
	for _, tag := range rec.Tags {
		tags = append(tags, tag.Name)
	}
	return []string{
		rec.CompanyName,
		rec.CompanyWebsite,
		string(rec.CompanySize),
		rec.JobTitle,
		rec.JobURL,
		rec.JobDescriptionRaw,
		intPtrString(rec.SalaryMin),
		intPtrString(rec.SalaryMax),
		rec.SalaryCurrency,
		string(rec.CompensationType),
		strconv.FormatBool(rec.SalaryNotSpecified),
		rec.LocationCity,
		rec.LocationCountry,
		string(rec.WorkMode),
		string(rec.Status),
		datePtrString(rec.DateApplied),
		rec.DateAdded.Format("2006-01-02"),
		intPtrString(rec.MatchScore),
		string(rec.Source),
		rec.ContactName,
		rec.ContactEmail,
		rec.ContactRole,
		rec.Notes,
		string(rec.Priority),
		datePtrString(rec.FollowUpDate),
		rec.CoverLetterNotes,
		strings.Join(tags, ","),
	}
}

func rowToData(headers []string, row []string) applicationapimodels.ApplicationData {
	values := map[string]string{}
	for idx, header := range headers {
		if idx < len(row) {
			values[strings.TrimSpace(header)] = strings.TrimSpace(row[idx])
		}
	}
	data := applicationapimodels.ApplicationData{
		CompanyName:       values["company_name"],
		CompanyWebsite:    values["company_website"],
		CompanySize:       models.CompanySize(values["company_size"]),
		JobTitle:          values["job_title"],
		JobURL:            values["job_url"],
		JobDescriptionRaw: values["job_description_raw"],
		SalaryCurrency:    values["salary_currency"],
		CompensationType:  models.CompensationType(values["compensation_type"]),
		LocationCity:      values["location_city"],
		LocationCountry:   values["location_country"],
		WorkMode:          models.WorkMode(values["work_mode"]),
		Status:            models.ApplicationStatus(values["status"]),
		DateApplied:       values["date_applied"],
		Source:            models.ApplicationSource(values["source"]),
		ContactName:       values["contact_name"],
		ContactEmail:      values["contact_email"],
		ContactRole:       values["contact_role"],
		Notes:             values["notes"],
		Priority:          models.Priority(values["priority"]),
		FollowUpDate:      values["follow_up_date"],
		CoverLetterNotes:  values["cover_letter_notes"],
	}
	if value, err := strconv.Atoi(values["salary_min"]); err == nil {
		data.SalaryMin = &value
	}
	if value, err := strconv.Atoi(values["salary_max"]); err == nil {
		data.SalaryMax = &value
	}
	if value, err := strconv.ParseBool(values["salary_not_specified"]); err == nil {
		data.SalaryNotSpecified = value
	}
	if value, err := strconv.Atoi(values["match_score"]); err == nil {
		data.MatchScore = &value
	}
	if values["tags"] != "" {
		for _, name := range strings.Split(values["tags"], ",") {
			if name = strings.TrimSpace(name); name != "" {
				data.Tags = append(data.Tags, name)
			}
		}
	}
	return data
}

func intPtrString(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func datePtrString(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}
