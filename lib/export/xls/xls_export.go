package xlsexport

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"job-tracker-backend/lib/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	ExportApplications() (*bytes.Buffer, error)
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

var xlsHeaders = []string{
	"Company", "Job Title", "Status", "Priority", "Source", "Work Mode",
	"Location", "Salary Min", "Salary Max", "Currency", "Date Added",
	"Date Applied", "Follow-up", "Tags", "Notes",
}

func (i impl) ExportApplications() (*bytes.Buffer, error) {
	list, err := i.applicationProvider.ListWithHistory()
	if err != nil {
		log.WithError(err).Error("ошибка получения заявок для выгрузки в Excel")
		return nil, errors.New("ошибка получения заявок для выгрузки в Excel")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла Excel")
		}
	}()
	sheet := "Applications"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.WithError(err).Warn("не удалось удалить лист по умолчанию")
	}

	row, err := writeHeader(f, sheet, 0, xlsHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка записи заголовка")
	}
	for _, rec := range list {
		row++
		if err := writeApplication(f, sheet, row, rec); err != nil {
			return nil, errors.Wrap(err, "ошибка записи строки")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения файла Excel")
	}
	return buf, nil
}

func writeApplication(f *excelize.File, sheet string, row int, rec dbmodels.Application) error {
	tags := make([]string, 0, len(rec.Tags))
	for _, tag := range rec.Tags {
		tags = append(tags, tag.Name)
	}
	location := rec.LocationCity
	if rec.LocationCountry != "" {
		if location != "" {
			location += ", "
		}
		location += rec.LocationCountry
	}
	values := []interface{}{
		rec.CompanyName,
		rec.JobTitle,
		rec.Status.Label(),
		string(rec.Priority),
		string(rec.Source),
		string(rec.WorkMode),
		location,
		intPtrValue(rec.SalaryMin),
		intPtrValue(rec.SalaryMax),
		rec.SalaryCurrency,
		rec.DateAdded.Format("02.01.2006"),
		datePtrValue(rec.DateApplied),
		datePtrValue(rec.FollowUpDate),
		strings.Join(tags, ", "),
		rec.Notes,
	}
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func intPtrValue(value *int) interface{} {
	if value == nil {
		return ""
	}
	return *value
}

func datePtrValue(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("02.01.2006")
}
