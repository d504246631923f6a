package calendar

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/models"
	calendarapimodels "job-tracker-backend/models/api/calendar"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	GetEvents() ([]calendarapimodels.CalendarEvent, error)
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

func (i impl) GetEvents() ([]calendarapimodels.CalendarEvent, error) {
	list, err := i.applicationProvider.ListWithHistory()
	if err != nil {
		log.WithError(err).Error("ошибка получения заявок для календаря")
		return nil, errors.New("ошибка получения заявок для календаря")
	}
	return ExtractEvents(list), nil
}

// Заметки журнала несут даты в виде "<метка>: 2024-01-15T10:00" -
// формат диалога запроса даты при смене статуса.
var notesDatePattern = regexp.MustCompile(`:\s*(\d{4}-\d{2}-\d{2}(?:T\d{2}:\d{2})?)`)

// Статусы, для которых при отсутствии даты в журнале событие
// выводится по дате добавления заявки.
var interviewStatuses = map[models.ApplicationStatus]bool{
	models.StatusPhoneScreen:        true,
	models.StatusTechnicalInterview: true,
	models.StatusFinalRound:         true,
}

// ExtractEvents - чистая функция: снимок заявок с историей -> плоский
// список датированных событий. Нечитаемые заметки молча пропускаются,
// на остальные правила это не влияет.
func ExtractEvents(list []dbmodels.Application) []calendarapimodels.CalendarEvent {
	events := []calendarapimodels.CalendarEvent{}
	for _, rec := range list {
		if rec.DateApplied != nil {
			events = append(events, calendarapimodels.CalendarEvent{
				ApplicationID: rec.ID,
				Date:          rec.DateApplied.Format(time.RFC3339),
				Title:         "Applied: " + rec.JobTitle,
				CompanyName:   rec.CompanyName,
				Type:          calendarapimodels.EventApplied,
				Status:        rec.Status,
			})
		}
		if rec.FollowUpDate != nil {
			events = append(events, calendarapimodels.CalendarEvent{
				ApplicationID: rec.ID,
				Date:          rec.FollowUpDate.Format(time.RFC3339),
				Title:         "Follow-up: " + rec.JobTitle,
				CompanyName:   rec.CompanyName,
				Type:          calendarapimodels.EventFollowUp,
				Status:        rec.Status,
			})
		}
		currentStatusDated := false
		for _, entry := range rec.StatusHistory {
			if entry.Notes == nil {
				continue
			}
			match := notesDatePattern.FindStringSubmatch(*entry.Notes)
			if match == nil {
				continue
			}
			// запасное правило гасится уже по совпадению шаблона,
			// даже если дата в итоге не разобралась
			if entry.ToStatus == rec.Status {
				currentStatusDated = true
			}
			parsed, err := parseNotesDate(match[1])
			if err != nil {
				continue
			}
			eventType := calendarapimodels.EventInterview
			if strings.Contains(strings.ToLower(*entry.Notes), "deadline") {
				eventType = calendarapimodels.EventDeadline
			}
			events = append(events, calendarapimodels.CalendarEvent{
				ApplicationID: rec.ID,
				Date:          parsed.Format(time.RFC3339),
				Title:         entry.ToStatus.Label() + ": " + rec.JobTitle,
				CompanyName:   rec.CompanyName,
				Type:          eventType,
				Status:        entry.ToStatus,
			})
		}
		// запасное правило: заявка на этапе интервью без явной даты
		if interviewStatuses[rec.Status] && !currentStatusDated {
			events = append(events, calendarapimodels.CalendarEvent{
				ApplicationID: rec.ID,
				Date:          rec.DateAdded.Format(time.RFC3339),
				Title:         rec.Status.Label() + ": " + rec.JobTitle,
				CompanyName:   rec.CompanyName,
				Type:          calendarapimodels.EventInterview,
				Status:        rec.Status,
			})
		}
	}
	return events
}

func parseNotesDate(value string) (time.Time, error) {
	if strings.Contains(value, "T") {
		return time.Parse("2006-01-02T15:04", value)
	}
	return time.Parse("2006-01-02", value)
}
