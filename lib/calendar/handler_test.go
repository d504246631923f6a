package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-tracker-backend/models"
	calendarapimodels "job-tracker-backend/models/api/calendar"
	dbmodels "job-tracker-backend/models/db"
)

func strPtr(value string) *string { return &value }

func baseApp(status models.ApplicationStatus) dbmodels.Application {
	return dbmodels.Application{
		BaseModel:   dbmodels.BaseModel{ID: "a1"},
		CompanyName: "Acme",
		JobTitle:    "Backend Engineer",
		Status:      status,
		DateAdded:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func eventsOfType(events []calendarapimodels.CalendarEvent, eventType calendarapimodels.EventType) []calendarapimodels.CalendarEvent {
	result := []calendarapimodels.CalendarEvent{}
	for _, event := range events {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}

func TestExtractEvents(t *testing.T) {
	t.Run(`подача и напоминание`, func(t *testing.T) {
		rec := baseApp(models.StatusApplied)
		applied := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		followUp := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
		rec.DateApplied = &applied
		rec.FollowUpDate = &followUp

		events := ExtractEvents([]dbmodels.Application{rec})
		require.Len(t, events, 2)
		require.Equal(t, calendarapimodels.EventApplied, events[0].Type)
		require.Equal(t, "Applied: Backend Engineer", events[0].Title)
		require.Equal(t, calendarapimodels.EventFollowUp, events[1].Type)
		require.Equal(t, "Follow-up: Backend Engineer", events[1].Title)
	})

	t.Run(`дата из заметки журнала`, func(t *testing.T) {
		rec := baseApp(models.StatusPhoneScreen)
		rec.StatusHistory = []dbmodels.StatusHistory{
			{ToStatus: models.StatusPhoneScreen, Notes: strPtr("Phone Screen Date & Time: 2024-03-10T15:00")},
		}
		events := ExtractEvents([]dbmodels.Application{rec})
		interviews := eventsOfType(events, calendarapimodels.EventInterview)
		require.Len(t, interviews, 1)
		require.Equal(t, "Phone Screen: Backend Engineer", interviews[0].Title)
		require.Equal(t, "2024-03-10T15:00:00Z", interviews[0].Date)
		// дата есть в журнале - запасного события по date_added нет
		require.Len(t, events, 1)
	})

	t.Run(`заметка с deadline даёт событие дедлайна`, func(t *testing.T) {
		rec := baseApp(models.StatusOffer)
		rec.StatusHistory = []dbmodels.StatusHistory{
			{ToStatus: models.StatusAccepted, Notes: strPtr("Deadline to Accept/Decline: 2024-03-20")},
		}
		events := ExtractEvents([]dbmodels.Application{rec})
		deadlines := eventsOfType(events, calendarapimodels.EventDeadline)
		require.Len(t, deadlines, 1)
		require.Equal(t, "2024-03-20T00:00:00Z", deadlines[0].Date)
	})

	t.Run(`запасное событие для интервью без даты`, func(t *testing.T) {
		rec := baseApp(models.StatusTechnicalInterview)
		events := ExtractEvents([]dbmodels.Application{rec})
		require.Len(t, events, 1)
		require.Equal(t, calendarapimodels.EventInterview, events[0].Type)
		require.Equal(t, rec.DateAdded.Format(time.RFC3339), events[0].Date)
	})

	t.Run(`совпадение шаблона гасит запасное событие даже при нечитаемой дате`, func(t *testing.T) {
		rec := baseApp(models.StatusFinalRound)
		rec.StatusHistory = []dbmodels.StatusHistory{
			// шаблон совпадает, но дата не парсится (31 февраля)
			{ToStatus: models.StatusFinalRound, Notes: strPtr("Final Round Date & Time: 2024-02-31")},
		}
		events := ExtractEvents([]dbmodels.Application{rec})
		require.Empty(t, events)
	})

	t.Run(`нечитаемые заметки пропускаются молча`, func(t *testing.T) {
		rec := baseApp(models.StatusApplied)
		rec.StatusHistory = []dbmodels.StatusHistory{
			{ToStatus: models.StatusApplied, Notes: strPtr("позвонить рекрутёру")},
		}
		events := ExtractEvents([]dbmodels.Application{rec})
		require.Empty(t, events)
	})

	t.Run(`закрытые статусы без запасного события`, func(t *testing.T) {
		rec := baseApp(models.StatusRejected)
		events := ExtractEvents([]dbmodels.Application{rec})
		require.Empty(t, events)
	})
}
