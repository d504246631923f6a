package calendarapimodels

import "job-tracker-backend/models"

type EventType string

const (
	EventApplied   EventType = "applied"
	EventFollowUp  EventType = "follow_up"
	EventInterview EventType = "interview"
	EventDeadline  EventType = "deadline"
)

type CalendarEvent struct {
	ApplicationID string                   `json:"application_id"` // Заявка-источник события
	Date          string                   `json:"date"`           // RFC3339
	Title         string                   `json:"title"`
	CompanyName   string                   `json:"company_name"`
	Type          EventType                `json:"type"`
	Status        models.ApplicationStatus `json:"status,omitempty"`
}
