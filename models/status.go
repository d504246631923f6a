package models

type ApplicationStatus string

const (
	StatusSaved              ApplicationStatus = "saved"
	StatusApplied            ApplicationStatus = "applied"
	StatusPhoneScreen        ApplicationStatus = "phone_screen"
	StatusTechnicalInterview ApplicationStatus = "technical_interview"
	StatusFinalRound         ApplicationStatus = "final_round"
	StatusOffer              ApplicationStatus = "offer"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// StatusOrder задаёт порядок колонок канбана и прогресс по воронке.
// Идентификаторы статусов - контракт хранения, менять нельзя.
var StatusOrder = []ApplicationStatus{
	StatusSaved,
	StatusApplied,
	StatusPhoneScreen,
	StatusTechnicalInterview,
	StatusFinalRound,
	StatusOffer,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

var statusLabels = map[ApplicationStatus]string{
	StatusSaved:              "Saved",
	StatusApplied:            "Applied",
	StatusPhoneScreen:        "Phone Screen",
	StatusTechnicalInterview: "Technical Interview",
	StatusFinalRound:         "Final Round",
	StatusOffer:              "Offer",
	StatusAccepted:           "Accepted",
	StatusRejected:           "Rejected",
	StatusWithdrawn:          "Withdrawn",
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s ApplicationStatus) Label() string {
	label, ok := statusLabels[s]
	if !ok {
		return string(s)
	}
	return label
}

// Ordinal возвращает позицию статуса в воронке, -1 для неизвестного.
func (s ApplicationStatus) Ordinal() int {
	for idx, item := range StatusOrder {
		if item == s {
			return idx
		}
	}
	return -1
}

type PromptGranularity string

const (
	GranularityDate     PromptGranularity = "date"
	GranularityDateTime PromptGranularity = "datetime"
)

// PromptSpec описывает диалог запроса даты при переходе в статус.
type PromptSpec struct {
	Label       string
	Granularity PromptGranularity
}

var statusPrompts = map[ApplicationStatus]PromptSpec{
	StatusApplied:            {Label: "Application Date", Granularity: GranularityDate},
	StatusPhoneScreen:        {Label: "Phone Screen Date & Time", Granularity: GranularityDateTime},
	StatusTechnicalInterview: {Label: "Technical Interview Date & Time", Granularity: GranularityDateTime},
	StatusFinalRound:         {Label: "Final Round Date & Time", Granularity: GranularityDateTime},
	StatusOffer:              {Label: "Offer Date", Granularity: GranularityDate},
	StatusAccepted:           {Label: "Deadline to Accept/Decline", Granularity: GranularityDate},
}

// NeedsDatePrompt возвращает спецификацию диалога даты или nil,
// если для статуса дата не запрашивается.
func NeedsDatePrompt(s ApplicationStatus) *PromptSpec {
	spec, ok := statusPrompts[s]
	if !ok {
		return nil
	}
	return &spec
}

// SuppressesPrompt - переходы в эти статусы выполняются молча,
// без диалога подтверждения и без даты.
func SuppressesPrompt(s ApplicationStatus) bool {
	return s == StatusRejected || s == StatusWithdrawn
}
