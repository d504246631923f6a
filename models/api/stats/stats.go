package statsapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-tracker-backend/models"
)

type StatusCount struct {
	Status models.ApplicationStatus `json:"status"` // Статус
	Count  int                      `json:"count"`  // Кол-во заявок в статусе
}

type WeekCount struct {
	Week  string `json:"week"`  // Неделя в формате ГГГГ-НН (ISO)
	Count int    `json:"count"` // Кол-во добавленных заявок
}

type SalaryRange struct {
	SalaryMin int `json:"salary_min"`
	SalaryMax int `json:"salary_max"`
}

type StageDuration struct {
	Stage   models.ApplicationStatus `json:"stage"`    // Этап воронки
	AvgDays float64                  `json:"avg_days"` // Среднее время на этапе, дней (1 знак)
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SourceStat struct {
	Source     models.ApplicationSource `json:"source"`
	Total      int                      `json:"total"`      // Всего заявок из источника
	Interviews int                      `json:"interviews"` // Дошли до интервью
	Offers     int                      `json:"offers"`     // Дошли до оффера
}

type Stats struct {
	Total              int             `json:"total"`
	ByStatus           []StatusCount   `json:"by_status"`
	ResponseRate       int             `json:"response_rate"` // Процент откликов, 0-100
	AvgSalary          *int            `json:"avg_salary"`    // null, если нет данных по зарплатам
	ActiveCount        int             `json:"active_count"`
	Timeline           []WeekCount     `json:"timeline"`
	SalaryDistribution []SalaryRange   `json:"salary_distribution"`
	AvgDaysPerStage    []StageDuration `json:"avg_days_per_stage"`
	TopTags            []TagCount      `json:"top_tags"`
	SourceStats        []SourceStat    `json:"source_stats"`
}

// DateRange - включающие границы фильтра по дате добавления.
type DateRange struct {
	From string `json:"from"` // ГГГГ-ММ-ДД, опционально
	To   string `json:"to"`   // ГГГГ-ММ-ДД, опционально
}

func (r DateRange) Validate() error {
	if _, err := r.GetFrom(); err != nil {
		return errors.Wrap(models.ErrValidation, "некорректная дата начала периода")
	}
	if _, err := r.GetTo(); err != nil {
		return errors.Wrap(models.ErrValidation, "некорректная дата конца периода")
	}
	return nil
}

func (r DateRange) GetFrom() (*time.Time, error) {
	return parseDate(r.From)
}

func (r DateRange) GetTo() (*time.Time, error) {
	return parseDate(r.To)
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
