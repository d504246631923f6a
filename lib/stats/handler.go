package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/models"
	statsapimodels "job-tracker-backend/models/api/stats"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	GetStats(dateRange statsapimodels.DateRange) (statsapimodels.Stats, error)
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

func (i impl) GetStats(dateRange statsapimodels.DateRange) (statsapimodels.Stats, error) {
	if err := dateRange.Validate(); err != nil {
		return statsapimodels.Stats{}, err
	}
	list, err := i.applicationProvider.ListWithHistory()
	if err != nil {
		log.WithError(err).Error("ошибка получения заявок для аналитики")
		return statsapimodels.Stats{}, errors.New("ошибка получения заявок для аналитики")
	}
	from, _ := dateRange.GetFrom()
	to, _ := dateRange.GetTo()
	return ComputeStats(FilterByDateAdded(list, from, to)), nil
}

// FilterByDateAdded - включающий фильтр по дате добавления,
// применяется до любых вычислений.
func FilterByDateAdded(list []dbmodels.Application, from, to *time.Time) []dbmodels.Application {
	if from == nil && to == nil {
		return list
	}
	result := make([]dbmodels.Application, 0, len(list))
	for _, rec := range list {
		if from != nil && rec.DateAdded.Before(*from) {
			continue
		}
		if to != nil && rec.DateAdded.After(to.Add(24*time.Hour-time.Nanosecond)) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// ComputeStats - чистая свёртка снимка заявок с историей в аналитику.
// Никакого скрытого состояния: одинаковый вход - одинаковый выход.
// Некорректные исторические данные не роняют расчёт, а выпадают из него.
func ComputeStats(list []dbmodels.Application) statsapimodels.Stats {
	result := statsapimodels.Stats{
		Total:              len(list),
		ByStatus:           byStatus(list),
		ResponseRate:       responseRate(list),
		AvgSalary:          avgSalary(list),
		ActiveCount:        activeCount(list),
		Timeline:           timeline(list),
		SalaryDistribution: salaryDistribution(list),
		AvgDaysPerStage:    avgDaysPerStage(list),
		TopTags:            topTags(list),
		SourceStats:        sourceStats(list),
	}
	return result
}

// byStatus: только статусы, реально встречающиеся в данных,
// нулевые колонки не синтезируются.
func byStatus(list []dbmodels.Application) []statsapimodels.StatusCount {
	counts := map[models.ApplicationStatus]int{}
	for _, rec := range list {
		counts[rec.Status]++
	}
	result := make([]statsapimodels.StatusCount, 0, len(counts))
	for _, status := range models.StatusOrder {
		if count, ok := counts[status]; ok {
			result = append(result, statsapimodels.StatusCount{Status: status, Count: count})
			delete(counts, status)
		}
	}
	// статусы вне каталога (исторические данные) - в конец
	for status, count := range counts {
		result = append(result, statsapimodels.StatusCount{Status: status, Count: count})
	}
	return result
}

func responseRate(list []dbmodels.Application) int {
	applied := 0
	responded := 0
	for _, rec := range list {
		if rec.Status != models.StatusSaved {
			applied++
		}
		if rec.Status != models.StatusSaved && rec.Status != models.StatusApplied {
			responded++
		}
	}
	if applied == 0 {
		return 0
	}
	return int(math.Round(float64(responded) / float64(applied) * 100))
}

func hasSalaryData(rec dbmodels.Application) bool {
	return !rec.SalaryNotSpecified && (rec.SalaryMin != nil || rec.SalaryMax != nil)
}

func avgSalary(list []dbmodels.Application) *int {
	sum := 0.0
	count := 0
	for _, rec := range list {
		if !hasSalaryData(rec) {
			continue
		}
		min := 0
		max := 0
		if rec.SalaryMin != nil {
			min = *rec.SalaryMin
		}
		if rec.SalaryMax != nil {
			max = *rec.SalaryMax
		}
		sum += float64(min+max) / 2
		count++
	}
	if count == 0 {
		return nil
	}
	avg := int(math.Round(sum / float64(count)))
	return &avg
}

func activeCount(list []dbmodels.Application) int {
	count := 0
	for _, rec := range list {
		switch rec.Status {
		case models.StatusRejected, models.StatusWithdrawn, models.StatusAccepted:
		default:
			count++
		}
	}
	return count
}

// timeline: заявки по ISO-неделе даты добавления, по возрастанию.
func timeline(list []dbmodels.Application) []statsapimodels.WeekCount {
	counts := map[string]int{}
	for _, rec := range list {
		if rec.DateAdded.IsZero() {
			continue
		}
		year, week := rec.DateAdded.ISOWeek()
		counts[fmt.Sprintf("%04d-%02d", year, week)]++
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]statsapimodels.WeekCount, 0, len(keys))
	for _, key := range keys {
		result = append(result, statsapimodels.WeekCount{Week: key, Count: counts[key]})
	}
	return result
}

// salaryDistribution отдаёт сырые пары границ; разбиение по корзинам -
// забота слоя отображения.
func salaryDistribution(list []dbmodels.Application) []statsapimodels.SalaryRange {
	result := make([]statsapimodels.SalaryRange, 0)
	for _, rec := range list {
		if !hasSalaryData(rec) {
			continue
		}
		pair := statsapimodels.SalaryRange{}
		if rec.SalaryMin != nil {
			pair.SalaryMin = *rec.SalaryMin
		}
		if rec.SalaryMax != nil {
			pair.SalaryMax = *rec.SalaryMax
		}
		result = append(result, pair)
	}
	return result
}

// avgDaysPerStage: по соседним парам записей журнала. Длительность
// относится к этапу, в который заявка вошла первой записью пары.
// Этапы без данных не попадают в результат.
func avgDaysPerStage(list []dbmodels.Application) []statsapimodels.StageDuration {
	durations := map[models.ApplicationStatus][]float64{}
	order := []models.ApplicationStatus{}
	for _, rec := range list {
		history := rec.StatusHistory
		for idx := 0; idx+1 < len(history); idx++ {
			current := history[idx]
			next := history[idx+1]
			if current.ChangedAt.IsZero() || next.ChangedAt.IsZero() {
				continue
			}
			days := math.Floor(next.ChangedAt.Sub(current.ChangedAt).Hours() / 24)
			if days < 0 {
				continue
			}
			stage := current.ToStatus
			if _, ok := durations[stage]; !ok {
				order = append(order, stage)
			}
			durations[stage] = append(durations[stage], days)
		}
	}
	result := make([]statsapimodels.StageDuration, 0, len(durations))
	for _, stage := range order {
		values := durations[stage]
		sum := 0.0
		for _, value := range values {
			sum += value
		}
		avg := math.Round(sum/float64(len(values))*10) / 10
		result = append(result, statsapimodels.StageDuration{Stage: stage, AvgDays: avg})
	}
	return result
}

// topTags: топ-10 по частоте, при равенстве - порядок первого появления.
func topTags(list []dbmodels.Application) []statsapimodels.TagCount {
	counts := map[string]int{}
	order := []string{}
	for _, rec := range list {
		for _, tag := range rec.Tags {
			if _, ok := counts[tag.Name]; !ok {
				order = append(order, tag.Name)
			}
			counts[tag.Name]++
		}
	}
	result := make([]statsapimodels.TagCount, 0, len(order))
	for _, name := range order {
		result = append(result, statsapimodels.TagCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Count > result[b].Count
	})
	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

func sourceStats(list []dbmodels.Application) []statsapimodels.SourceStat {
	counts := map[models.ApplicationSource]*statsapimodels.SourceStat{}
	order := []models.ApplicationSource{}
	for _, rec := range list {
		if rec.Source == "" {
			continue
		}
		stat, ok := counts[rec.Source]
		if !ok {
			stat = &statsapimodels.SourceStat{Source: rec.Source}
			counts[rec.Source] = stat
			order = append(order, rec.Source)
		}
		stat.Total++
		switch rec.Status {
		case models.StatusSaved, models.StatusApplied, models.StatusRejected, models.StatusWithdrawn:
		default:
			stat.Interviews++
		}
		if rec.Status == models.StatusOffer || rec.Status == models.StatusAccepted {
			stat.Offers++
		}
	}
	result := make([]statsapimodels.SourceStat, 0, len(order))
	for _, source := range order {
		result = append(result, *counts[source])
	}
	return result
}
