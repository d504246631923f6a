package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

func intPtr(value int) *int { return &value }

func appWithStatus(status models.ApplicationStatus) dbmodels.Application {
	return dbmodels.Application{
		Status:    status,
		DateAdded: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestComputeStats(t *testing.T) {
	t.Run(`пустой снимок`, func(t *testing.T) {
		result := ComputeStats(nil)
		require.Equal(t, 0, result.Total)
		require.Equal(t, 0, result.ResponseRate)
		require.Nil(t, result.AvgSalary)
		require.Empty(t, result.ByStatus)
	})

	t.Run(`byStatus в порядке воронки, только встречающиеся`, func(t *testing.T) {
		list := []dbmodels.Application{
			appWithStatus(models.StatusOffer),
			appWithStatus(models.StatusSaved),
			appWithStatus(models.StatusOffer),
		}
		result := ComputeStats(list)
		require.Len(t, result.ByStatus, 2)
		require.Equal(t, models.StatusSaved, result.ByStatus[0].Status)
		require.Equal(t, 1, result.ByStatus[0].Count)
		require.Equal(t, models.StatusOffer, result.ByStatus[1].Status)
		require.Equal(t, 2, result.ByStatus[1].Count)
	})

	t.Run(`статус вне каталога уходит в конец`, func(t *testing.T) {
		list := []dbmodels.Application{
			appWithStatus(models.StatusSaved),
			appWithStatus("legacy_status"),
		}
		result := ComputeStats(list)
		require.Len(t, result.ByStatus, 2)
		require.Equal(t, models.ApplicationStatus("legacy_status"), result.ByStatus[1].Status)
	})

	t.Run(`responseRate округляется математически`, func(t *testing.T) {
		// 1 отклик из 3 поданных: 33.3 -> 33
		list := []dbmodels.Application{
			appWithStatus(models.StatusApplied),
			appWithStatus(models.StatusApplied),
			appWithStatus(models.StatusPhoneScreen),
			appWithStatus(models.StatusSaved), // не считается поданной
		}
		result := ComputeStats(list)
		require.Equal(t, 33, result.ResponseRate)
	})

	t.Run(`avgSalary: отсутствующая граница считается нулём`, func(t *testing.T) {
		rec1 := appWithStatus(models.StatusApplied)
		rec1.SalaryMin = intPtr(100)
		rec1.SalaryMax = intPtr(200)
		rec2 := appWithStatus(models.StatusApplied)
		rec2.SalaryMax = intPtr(100) // (0+100)/2 = 50
		list := []dbmodels.Application{rec1, rec2}
		result := ComputeStats(list)
		require.NotNil(t, result.AvgSalary)
		require.Equal(t, 100, *result.AvgSalary)
	})

	t.Run(`avgSalary: без данных nil`, func(t *testing.T) {
		rec := appWithStatus(models.StatusApplied)
		rec.SalaryMin = intPtr(100)
		rec.SalaryNotSpecified = true
		result := ComputeStats([]dbmodels.Application{rec})
		require.Nil(t, result.AvgSalary)
	})

	t.Run(`activeCount исключает закрытые`, func(t *testing.T) {
		list := []dbmodels.Application{
			appWithStatus(models.StatusSaved),
			appWithStatus(models.StatusOffer),
			appWithStatus(models.StatusRejected),
			appWithStatus(models.StatusWithdrawn),
			appWithStatus(models.StatusAccepted),
		}
		result := ComputeStats(list)
		require.Equal(t, 2, result.ActiveCount)
	})

	t.Run(`timeline по ISO неделям по возрастанию`, func(t *testing.T) {
		rec1 := appWithStatus(models.StatusSaved)
		rec1.DateAdded = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC) // неделя 11
		rec2 := appWithStatus(models.StatusSaved)
		rec2.DateAdded = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // неделя 10
		result := ComputeStats([]dbmodels.Application{rec1, rec2})
		require.Len(t, result.Timeline, 2)
		require.Equal(t, "2024-10", result.Timeline[0].Week)
		require.Equal(t, "2024-11", result.Timeline[1].Week)
	})

	t.Run(`avgDaysPerStage: floor по суткам и привязка к этапу входа`, func(t *testing.T) {
		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		rec := appWithStatus(models.StatusPhoneScreen)
		rec.StatusHistory = []dbmodels.StatusHistory{
			{ToStatus: models.StatusSaved, ChangedAt: base},
			{ToStatus: models.StatusApplied, ChangedAt: base.Add(36 * time.Hour)},    // saved: 1.5 суток -> 1
			{ToStatus: models.StatusPhoneScreen, ChangedAt: base.Add(60 * time.Hour)}, // applied: 1 сутки
		}
		result := ComputeStats([]dbmodels.Application{rec})
		require.Len(t, result.AvgDaysPerStage, 2)
		require.Equal(t, models.StatusSaved, result.AvgDaysPerStage[0].Stage)
		require.Equal(t, 1.0, result.AvgDaysPerStage[0].AvgDays)
		require.Equal(t, models.StatusApplied, result.AvgDaysPerStage[1].Stage)
		require.Equal(t, 1.0, result.AvgDaysPerStage[1].AvgDays)
	})

	t.Run(`avgDaysPerStage: отрицательные интервалы выпадают`, func(t *testing.T) {
		base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		rec := appWithStatus(models.StatusApplied)
		rec.StatusHistory = []dbmodels.StatusHistory{
			{ToStatus: models.StatusSaved, ChangedAt: base},
			{ToStatus: models.StatusApplied, ChangedAt: base.Add(-48 * time.Hour)},
		}
		result := ComputeStats([]dbmodels.Application{rec})
		require.Empty(t, result.AvgDaysPerStage)
	})

	t.Run(`topTags: частота, при равенстве порядок появления`, func(t *testing.T) {
		rec1 := appWithStatus(models.StatusSaved)
		rec1.Tags = []dbmodels.Tag{{Name: "go"}, {Name: "remote"}}
		rec2 := appWithStatus(models.StatusSaved)
		rec2.Tags = []dbmodels.Tag{{Name: "remote"}}
		result := ComputeStats([]dbmodels.Application{rec1, rec2})
		require.Len(t, result.TopTags, 2)
		require.Equal(t, "remote", result.TopTags[0].Name)
		require.Equal(t, 2, result.TopTags[0].Count)
		require.Equal(t, "go", result.TopTags[1].Name)
	})

	t.Run(`sourceStats: интервью и офферы по источникам`, func(t *testing.T) {
		rec1 := appWithStatus(models.StatusPhoneScreen)
		rec1.Source = models.SourceLinkedin
		rec2 := appWithStatus(models.StatusOffer)
		rec2.Source = models.SourceLinkedin
		rec3 := appWithStatus(models.StatusApplied)
		rec3.Source = models.SourceReferral
		rec4 := appWithStatus(models.StatusSaved) // без источника
		result := ComputeStats([]dbmodels.Application{rec1, rec2, rec3, rec4})
		require.Len(t, result.SourceStats, 2)
		require.Equal(t, models.SourceLinkedin, result.SourceStats[0].Source)
		require.Equal(t, 2, result.SourceStats[0].Total)
		require.Equal(t, 2, result.SourceStats[0].Interviews)
		require.Equal(t, 1, result.SourceStats[0].Offers)
		require.Equal(t, models.SourceReferral, result.SourceStats[1].Source)
		require.Equal(t, 0, result.SourceStats[1].Interviews)
	})
}

func TestFilterByDateAdded(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 15, 0, 0, 0, time.UTC) }
	list := []dbmodels.Application{
		{DateAdded: day(1)},
		{DateAdded: day(10)},
		{DateAdded: day(20)},
	}

	t.Run(`границы включаются`, func(t *testing.T) {
		from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		result := FilterByDateAdded(list, &from, &to)
		require.Len(t, result, 1)
		require.Equal(t, day(10), result[0].DateAdded)
	})

	t.Run(`без границ снимок не трогается`, func(t *testing.T) {
		result := FilterByDateAdded(list, nil, nil)
		require.Len(t, result, 3)
	})

	t.Run(`только from`, func(t *testing.T) {
		from := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		result := FilterByDateAdded(list, &from, nil)
		require.Len(t, result, 2)
	})
}
