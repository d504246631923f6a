package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type fakeApplicationProvider struct {
	created []applicationapimodels.ApplicationData
	list    []dbmodels.Application
}

func (f *fakeApplicationProvider) Create(data applicationapimodels.ApplicationData) (applicationapimodels.ApplicationView, error) {
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	f.created = append(f.created, data)
	return applicationapimodels.ApplicationView{}, nil
}

func (f *fakeApplicationProvider) Update(id string, data applicationapimodels.ApplicationUpdateData) (applicationapimodels.ApplicationView, error) {
	return applicationapimodels.ApplicationView{}, nil
}

func (f *fakeApplicationProvider) GetByID(id string) (applicationapimodels.ApplicationView, error) {
	return applicationapimodels.ApplicationView{}, nil
}

func (f *fakeApplicationProvider) List(filter dbmodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error) {
	return nil, nil
}

func (f *fakeApplicationProvider) ListWithHistory() ([]dbmodels.Application, error) {
	return f.list, nil
}

func (f *fakeApplicationProvider) Delete(id string) error { return nil }

func (f *fakeApplicationProvider) DeleteMany(ids []string) (int64, error) { return 0, nil }

func (f *fakeApplicationProvider) ClearAll() error { return nil }

func TestExportCsv(t *testing.T) {
	salaryMin := 100000
	provider := &fakeApplicationProvider{
		list: []dbmodels.Application{
			{
				BaseModel:   dbmodels.BaseModel{ID: "a1"},
				CompanyName: "Acme",
				JobTitle:    "Backend Engineer",
				Status:      models.StatusApplied,
				Priority:    models.PriorityHigh,
				SalaryMin:   &salaryMin,
				DateAdded:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Tags:        []dbmodels.Tag{{Name: "go"}, {Name: "remote"}},
			},
		},
	}
	handler := impl{applicationProvider: provider}

	buf, err := handler.ExportCsv()
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, strings.Join(csvHeaders, ","), lines[0])
	require.Contains(t, lines[1], "Acme")
	require.Contains(t, lines[1], "applied")
	require.Contains(t, lines[1], "100000")
	require.Contains(t, lines[1], `"go,remote"`)
}

func TestImportCsv(t *testing.T) {
	t.Run(`валидные строки создаются, битые пропускаются`, func(t *testing.T) {
		content := strings.Join([]string{
			"company_name,job_title,status,tags",
			"Acme,Backend Engineer,applied,\"go,remote\"",
			",Missing Company,saved,", // нет компании - валидация отсеет
			"Globex,SRE,saved,",
		}, "\n")
		provider := &fakeApplicationProvider{}
		handler := impl{applicationProvider: provider}

		imported, err := handler.ImportCsv([]byte(content))
		require.Nil(t, err)
		require.Equal(t, 2, imported)
		require.Len(t, provider.created, 2)
		require.Equal(t, "Acme", provider.created[0].CompanyName)
		require.Equal(t, models.StatusApplied, provider.created[0].Status)
		require.Equal(t, []string{"go", "remote"}, provider.created[0].Tags)
	})

	t.Run(`пустой файл - ошибка валидации`, func(t *testing.T) {
		handler := impl{applicationProvider: &fakeApplicationProvider{}}
		_, err := handler.ImportCsv([]byte("company_name,job_title\n"))
		require.ErrorIs(t, err, models.ErrValidation)
	})
}
