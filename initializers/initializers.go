package initializers

import (
	"context"

	"job-tracker-backend/config"
	"job-tracker-backend/fiberlog"
	aihandler "job-tracker-backend/lib/ai"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/lib/calendar"
	coverletter "job-tracker-backend/lib/cover-letter"
	csvexport "job-tracker-backend/lib/export/csv"
	pdfexport "job-tracker-backend/lib/export/pdf"
	xlsexport "job-tracker-backend/lib/export/xls"
	reminderworker "job-tracker-backend/lib/reminder"
	"job-tracker-backend/lib/resume"
	"job-tracker-backend/lib/stats"
	statushistory "job-tracker-backend/lib/status-history"
	"job-tracker-backend/lib/tag"
	"job-tracker-backend/lib/transition"
	initchecker "job-tracker-backend/lib/utils/init-checker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	// движок переходов нужен раньше заявок, заявки ссылаются на него при смене статуса
	transition.NewHandler()
	application.NewHandler()
	statushistory.NewHandler()
	tag.NewHandler()
	stats.NewHandler()
	calendar.NewHandler()
	csvexport.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	resume.NewHandler()
	coverletter.NewHandler()
	aihandler.NewHandler()
	initchecker.CheckInit(
		"transition", transition.Instance,
		"application", application.Instance,
		"statushistory", statushistory.Instance,
		"tag", tag.Instance,
		"stats", stats.Instance,
		"calendar", calendar.Instance,
		"csvexport", csvexport.Instance,
		"xlsexport", xlsexport.Instance,
		"pdfexport", pdfexport.Instance,
		"resume", resume.Instance,
		"coverletter", coverletter.Instance,
		"ai", aihandler.Instance,
	)
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if config.Conf.Reminder.Enabled != nil && *config.Conf.Reminder.Enabled {
		// Задача рассылки напоминаний по заявкам с наступившим follow-up
		reminderworker.StartWorker(ctx)
	}
}
