package reminderworker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-tracker-backend/config"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	"job-tracker-backend/lib/smtp"
	baseworker "job-tracker-backend/lib/utils/base-worker"
	"job-tracker-backend/lib/utils/helpers"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:         *baseworker.NewInstance("FollowUpReminderWorker", 30*time.Second, time.Duration(config.Conf.Reminder.IntervalMin)*time.Minute),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	applicationStore applicationstore.Provider
}

// handle собирает заявки с наступившей датой напоминания и шлёт одним письмом.
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	if config.Conf.Reminder.Email == "" {
		logger.Warn("адрес для напоминаний не настроен, рассылка пропущена")
		return
	}
	list, err := i.applicationStore.ListDueFollowUps(time.Now())
	if err != nil {
		logger.WithError(err).Error("Ошибка получения заявок для напоминания")
		return
	}
	if len(list) == 0 {
		return
	}
	if helpers.IsContextDone(ctx) {
		return
	}
	lines := make([]string, 0, len(list))
	for _, rec := range list {
		lines = append(lines, fmt.Sprintf("- %s / %s (напомнить: %s, статус: %s)",
			rec.CompanyName, rec.JobTitle, rec.FollowUpDate.Format("2006-01-02"), rec.Status.Label()))
	}
	message := fmt.Sprintf("Заявки, ожидающие действий:\r\n%s", strings.Join(lines, "\r\n"))
	err = smtp.Instance.SendEMail(config.Conf.Reminder.Email, message, "Напоминание о заявках")
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки письма с напоминанием")
		return
	}
	logger.WithField("count", len(list)).Info("напоминание отправлено")
}
