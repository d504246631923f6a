package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "job-tracker-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Resume{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Resume")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.StatusHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StatusHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Tag{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Tag")
	}
	if err := DB.AutoMigrate(&dbmodels.CoverLetter{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CoverLetter")
	}
	// уникальность тега без учёта регистра
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name_lower ON tags (LOWER(name));")
	log.Info("Миграция прошла успешно")
	return nil
}
