package dbmodels

import (
	"time"

	"job-tracker-backend/models"
)

// StatusHistory - append-only журнал переходов статуса.
// Записи не редактируются и не удаляются, только каскадом с заявкой.
type StatusHistory struct {
	BaseModel
	ApplicationID string                    `gorm:"type:varchar(36);index;not null"`
	FromStatus    *models.ApplicationStatus `gorm:"type:varchar(50)"` // null только у самой первой записи
	ToStatus      models.ApplicationStatus  `gorm:"type:varchar(50);not null"`
	ChangedAt     time.Time                 `gorm:"index"`
	Notes         *string                   `gorm:"type:text"`
}
