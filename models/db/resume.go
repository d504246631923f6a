package dbmodels

// Resume - версия резюме. Файл хранится в S3, здесь только метаданные.
type Resume struct {
	BaseModel
	VersionName string `gorm:"type:varchar(255);not null"`
	FileName    string `gorm:"type:varchar(512)"`
	FileKey     string `gorm:"type:varchar(512)"` // ключ объекта в S3
	ContentType string `gorm:"type:varchar(255)"`
	SizeBytes   int64
	Notes       string `gorm:"type:text"`
}
