package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "job-tracker-backend/lib/file-storage"
	s3client "job-tracker-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	}
	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
