package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"job-tracker-backend/config"
)

type Provider interface {
	UploadFile(ctx context.Context, fileKey, contentType string, fileReader io.Reader, fileSize int64) error
	GetFile(ctx context.Context, fileKey string) ([]byte, error)
	DeleteFile(ctx context.Context, fileKey string) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadFile(ctx context.Context, fileKey, contentType string, fileReader io.Reader, fileSize int64) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, fileKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, object); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, fileKey string) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, fileKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из хранилища")
	}
	return nil
}
