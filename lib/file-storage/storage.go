package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// UploadFile сохраняет файл в бакет и возвращает сгенерированный ключ объекта
	UploadFile(ctx context.Context, prefix string, file io.Reader, fileSize int64, contentType string) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewInstance(s3client *minio.Client, bucketName string) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func (i impl) UploadFile(ctx context.Context, prefix string, file io.Reader, fileSize int64, contentType string) (key string, err error) {
	if i.s3client == nil {
		return "", errors.New("хранилище файлов не настроено")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key = fmt.Sprintf("%s/%s", prefix, uuid.New().String())
	_, err = i.s3client.PutObject(ctx, i.bucketName, key, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	log.WithField("key", key).Info("файл загружен в S3")
	return key, nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("хранилище файлов не настроено")
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, key string) error {
	if i.s3client == nil {
		return errors.New("хранилище файлов не настроено")
	}
	err := i.s3client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	if i.s3client == nil {
		return errors.New("хранилище файлов не настроено")
	}
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}
