package initializers

import (
	"context"
	"interview-scheduler/config"
	filestorage "interview-scheduler/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewInstance(nil, config.Conf.S3.BucketName)
		return
	}
	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName)

	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка проверки бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
