package minio

import (
	"bytes"
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/teamkits/go-backend/internal/cfg"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/pkg/e"
)

// DesignFileRepo реализует репозиторий файлов дизайна поверх MinIO.
type DesignFileRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewDesignFileRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *DesignFileRepo {
	return &DesignFileRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает файл дизайна в MinIO и возвращает ключ объекта.
func (d *DesignFileRepo) Upload(ctx context.Context, file *domain.DesignFile) (string, error) {
	reader := bytes.NewReader(file.Bytes)

	info, err := d.mc.PutObject(ctx, d.cfg.BucketName, file.ObjectKey, reader, *file.Size, minio.PutObjectOptions{
		ContentType: *file.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (d *DesignFileRepo) Delete(ctx context.Context, key string) error {
	if err := d.mc.RemoveObject(ctx, d.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
