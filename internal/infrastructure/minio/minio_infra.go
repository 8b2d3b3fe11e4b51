package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teamkits/go-backend/internal/cfg"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/infrastructure"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/jitter"
	"github.com/teamkits/go-backend/pkg/logger"
)

// MinioInfrastructure управляет загрузкой и очисткой файлов дизайна в MinIO.
type MinioInfrastructure struct {
	minioRepo        usecase.DesignFileRepository
	cfg              *cfg.MinIOCfg
	logger           logger.Logger
	shutdownCtx      context.Context
	wg               sync.WaitGroup
	uploadFilesLimit int
}

func NewMinioInfrastructure(minioRepo usecase.DesignFileRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:        minioRepo,
		cfg:              cfg,
		logger:           logger,
		shutdownCtx:      shutdownCtx,
		wg:               sync.WaitGroup{},
		uploadFilesLimit: cfg.UploadFilesLimit,
	}
}

// UploadFiles загружает файлы дизайна заказа в MinIO параллельно с ограничением одновременных операций.
// В случае ошибки отменяет остальные загрузки и запускает очистку уже загруженных файлов.
func (m *MinioInfrastructure) UploadFiles(ctx context.Context, req *usecase.UploadFilesReq) (*usecase.UploadFilesRes, error) {
	const op = "MinioInfrastructure.UploadFiles"
	// Отмена остальных загрузок при первой ошибке
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyCh := make(chan string, len(req.Files))
	errCh := make(chan error, len(req.Files))
	sem := make(chan struct{}, m.uploadFilesLimit)

	var uploadWg sync.WaitGroup
	for _, file := range req.Files {
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fileID := uuid.NewString()
			ext, err := infrastructure.GetExtensionFromMIME(file.MimeType)
			if err != nil {
				errCh <- fmt.Errorf("invalid mime type %s for %s: %w", file.MimeType, file.Name, err)
				return
			}
			objKey := fmt.Sprintf("%s/%s-%s.%s", req.Reference, file.Name, fileID, ext)
			newFile := domain.NewDesignFile(fileID, m.cfg.BucketName, objKey, file.Data, &file.Size, &file.MimeType)

			key, err := m.minioRepo.Upload(ctx, newFile)
			if err != nil {
				errCh <- fmt.Errorf("upload %s failed: %w", file.Name, err)
				return
			}

			keyCh <- key
		}()
	}

	go func() {
		uploadWg.Wait()
		close(errCh)
		close(keyCh)
	}()

	keys := make([]string, 0, len(req.Files))
	ok := false
	defer func() {
		if !ok && len(keys) > 0 {
			m.wg.Add(1)
			go m.cleanupUploadedKeys(keys)
		}
	}()

	for completed := 0; completed < len(req.Files); {
		select {
		case key, ok := <-keyCh:
			if ok {
				keys = append(keys, key)
				completed++
			}
		case err, ok := <-errCh:
			if ok {
				cancel()
				return nil, e.Wrap(op, err)
			}
		case <-ctx.Done():
			cancel()
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	ok = true
	return usecase.NewUploadFilesRes(keys), nil
}

// CleanupFiles запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupFiles(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				// Джиттер распределяет нагрузку между конкурентными компенсациями
				sleepTime := jitter.ExponentialBackoff(time.Second, 8*time.Second, attempt, jitter.DefaultJitter)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
