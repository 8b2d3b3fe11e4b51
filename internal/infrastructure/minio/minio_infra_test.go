package minio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkits/go-backend/internal/cfg"
	"github.com/teamkits/go-backend/internal/domain"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/e"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type fakeFileRepo struct {
	mu          sync.Mutex
	uploaded    []string
	deleted     []string
	uploadErr   func(file *domain.DesignFile) error
	deleteErrFn func(key string) error
}

func (f *fakeFileRepo) Upload(ctx context.Context, file *domain.DesignFile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		if err := f.uploadErr(file); err != nil {
			return "", err
		}
	}
	f.uploaded = append(f.uploaded, file.ObjectKey)
	return file.ObjectKey, nil
}

func (f *fakeFileRepo) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErrFn != nil {
		if err := f.deleteErrFn(key); err != nil {
			return err
		}
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestInfra(repo *fakeFileRepo) *MinioInfrastructure {
	return NewMinioInfrastructure(repo, &cfg.MinIOCfg{
		BucketName:       "designs",
		UploadFilesLimit: 2,
	}, noopLogger{}, context.Background())
}

func upload(name, mime string) usecase.DesignUpload {
	data := []byte{0x1}
	return usecase.DesignUpload{Data: data, MimeType: mime, Size: int64(len(data)), Name: name}
}

func TestUploadFiles_AllSucceed(t *testing.T) {
	t.Parallel()

	repo := &fakeFileRepo{}
	infra := newTestInfra(repo)

	res, err := infra.UploadFiles(context.Background(), usecase.NewUploadFilesReq("ref-1", []usecase.DesignUpload{
		upload("front", "image/png"),
		upload("back", "image/png"),
		upload("sleeve", "application/pdf"),
	}))
	require.NoError(t, err)
	require.Len(t, res.FileKeys, 3)

	for _, key := range res.FileKeys {
		assert.True(t, strings.HasPrefix(key, "ref-1/"), "key %q must be prefixed with the order reference", key)
	}
}

func TestUploadFiles_UnsupportedMIME(t *testing.T) {
	t.Parallel()

	repo := &fakeFileRepo{}
	infra := newTestInfra(repo)

	_, err := infra.UploadFiles(context.Background(), usecase.NewUploadFilesReq("ref-1", []usecase.DesignUpload{
		upload("logo", "image/gif"),
	}))
	require.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestUploadFiles_FailureReturnsError(t *testing.T) {
	t.Parallel()

	repo := &fakeFileRepo{
		uploadErr: func(file *domain.DesignFile) error {
			return errors.New("minio unavailable")
		},
	}
	infra := newTestInfra(repo)

	_, err := infra.UploadFiles(context.Background(), usecase.NewUploadFilesReq("ref-2", []usecase.DesignUpload{
		upload("front", "image/png"),
		upload("back", "image/png"),
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minio unavailable")
}

func TestCleanupFiles_RetriesUntilDeleted(t *testing.T) {
	t.Parallel()

	failures := 1
	repo := &fakeFileRepo{}
	repo.deleteErrFn = func(key string) error {
		if failures > 0 {
			failures--
			return errors.New("transient")
		}
		return nil
	}
	infra := newTestInfra(repo)

	infra.CleanupFiles([]string{"ref-3/front.png"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(shutdownCtx))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []string{"ref-3/front.png"}, repo.deleted)
}

func TestCleanupFiles_NoKeysIsNoop(t *testing.T) {
	t.Parallel()

	repo := &fakeFileRepo{}
	infra := newTestInfra(repo)

	infra.CleanupFiles(nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))
	assert.Empty(t, repo.deleted)
}
