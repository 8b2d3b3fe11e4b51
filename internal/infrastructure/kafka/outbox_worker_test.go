package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkits/go-backend/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type fakeOutboxRepo struct {
	mu             sync.Mutex
	getFn          func(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error)
	requeueFn      func(ctx context.Context, olderThan time.Duration) (int64, error)
	processedIDs   []int64
	markProcessErr error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getFn == nil {
		return nil, nil
	}
	return f.getFn(ctx, limit)
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markProcessErr != nil {
		return f.markProcessErr
	}
	f.processedIDs = append(f.processedIDs, id)
	return nil
}

func (f *fakeOutboxRepo) RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requeueFn == nil {
		return 0, nil
	}
	return f.requeueFn(ctx, olderThan)
}

func (f *fakeOutboxRepo) processed() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.processedIDs...)
}

type fakeProducer struct {
	mu      sync.Mutex
	writeFn func(req *usecase.WriteRawMessageReq) error
	sent    []*usecase.WriteRawMessageReq
}

func (f *fakeProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeFn != nil {
		if err := f.writeFn(req); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, req)
	return nil
}

func (f *fakeProducer) sentReqs() []*usecase.WriteRawMessageReq {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*usecase.WriteRawMessageReq(nil), f.sent...)
}

func newEvent(id, orderID int64) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:        id,
		EventID:   fmt.Sprintf("event-%d", id),
		EventType: usecase.EventOrderSubmitted,
		OrderID:   orderID,
		Payload:   []byte(`{"reference":"ref"}`),
		Status:    usecase.Processing,
	}
}

// Stop вызывается до отмены контекста приложения, как это делает App.stop().
// Воркер обязан завершиться только по каналу остановки.
func TestOutboxWorker_StopWithoutContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewOutboxWorker(&fakeOutboxRepo{}, noopLogger{}, &fakeProducer{}, "://invalid")
	w.Start(ctx)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return before context cancellation")
	}
}

func TestProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty outbox", func(t *testing.T) {
		t.Parallel()

		producer := &fakeProducer{}
		w := NewOutboxWorker(&fakeOutboxRepo{}, noopLogger{}, producer, "")

		hasMore, err := w.processBatch(context.Background())

		require.NoError(t, err)
		assert.False(t, hasMore)
		assert.Empty(t, producer.sentReqs())
	})

	t.Run("failed send is skipped, successful send marked processed", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOutboxRepo{
			getFn: func(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
				return []*usecase.OutboxEvent{newEvent(1, 10), newEvent(2, 20)}, nil
			},
		}
		producer := &fakeProducer{
			writeFn: func(req *usecase.WriteRawMessageReq) error {
				if req.OrderID == 10 {
					return errors.New("broker not available")
				}
				return nil
			},
		}
		w := NewOutboxWorker(repo, noopLogger{}, producer, "")

		hasMore, err := w.processBatch(context.Background())

		require.NoError(t, err)
		assert.True(t, hasMore)
		assert.Equal(t, []int64{2}, repo.processed())
	})

	t.Run("repo error aborts batch", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOutboxRepo{
			getFn: func(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
				return nil, errors.New("down")
			},
		}
		w := NewOutboxWorker(repo, noopLogger{}, &fakeProducer{}, "")

		hasMore, err := w.processBatch(context.Background())

		require.Error(t, err)
		assert.False(t, hasMore)
	})
}

func TestRequeueStale_DrainsRequeuedEvents(t *testing.T) {
	t.Parallel()

	var calls int
	repo := &fakeOutboxRepo{
		requeueFn: func(ctx context.Context, olderThan time.Duration) (int64, error) {
			return 1, nil
		},
	}
	repo.getFn = func(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
		calls++
		if calls == 1 {
			return []*usecase.OutboxEvent{newEvent(3, 30)}, nil
		}
		return nil, nil
	}
	producer := &fakeProducer{}
	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	w.requeueStale(context.Background())

	require.Len(t, producer.sentReqs(), 1)
	assert.Equal(t, int64(30), producer.sentReqs()[0].OrderID)
	assert.Equal(t, []int64{3}, repo.processed())
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read: i/o timeout")))
	assert.False(t, isRetryableError(errors.New("unknown topic or partition")))
	assert.False(t, isRetryableError(nil))
}
