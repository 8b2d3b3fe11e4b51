package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClose_LIFOOrder(t *testing.T) {
	t.Parallel()

	c := NewCloser(0)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 3; i++ {
		c.Add(func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestClose_CollectsErrors(t *testing.T) {
	t.Parallel()

	c := NewCloser(0)
	c.Add(func(ctx context.Context) error { return nil })
	c.Add(func(ctx context.Context) error { return errors.New("redis close failed") })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis close failed")
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	c := NewCloser(0)

	var calls int
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestClose_ForcedAfterContextCancel(t *testing.T) {
	t.Parallel()

	c := NewCloser(time.Second)

	var (
		mu     sync.Mutex
		forced bool
	)
	c.Add(func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		forced = true
		return nil
	})
	c.Add(func(ctx context.Context) error {
		<-ctx.Done() // висим до отмены, имитируя зависший ресурс
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, forced)
}
