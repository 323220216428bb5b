package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire fails until release", func(t *testing.T) {
		l := NewMemoryLocker()
		release, err := l.Acquire(ctx, "boleto:1", time.Minute)
		require.NoError(t, err)

		_, err = l.Acquire(ctx, "boleto:1", time.Minute)
		assert.ErrorIs(t, err, interfaces.ErrLockHeld)

		_, err = l.Acquire(ctx, "boleto:2", time.Minute)
		assert.NoError(t, err)

		require.NoError(t, release(ctx))
		_, err = l.Acquire(ctx, "boleto:1", time.Minute)
		assert.NoError(t, err)
	})

	t.Run("expired lease can be taken over and the old release is harmless", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		l := NewMemoryLocker()
		l.now = func() time.Time { return now }

		oldRelease, err := l.Acquire(ctx, "boleto:1", 30*time.Second)
		require.NoError(t, err)

		now = now.Add(31 * time.Second)
		_, err = l.Acquire(ctx, "boleto:1", 30*time.Second)
		require.NoError(t, err)

		require.NoError(t, oldRelease(ctx))
		_, err = l.Acquire(ctx, "boleto:1", 30*time.Second)
		assert.ErrorIs(t, err, interfaces.ErrLockHeld)
	})

	t.Run("only one of many concurrent callers wins", func(t *testing.T) {
		l := NewMemoryLocker()
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := l.Acquire(ctx, "boleto:race", time.Minute); err == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}
