package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run(`returns code error`, func(t *testing.T) {
		errCode := errors.New("boom")
		err := WithDelay(ctx, "k1", time.Second, func() error { return errCode })
		require.ErrorIs(t, err, errCode)
	})
	t.Run(`key released after run`, func(t *testing.T) {
		require.NoError(t, WithDelay(ctx, "k2", time.Second, func() error { return nil }))
		require.NoError(t, WithDelay(ctx, "k2", time.Second, func() error { return nil }))
	})
	t.Run(`busy key times out`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_ = WithDelay(ctx, "k3", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		err := WithDelay(ctx, "k3", 50*time.Millisecond, func() error { return nil })
		require.ErrorIs(t, err, ErrBusy)
		close(release)
	})
	t.Run(`same key is serialized`, func(t *testing.T) {
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := WithDelay(ctx, "k4", 5*time.Second, func() error {
					cur := atomic.AddInt32(&active, 1)
					for {
						prev := atomic.LoadInt32(&maxActive)
						if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})
}
