package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrBusy = errors.New("запись редактируется, повторите запрос позже")

const pollInterval = 20 * time.Millisecond

var (
	lockMap sync.Map
)

// WithDelay выполняет safeCode, удерживая key в пределах процесса.
// Если key не освободился за wait или завершился ctx, возвращает ErrBusy.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return ErrBusy
		case <-ctx.Done():
			return ErrBusy
		case <-time.After(pollInterval):
		}
	}
	defer lockMap.Delete(key)
	return safeCode()
}
