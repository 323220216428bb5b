package interfaces

import (
	"context"
	"errors"
	"time"
)

var ErrLockHeld = errors.New("lock is held by another request")

// ILocker grants short-lived advisory locks. Acquire fails fast with ErrLockHeld
// instead of waiting. The returned release function is safe to call once.
type ILocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
