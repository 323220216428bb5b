package lock

import (
	"context"
	"sync"
	"time"

	"repasse_imoveis/internal/usecase/interfaces"
)

type memoryLease struct {
	token     uint64
	expiresAt time.Time
}

// MemoryLocker is the single-instance locker used when no Redis URL is configured.
type MemoryLocker struct {
	mu     sync.Mutex
	leases map[string]memoryLease
	seq    uint64
	now    func() time.Time
}

var _ interfaces.ILocker = (*MemoryLocker)(nil)

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{leases: make(map[string]memoryLease), now: time.Now}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if lease, held := l.leases[key]; held && now.Before(lease.expiresAt) {
		return nil, interfaces.ErrLockHeld
	}
	l.seq++
	token := l.seq
	l.leases[key] = memoryLease{token: token, expiresAt: now.Add(ttl)}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if lease, ok := l.leases[key]; ok && lease.token == token {
				delete(l.leases, key)
			}
		})
		return nil
	}, nil
}
