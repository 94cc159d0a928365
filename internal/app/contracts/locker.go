package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed mutual exclusion scope. TryLock returns the
// opaque lock value needed to Unlock; a false first return means the lock is
// held elsewhere.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
