package ports

import "context"

// CatalogLocker serializes mutating catalog operations across processes via
// an exclusive advisory lock.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type CatalogLocker interface {
	// Acquire takes the exclusive lock, waiting up to the configured bound.
	// It returns a release function on success and
	// domain.ErrConcurrentOperation when the lock cannot be acquired in
	// time.
	Acquire(ctx context.Context) (release func(), err error)
}
