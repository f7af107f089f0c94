// Package flock serializes catalog mutations with an exclusive advisory
// file lock.
package flock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

var _ ports.CatalogLocker = (*Locker)(nil)

// retryInterval is how often a blocked acquisition retries the non-blocking
// flock until the wait bound expires.
const retryInterval = 50 * time.Millisecond

// Locker implements ports.CatalogLocker with flock(2) on a dedicated lock
// file next to the catalog.
type Locker struct {
	path string
	wait time.Duration
}

// NewLocker creates a locker for the given lock file path with a bounded
// acquisition wait.
func NewLocker(path string, wait time.Duration) *Locker {
	if wait <= 0 {
		wait = domain.DefaultLockWait
	}
	return &Locker{path: path, wait: wait}
}

// Acquire takes the exclusive lock, polling a non-blocking flock until the
// wait bound expires. On timeout it returns domain.ErrConcurrentOperation so
// callers fail fast instead of blocking behind another invocation.
func (l *Locker) Acquire(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(l.path), domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrCatalogWriteFailed, err)
	}

	file, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE, domain.FilePerm)
	if err != nil {
		return nil, errors.Join(domain.ErrCatalogWriteFailed, err)
	}

	deadline := time.Now().Add(l.wait)
	for {
		err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err == nil {
			break
		}
		if !errors.Is(err, syscall.EWOULDBLOCK) {
			_ = file.Close()
			return nil, errors.Join(domain.ErrCatalogWriteFailed, err)
		}
		if time.Now().After(deadline) {
			_ = file.Close()
			return nil, domain.ErrConcurrentOperation
		}

		select {
		case <-ctx.Done():
			_ = file.Close()
			return nil, errors.Join(domain.ErrConcurrentOperation, ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		_ = file.Close()
	}
	return release, nil
}
