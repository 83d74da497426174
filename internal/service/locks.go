package service

import (
	"context"
	"fmt"
	"sync"
)

// lockTable serializes mutating operations per task id. Each id maps to a
// one-slot channel acting as a mutex, so acquisition can be abandoned when
// the caller's context ends.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]chan struct{})}
}

func (l *lockTable) slot(id string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot, ok := l.locks[id]
	if !ok {
		slot = make(chan struct{}, 1)
		l.locks[id] = slot
	}
	return slot
}

// acquire blocks until the task's lock is held or ctx ends. A caller whose
// context ends while another operation holds the lock has lost the race and
// gets ErrConflict; nothing has been applied on its behalf.
func (l *lockTable) acquire(ctx context.Context, id string) (release func(), err error) {
	slot := l.slot(id)
	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrConflict, ctx.Err())
	}
}
