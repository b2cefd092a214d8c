// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
)

// Subscription is a handle on a live push subscription.
//
// Callbacks run one at a time on the subscription's delivery goroutine.
// Once Cancel returns no callback starts, even for snapshots that were
// already received. Cancel may be called from inside a callback.
type Subscription[T any] struct {
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}

	deliverMu  sync.Mutex
	cancelled  atomic.Bool
	inCallback atomic.Bool

	latestMu sync.RWMutex
	latest   T
	clone    func(T) T
}

func newSubscription[T any](cancel context.CancelFunc, initial T, clone func(T) T) *Subscription[T] {
	return &Subscription[T]{
		cancel: cancel,
		done:   make(chan struct{}),
		latest: initial,
		clone:  clone,
	}
}

// Cancel stops the subscription and releases the transport. It is
// idempotent.
func (s *Subscription[T]) Cancel() {
	s.once.Do(func() {
		s.cancelled.Store(true)
		s.cancel()

		// Wait out a delivery that passed the cancelled check but has not
		// entered its callback yet. Inside a callback the lock is already
		// held by this goroutine.
		if !s.inCallback.Load() {
			s.deliverMu.Lock()
			s.deliverMu.Unlock()
		}
	})
}

// Snapshot returns a copy of the latest delivered value.
func (s *Subscription[T]) Snapshot() T {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	return s.clone(s.latest)
}

// Done is closed when the delivery goroutine has exited.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// Cancelled reports whether Cancel was called.
func (s *Subscription[T]) Cancelled() bool {
	return s.cancelled.Load()
}

func (s *Subscription[T]) setLatest(v T) {
	s.latestMu.Lock()
	s.latest = v
	s.latestMu.Unlock()
}

// deliver runs fn unless the subscription has been cancelled.
func (s *Subscription[T]) deliver(fn func()) bool {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if s.cancelled.Load() {
		return false
	}

	s.inCallback.Store(true)
	defer s.inCallback.Store(false)
	fn()
	return true
}
