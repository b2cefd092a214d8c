// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// stream hands subscription callbacks over to the Bubble Tea event loop.
//
// Callbacks never block: put keeps only the latest value and signals the
// reader. A full snapshot supersedes the previous one, so coalescing loses
// nothing. Subscription.Cancel waits for a running callback, which makes a
// blocking hand-off unsafe while Update cancels.
type stream[T any] struct {
	id int

	mu    sync.Mutex
	value T
	err   error

	signal    chan struct{}
	stop      chan struct{}
	closeOnce sync.Once
}

// streamMsg carries the latest value of stream id. A non-nil err ends the
// stream.
type streamMsg[T any] struct {
	id    int
	value T
	err   error
}

func newStream[T any](id int) *stream[T] {
	return &stream[T]{
		id:     id,
		signal: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
}

func (s *stream[T]) put(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	s.notify()
}

func (s *stream[T]) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.notify()
}

func (s *stream[T]) notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// next waits for the following delivery. It yields no message once the
// stream is closed.
func (s *stream[T]) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.signal:
		case <-s.stop:
			return nil
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		return streamMsg[T]{id: s.id, value: s.value, err: s.err}
	}
}

func (s *stream[T]) close() {
	s.closeOnce.Do(func() { close(s.stop) })
}
