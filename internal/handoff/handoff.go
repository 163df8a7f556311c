// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package handoff carries one text payload from one tool to the next.
//
// A Buffer holds at most one value. Consume returns the value and empties
// the slot in one step; there is no way to read without consuming.
package handoff

import (
	"context"
	"errors"
	"sync"
)

// ErrUnavailable means the backing slot could not be reached.
var ErrUnavailable = errors.New("handoff buffer unavailable")

// Buffer is a single-slot consume-once handoff.
type Buffer interface {
	// Set stores content, replacing any previous value.
	Set(ctx context.Context, content string) error

	// Clear empties the slot.
	Clear(ctx context.Context) error

	// Consume returns the stored value and empties the slot. ok is false
	// when the slot was already empty.
	Consume(ctx context.Context) (content string, ok bool, err error)
}

var _ Buffer = (*Slot)(nil)

// Slot is a process-local Buffer. The zero value is an empty slot.
type Slot struct {
	mu    sync.Mutex
	value string
	full  bool
}

// NewSlot returns an empty in-memory slot.
func NewSlot() *Slot {
	return &Slot{}
}

func (s *Slot) Set(_ context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = content
	s.full = true
	return nil
}

func (s *Slot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	s.full = false
	return nil
}

func (s *Slot) Consume(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		return "", false, nil
	}
	v := s.value
	s.value = ""
	s.full = false
	return v, true, nil
}
