// Package journal records dispatched commands for later inspection.
// The bridge writes one entry per command; failures to record never
// fail the command itself.
package journal

import (
	"context"
	"sync"
	"time"
)

// Entry is one dispatched command.
type Entry struct {
	ID        string        `json:"id"`
	Category  string        `json:"category"`
	Operation string        `json:"operation"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
	Waited    bool          `json:"waited,omitempty"`
}

// Store persists command entries.
type Store interface {
	Record(ctx context.Context, e Entry) error
	// Recent returns up to n entries, newest first.
	Recent(ctx context.Context, n int) ([]Entry, error)
}

// MemoryStore is a bounded in-process ring of entries, the default
// backend.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

// NewMemoryStore creates a store keeping at most capacity entries.
// capacity <= 0 defaults to 256.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 256
	}
	return &MemoryStore{cap: capacity}
}

// Record appends an entry, evicting the oldest past capacity.
func (s *MemoryStore) Record(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if len(s.entries) > s.cap {
		s.entries = s.entries[len(s.entries)-s.cap:]
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *MemoryStore) Recent(_ context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}
