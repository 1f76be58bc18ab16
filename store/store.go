// Package store holds decoded point clouds keyed by window ID for the
// session and visualization layers.
package store

import (
	"sync"

	"github.com/pulto-app/pointcloud/cloud"
)

// Store is a concurrency safe registry of decoded point clouds keyed by
// the session manager's integer window ID. Any number of Get calls may
// run concurrently; Set, Remove and RemoveAll take exclusive access for
// the duration of the mutation. A Get issued after a write returns
// observes that write.
//
// Stored clouds are treated as immutable: Set replaces an entry
// wholesale, and callers must not modify a cloud after storing it.
type Store struct {
	mu     sync.RWMutex
	clouds map[int]*cloud.Data
}

// NewStore creates an empty store. The process-wide instance is built
// once at the composition root and injected into consumers.
func NewStore() *Store {
	return &Store{clouds: make(map[int]*cloud.Data)}
}

// Set publishes the cloud under the given window ID, replacing any
// previous entry.
func (s *Store) Set(id int, d *cloud.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clouds[id] = d
}

// Get returns the cloud stored under the given window ID.
func (s *Store) Get(id int) (*cloud.Data, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.clouds[id]
	return d, ok
}

// Remove drops the entry for the given window ID, if any.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clouds, id)
}

// RemoveAll drops every entry. Used on app-wide state reset.
func (s *Store) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clouds = make(map[int]*cloud.Data)
}

// Len returns the number of stored clouds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clouds)
}
