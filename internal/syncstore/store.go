package syncstore

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the authoritative value for a key from the commerce API.
type FetchFunc func(ctx context.Context) (any, error)

// Event notifies subscribers that a key changed and dependents should
// refetch.
type Event struct {
	Key Key       `json:"key"`
	At  time.Time `json:"at"`
}

// Store is the client-side cache between controllers and the remote API.
// Values are only ever repopulated from server responses (pessimistic
// refetch); concurrent fetches for the same key are deduplicated.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry

	group singleflight.Group

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int

	logger *zap.Logger
}

type entry struct {
	value     any
	fetchedAt time.Time
}

func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		entries: make(map[Key]entry),
		subs:    make(map[int]chan Event),
		logger:  logger,
	}
}

// Get returns the cached value for key, fetching it when absent. Concurrent
// callers for the same key share a single fetch.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return e.value, nil
	}

	value, err, _ := s.group.Do(string(key), func() (any, error) {
		// a concurrent fetch may have landed while we queued
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			return e.value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = entry{value: value, fetchedAt: time.Now()}
		s.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Peek returns the cached value without fetching.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate drops the given keys and notifies subscribers. In-flight
// deduplicated fetches are forgotten so the next Get hits the server.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
		s.group.Forget(string(key))
	}
	s.mu.Unlock()

	s.Notify(keys...)
}

// Refetch is the mutation discipline: one invalidation plus one
// authoritative refetch of the key.
func (s *Store) Refetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	s.Invalidate(key)
	return s.Get(ctx, key, fetch)
}

// Notify publishes a change event without touching cached values.
func (s *Store) Notify(keys ...Key) {
	now := time.Now()
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, key := range keys {
		for _, ch := range s.subs {
			select {
			case ch <- Event{Key: key, At: now}:
			default:
				// slow subscriber, drop rather than block mutations
			}
		}
	}
}

// Subscribe registers a change listener. The returned cancel func must be
// called to release it.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
	return ch, cancel
}
