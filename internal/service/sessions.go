package service

import (
	"sync"
	"time"

	"github.com/forkful/cart-service/internal/metrics"
	"golang.org/x/text/currency"
)

// SessionStore owns the carts of all active shopping sessions. Each session
// ID maps to exactly one Cart, created on first use and discarded on
// explicit teardown, TTL expiry, or LRU eviction when the store is full.
//
// The store combines LRU eviction with sliding TTL expiration; a background
// goroutine sweeps expired sessions.
type SessionStore struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	currency currency.Unit
	sessions map[string]*sessionEntry
	head     *sessionEntry
	tail     *sessionEntry
	stopCh   chan struct{}
	stopOnce sync.Once
}

// sessionEntry tracks one session's cart with expiration and LRU links.
type sessionEntry struct {
	id        string
	cart      *Cart
	expiresAt time.Time
	prev      *sessionEntry
	next      *sessionEntry
}

// NewSessionStore creates a session store with the given capacity, sliding
// TTL, and cart currency.
func NewSessionStore(capacity int, ttl time.Duration, unit currency.Unit) *SessionStore {
	s := &SessionStore{
		capacity: capacity,
		ttl:      ttl,
		currency: unit,
		sessions: make(map[string]*sessionEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Get returns the cart for the session if it exists and has not expired.
// A hit slides the session's expiry forward.
func (s *SessionStore) Get(sessionID string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.removeEntry(entry)
		s.publishCount()
		return nil, false
	}

	entry.expiresAt = time.Now().Add(s.ttl)
	s.moveToFront(entry)
	return entry.cart, true
}

// GetOrCreate returns the session's cart, creating an empty one when the
// session is new or has expired. Evicts the least recently used session when
// the store is at capacity.
func (s *SessionStore) GetOrCreate(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		if time.Now().Before(entry.expiresAt) {
			entry.expiresAt = time.Now().Add(s.ttl)
			s.moveToFront(entry)
			return entry.cart
		}
		s.removeEntry(entry)
	}

	entry := &sessionEntry{
		id:        sessionID,
		cart:      NewCart(s.currency),
		expiresAt: time.Now().Add(s.ttl),
	}
	s.sessions[sessionID] = entry
	s.addToFront(entry)

	if len(s.sessions) > s.capacity {
		s.removeTail()
	}

	s.publishCount()
	return entry.cart
}

// Drop discards a session and its cart. Used on logout or after the caller
// is done with the cart for good; dropping an absent session is a no-op.
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		s.removeEntry(entry)
		s.publishCount()
	}
}

// Currency returns the currency new carts are priced in.
func (s *SessionStore) Currency() currency.Unit {
	return s.currency
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Stop shuts down the background cleanup goroutine. Safe to call more than once.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// startCleanup sweeps expired sessions periodically.
func (s *SessionStore) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes all expired sessions.
func (s *SessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			s.removeEntry(entry)
		}
	}
	s.publishCount()
}

// publishCount updates the active sessions gauge. Caller holds s.mu.
func (s *SessionStore) publishCount() {
	metrics.UpdateActiveSessions(len(s.sessions))
}

// removeEntry removes an entry from both the map and the LRU list.
func (s *SessionStore) removeEntry(entry *sessionEntry) {
	delete(s.sessions, entry.id)
	s.unlink(entry)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (s *SessionStore) moveToFront(entry *sessionEntry) {
	if entry == s.head {
		return
	}
	s.unlink(entry)
	s.addToFront(entry)
}

// addToFront adds an entry to the front of the LRU list.
func (s *SessionStore) addToFront(entry *sessionEntry) {
	entry.prev = nil
	entry.next = s.head
	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry
	if s.tail == nil {
		s.tail = entry
	}
}

// unlink removes an entry from the LRU list without touching the map.
func (s *SessionStore) unlink(entry *sessionEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}
}

// removeTail evicts the least recently used session.
func (s *SessionStore) removeTail() {
	if s.tail == nil {
		return
	}
	metrics.RecordSessionEviction()
	s.removeEntry(s.tail)
}
