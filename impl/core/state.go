package core

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"chatguru/entity"
)

// maxTrackedMessages bounds the in-memory history; once full, the oldest
// entries are dropped first.
const maxTrackedMessages = 1024

// MessageStore keeps recent message states in memory, newest retained up
// to maxTrackedMessages. Safe for concurrent use.
type MessageStore struct {
	mu     sync.RWMutex
	states map[string]entity.MessageState
	order  []string
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		states: make(map[string]entity.MessageState),
	}
}

// Track stores one state and returns its fingerprint, minting one when
// the caller left it empty.
func (s *MessageStore) Track(state entity.MessageState) string {
	if state.Fingerprint == "" {
		state.Fingerprint = uuid.NewString()
	}
	if state.Timestamp.IsZero() {
		state.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.states[state.Fingerprint]; !exists {
		s.order = append(s.order, state.Fingerprint)
	}
	s.states[state.Fingerprint] = state

	for len(s.order) > maxTrackedMessages {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.states, oldest)
	}

	return state.Fingerprint
}

// MarkSent flips the sent flag of a tracked state. It reports false when
// the fingerprint is unknown, which happens once eviction caught up with
// it.
func (s *MessageStore) MarkSent(fingerprint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[fingerprint]
	if !ok {
		return false
	}
	state.Sent = true
	s.states[fingerprint] = state
	return true
}

// Get returns one tracked state by fingerprint.
func (s *MessageStore) Get(fingerprint string) (entity.MessageState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[fingerprint]
	return state, ok
}

// Recent returns up to limit states, newest first. A non-positive limit
// returns everything.
func (s *MessageStore) Recent(limit int) []entity.MessageState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]entity.MessageState, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.states[s.order[i]])
	}
	return out
}

func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
