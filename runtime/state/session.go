package state

import (
	"sort"
	"sync"

	"github.com/viant/s3flow/model/types"
)

// Session is an in-memory key-value context shared by actions of a run
type Session struct {
	ID        string
	values    map[string]interface{}
	mu        sync.RWMutex
	listeners []Listener // invoked on Set
}

// Listener is invoked every time Session.Set overwrites an existing key
// or inserts a new one.
type Listener func(s *Session, key string, oldVal, newVal interface{})

var _ types.State = (*Session)(nil)

// RegisterListeners attaches callbacks that will be called on every Set.
// Listeners run after the session lock is released so they may read the session.
func (s *Session) RegisterListeners(fn ...Listener) {
	if len(fn) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn...)
}

// Set adds or updates a value
func (s *Session) Set(key string, value interface{}) {
	s.mu.Lock()
	old := s.values[key]
	s.values[key] = value
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(s, key, old, value)
	}
}

// Get retrieves a value
func (s *Session) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, exists := s.values[key]
	return value, exists
}

// Delete removes a value
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// GetString retrieves a value as a string
func (s *Session) GetString(key string) (string, bool) {
	value, exists := s.Get(key)
	if !exists {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// Keys returns sorted keys
func (s *Session) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns a copy of all values
func (s *Session) GetAll() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		result[k] = v
	}
	return result
}

// Clone creates a copy of the session, listeners are shared
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := NewSession(s.ID)
	clone.listeners = append(clone.listeners, s.listeners...)
	for k, v := range s.values {
		clone.values[k] = v
	}
	return clone
}

// NewSession creates a new session
func NewSession(id string, opt ...Option) *Session {
	ret := &Session{
		ID:     id,
		values: make(map[string]interface{}),
	}
	for _, o := range opt {
		o(ret)
	}
	return ret
}
