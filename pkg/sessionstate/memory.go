package sessionstate

import (
	"context"
	"sync"
	"time"
)

const (
	defaultTTL             = 30 * time.Minute
	defaultCleanupInterval = time.Minute
)

// memorySession holds one browser session's values with its expiry.
type memorySession struct {
	values    map[string]string
	expiresAt time.Time
}

func (s *memorySession) isExpired() bool {
	return time.Now().After(s.expiresAt)
}

// Memory is an in-memory Store with TTL-based expiration. A background
// janitor removes expired sessions; Close stops it.
type Memory struct {
	sessions map[string]*memorySession
	done     chan struct{}
	ttl      time.Duration
	mu       sync.Mutex
	closed   bool
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	ttl             time.Duration
	cleanupInterval time.Duration
}

// WithTTL sets how long a session's values survive after the last write.
// Default: 30 minutes.
func WithTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithCleanupInterval sets how often expired sessions are purged.
// Zero disables the janitor; expired sessions are then dropped lazily on access.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// NewMemory creates an in-memory session state store.
func NewMemory(opts ...MemoryOption) *Memory {
	o := memoryOptions{ttl: defaultTTL, cleanupInterval: defaultCleanupInterval}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Memory{
		sessions: make(map[string]*memorySession),
		done:     make(chan struct{}),
		ttl:      o.ttl,
	}

	if o.cleanupInterval > 0 {
		go m.janitor(o.cleanupInterval)
	}

	return m
}

// Set stores a value and refreshes the session's expiry.
func (m *Memory) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	sess, ok := m.sessions[sessionID]
	if !ok || sess.isExpired() {
		sess = &memorySession{values: make(map[string]string)}
		m.sessions[sessionID] = sess
	}

	sess.values[key] = value
	sess.expiresAt = time.Now().Add(m.ttl)
	return nil
}

// Get retrieves a value. Expired sessions are dropped on access.
func (m *Memory) Get(_ context.Context, sessionID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return "", ErrNotFound
	}
	if sess.isExpired() {
		delete(m.sessions, sessionID)
		return "", ErrNotFound
	}

	value, ok := sess.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Remove deletes the given keys. Absent sessions and keys are ignored.
func (m *Memory) Remove(_ context.Context, sessionID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}

	for _, key := range keys {
		delete(sess.values, key)
	}
	if len(sess.values) == 0 {
		delete(m.sessions, sessionID)
	}
	return nil
}

// Close stops the janitor goroutine. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

// janitor periodically removes expired sessions.
func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if sess.isExpired() {
			delete(m.sessions, id)
		}
	}
}

var _ Store = (*Memory)(nil)
