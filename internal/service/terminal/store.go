package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/termfolio/pkg/log"
)

const evictInterval = time.Minute

type storeEntry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps one Session per visitor id and evicts idle ones.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*storeEntry
	factory  func() *Session
	ttl      time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewStore(factory func() *Session, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*storeEntry),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Get returns the session for id, creating one under a fresh id when id is
// unknown or malformed. The returned id is the one to hand back to the
// visitor.
func (s *Store) Get(id string) (string, *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.sessions[id]; ok {
			e.lastSeen = s.now()
			return id, e.session
		}
	}

	id = uuid.NewString()
	e := &storeEntry{session: s.factory(), lastSeen: s.now()}
	s.sessions[id] = e
	return id, e.session
}

// Find returns the stored session for id without creating one.
func (s *Store) Find(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// Fresh returns a new session that is not stored.
func (s *Store) Fresh() *Session {
	return s.factory()
}

// Evict removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.ttl)
	evicted := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Start runs the eviction loop until ctx is done or Shutdown is called.
func (s *Store) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			if n := s.Evict(); n > 0 {
				logger.Debug().Int("evicted", n).Int("active", s.Len()).Msg("evicted idle sessions")
			}
		}
	}
}

func (s *Store) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
