package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
)

// DefaultSessionTTL is how long a previewed transfer stays confirmable.
// Stock levels drift, so a stale preview must not be executable forever.
const DefaultSessionTTL = 15 * time.Minute

// session pairs a workflow with its expiry deadline.
type session struct {
	workflow  *service.Workflow
	expiresAt time.Time
}

// sessionStore holds in-flight transfer workflows keyed by session ID.
// A janitor goroutine evicts expired sessions.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// newSessionStore creates a session store with the given TTL and starts
// its janitor.
func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go s.janitor()
	return s
}

// create registers a workflow and returns its new session ID.
func (s *sessionStore) create(w *service.Workflow) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{
		workflow:  w,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return id
}

// get returns the workflow for the given session ID, or nil if the
// session is unknown or expired. Each hit renews the expiry.
func (s *sessionStore) get(id string) *service.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return nil
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess.workflow
}

// remove drops a session once its workflow reached a terminal state.
func (s *sessionStore) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// len returns the number of live sessions.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// janitor periodically evicts expired sessions.
func (s *sessionStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// stop shuts down the janitor.
func (s *sessionStore) stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}
