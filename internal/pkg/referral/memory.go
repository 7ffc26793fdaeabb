package referral

import (
	"net/http"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests to stand in for the
// client-held cookie.
type MemoryStore struct {
	mu         sync.Mutex
	code       string
	capturedAt time.Time
	window     time.Duration
	Now        func() time.Time
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{window: window, Now: time.Now}
}

func (s *MemoryStore) Set(_ http.ResponseWriter, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	s.capturedAt = s.Now()
}

func (s *MemoryStore) Get(_ *http.Request) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.code == "" {
		return "", false
	}
	if s.Now().Sub(s.capturedAt) > s.window {
		return "", false
	}
	return s.code, true
}

func (s *MemoryStore) Clear(_ http.ResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = ""
}
