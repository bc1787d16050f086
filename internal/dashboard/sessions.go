package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/layout"
)

type session struct {
	screen   *Screen
	lastUsed time.Time
}

// Sessions hands out one Screen per owner and retires idle ones.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session

	store      Store
	layouts    *layout.Registry
	breakpoint int
	idle       time.Duration
	now        func() time.Time
}

func NewSessions(store Store, layouts *layout.Registry, breakpoint int, idle time.Duration) *Sessions {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &Sessions{
		sessions:   make(map[string]*session),
		store:      store,
		layouts:    layouts,
		breakpoint: breakpoint,
		idle:       idle,
		now:        time.Now,
	}
}

// Get returns the owner's screen, creating it on first use.
func (s *Sessions) Get(owner string) *Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[owner]
	if !ok {
		sess = &session{
			screen: NewScreen(owner, s.store, s.layouts.For(owner), s.breakpoint),
		}
		s.sessions[owner] = sess
	}
	sess.lastUsed = s.now()

	return sess.screen
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes screens idle for longer than the timeout.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idle)
	evicted := 0
	for owner, sess := range s.sessions {
		if sess.lastUsed.After(cutoff) {
			continue
		}
		sess.screen.Close()
		delete(s.sessions, owner)
		s.layouts.Forget(owner)
		evicted++
	}

	return evicted
}

// Run sweeps until ctx is done.
func (s *Sessions) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.idle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Int("active", s.Len()).Msg("dashboard sessions swept")
			}
		}
	}
}
