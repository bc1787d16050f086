// Package layout turns a viewport-width signal into a presentation mode for the record form.
package layout

import (
	"sync"
)

const DefaultBreakpoint = 768

// Mode says where the create/edit form is drawn.
type Mode int

const (
	Modal Mode = iota
	Inline
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	default:
		return "modal"
	}
}

// ModeForWidth renders inline below the breakpoint. Unknown width (<= 0) means modal.
func ModeForWidth(width, breakpoint int) Mode {
	if width > 0 && width < breakpoint {
		return Inline
	}
	return Modal
}

// Observer publishes viewport width changes.
type Observer interface {
	Width() int
	Subscribe(fn func(width int)) (unsubscribe func())
}

// Signal is an Observer fed by Publish. Subscribers only hear about actual changes.
type Signal struct {
	mu     sync.Mutex
	width  int
	nextID int
	subs   map[int]func(int)
}

func NewSignal(width int) *Signal {
	return &Signal{width: width, subs: make(map[int]func(int))}
}

func (s *Signal) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

func (s *Signal) Subscribe(fn func(int)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Signal) Publish(width int) {
	s.mu.Lock()
	if width <= 0 || width == s.width {
		s.mu.Unlock()
		return
	}
	s.width = width
	fns := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// called outside the lock so subscribers may read Width
	for _, fn := range fns {
		fn(width)
	}
}

// Subscribers is the number of live subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Registry keeps one Signal per owner.
type Registry struct {
	mu      sync.Mutex
	signals map[string]*Signal
}

func NewRegistry() *Registry {
	return &Registry{signals: make(map[string]*Signal)}
}

func (r *Registry) For(owner string) *Signal {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.signals[owner]
	if !ok {
		s = NewSignal(0)
		r.signals[owner] = s
	}
	return s
}

// Forget drops an owner's signal once nothing listens to it.
func (r *Registry) Forget(owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.signals[owner]; ok && s.Subscribers() == 0 {
		delete(r.signals, owner)
	}
}
