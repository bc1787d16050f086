// Package dashboard holds the owner-scoped experience screen: list loading,
// the shared create/edit form slot, deletion, and the presentation mode.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/dto"
	"github.com/Zachkp/folio/internal/layout"
)

const (
	MsgAdded   = "Experience added successfully"
	MsgUpdated = "Experience updated successfully"
	MsgDeleted = "Experience entry deleted successfully"

	MsgLoadFailed   = "Error fetching experience data"
	MsgSaveFailed   = "Error saving experience details"
	MsgDeleteFailed = "Error deleting experience entry"

	DeletePrompt = "Are you sure you want to delete this experience entry?"
)

type Store interface {
	ListByOwner(ctx context.Context, owner string) ([]dto.Experience, error)
	Insert(ctx context.Context, e dto.Experience) (dto.Experience, error)
	Update(ctx context.Context, e dto.Experience) error
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

// Notifier surfaces transient success/failure messages.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// Confirmer blocks on the user before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Screen is one owner's dashboard state. Safe for concurrent use.
type Screen struct {
	mu sync.Mutex

	owner      string
	store      Store
	breakpoint int

	mode        layout.Mode
	unsubscribe func()

	items  []dto.Experience
	loaded bool

	// form.ID names the record being edited; blank while creating.
	form     dto.ExperienceForm
	formOpen bool
}

// NewScreen subscribes to obs; call Close to release the subscription.
func NewScreen(owner string, store Store, obs layout.Observer, breakpoint int) *Screen {
	if breakpoint <= 0 {
		breakpoint = layout.DefaultBreakpoint
	}

	s := &Screen{
		owner:      owner,
		store:      store,
		breakpoint: breakpoint,
		mode:       layout.ModeForWidth(obs.Width(), breakpoint),
	}
	s.unsubscribe = obs.Subscribe(s.onResize)

	return s
}

func (s *Screen) onResize(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = layout.ModeForWidth(width, s.breakpoint)
}

func (s *Screen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *Screen) Owner() string { return s.owner }

func (s *Screen) Mode() layout.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Screen) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Reload fetches the owner's records. On error the previous list stays in place.
func (s *Screen) Reload(ctx context.Context, n Notifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx, n)
}

func (s *Screen) reload(ctx context.Context, n Notifier) error {
	items, err := s.store.ListByOwner(ctx, s.owner)
	if err != nil {
		n.Failure(message(err, MsgLoadFailed))
		return err
	}

	s.items = items
	s.loaded = true
	return nil
}

// OpenCreate shows a blank form, replacing whatever form was open.
func (s *Screen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = dto.BlankExperienceForm()
	s.formOpen = true
}

// OpenEdit loads the form from a listed record. False if id is not in the list.
func (s *Screen) OpenEdit(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.formOpen = false

	for _, rec := range s.items {
		if rec.ID == id {
			s.form = dto.ExperienceFormFrom(rec)
			s.formOpen = true
			return true
		}
	}

	return false
}

// UpdateForm stores in-progress input, applying the current-job rule.
func (s *Screen) UpdateForm(f dto.ExperienceForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.SetCurrentJob(f.CurrentJob)
	s.form = f
}

func (s *Screen) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeForm()
}

func (s *Screen) closeForm() {
	s.formOpen = false
	s.form = dto.BlankExperienceForm()
}

// Submit updates the record named by f.ID, or inserts when f.ID is blank.
// On success the form closes and the list reloads; on failure the form keeps
// the submitted values.
func (s *Screen) Submit(ctx context.Context, f dto.ExperienceForm, n Notifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.SetCurrentJob(f.CurrentJob)
	s.form = f

	if err := f.Validate(); err != nil {
		n.Failure(message(err, MsgSaveFailed))
		return false
	}

	rec := f.Record(s.owner)

	if rec.ID != uuid.Nil {
		if err := s.store.Update(ctx, rec); err != nil {
			n.Failure(message(err, MsgSaveFailed))
			return false
		}
		n.Success(MsgUpdated)
	} else {
		if _, err := s.store.Insert(ctx, rec); err != nil {
			n.Failure(message(err, MsgSaveFailed))
			return false
		}
		n.Success(MsgAdded)
	}

	s.closeForm()
	_ = s.reload(ctx, n)

	return true
}

// Delete asks c first; a declined prompt changes nothing.
func (s *Screen) Delete(ctx context.Context, id uuid.UUID, c Confirmer, n Notifier) bool {
	if !c.Confirm(DeletePrompt) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.owner, id); err != nil {
		n.Failure(message(err, MsgDeleteFailed))
		return false
	}

	n.Success(MsgDeleted)

	if s.form.ID == id.String() {
		s.closeForm()
	}
	_ = s.reload(ctx, n)

	return true
}

func message(err error, fallback string) string {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, dto.ErrNotFound) {
		return "Experience entry not found"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
