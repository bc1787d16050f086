package dashboard

import (
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/dto"
	"github.com/Zachkp/folio/internal/layout"
)

// Item is one listed record ready for a template.
type Item struct {
	dto.Experience
	DateRange string
	// Inline edit: the form is drawn in place of this card.
	ShowForm bool
}

// View is a snapshot of the screen for rendering.
type View struct {
	Mode   layout.Mode
	Loaded bool
	Items  []Item

	Form      dto.ExperienceForm
	FormOpen  bool
	Editing   bool
	EditingID uuid.UUID

	// Where the open form goes.
	InlineCreate bool
	Dialog       bool
}

func (v View) Inline() bool { return v.Mode == layout.Inline }

func (v View) Empty() bool { return len(v.Items) == 0 }

func (v View) Title() string {
	if v.Editing {
		return "Edit Experience"
	}
	return "Add Experience"
}

func (v View) SubmitLabel() string {
	if v.Editing {
		return "Update Experience"
	}
	return "Add Experience"
}

func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	editingID, _ := uuid.Parse(s.form.ID)
	editing := editingID != uuid.Nil

	v := View{
		Mode:      s.mode,
		Loaded:    s.loaded,
		Form:      s.form,
		FormOpen:  s.formOpen,
		Editing:   editing,
		EditingID: editingID,
		Items:     make([]Item, 0, len(s.items)),
	}

	inline := s.mode == layout.Inline
	v.Dialog = s.formOpen && !inline
	v.InlineCreate = s.formOpen && inline && !editing

	shown := false
	for _, rec := range s.items {
		item := Item{
			Experience: rec,
			DateRange:  dto.DateRange(rec.StartDate, rec.EndDate, rec.CurrentJob),
			ShowForm:   s.formOpen && inline && editing && editingID == rec.ID,
		}
		shown = shown || item.ShowForm
		v.Items = append(v.Items, item)
	}
	// an edited record missing from the list still gets its form, at the top
	if s.formOpen && inline && editing && !shown {
		v.InlineCreate = true
	}

	return v
}
