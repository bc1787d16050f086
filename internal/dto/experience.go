package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Experience is a work-history entry owned by one user.
type Experience struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Owner       string    `json:"user_id" db:"user_id"`
	Company     string    `json:"company" db:"company"`
	Position    string    `json:"position" db:"position"`
	Location    string    `json:"location,omitempty" db:"location"`
	StartDate   *Date     `json:"start_date" db:"start_date"`
	EndDate     *Date     `json:"end_date" db:"end_date"`
	CurrentJob  bool      `json:"current_job" db:"current_job"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Normalize trims text fields and drops the end date of an ongoing role.
func (e *Experience) Normalize() {
	e.Company = strings.TrimSpace(e.Company)
	e.Position = strings.TrimSpace(e.Position)
	e.Location = strings.TrimSpace(e.Location)
	e.Description = strings.TrimSpace(e.Description)
	if e.CurrentJob {
		e.EndDate = nil
	}
}

func (e Experience) Validate() error {
	if strings.TrimSpace(e.Company) == "" {
		return required("company")
	}
	if strings.TrimSpace(e.Position) == "" {
		return required("position")
	}
	return nil
}

// ExperienceForm is the editable state behind the create/edit form.
// Dates hold raw <input type="date"> values.
type ExperienceForm struct {
	// Empty while creating; the record being edited otherwise.
	ID          string `form:"id" json:"id,omitempty"`
	Company     string `form:"company" json:"company"`
	Position    string `form:"position" json:"position"`
	Location    string `form:"location" json:"location"`
	StartDate   string `form:"start_date" json:"start_date"`
	EndDate     string `form:"end_date" json:"end_date"`
	CurrentJob  bool   `form:"current_job" json:"current_job"`
	Description string `form:"description" json:"description"`
}

func BlankExperienceForm() ExperienceForm {
	return ExperienceForm{}
}

func ExperienceFormFrom(e Experience) ExperienceForm {
	f := ExperienceForm{
		Company:     e.Company,
		Position:    e.Position,
		Location:    e.Location,
		StartDate:   DateString(e.StartDate),
		EndDate:     DateString(e.EndDate),
		CurrentJob:  e.CurrentJob,
		Description: e.Description,
	}
	if e.ID != uuid.Nil {
		f.ID = e.ID.String()
	}
	return f
}

// SetCurrentJob flips the toggle; switching it on clears the end date.
func (f *ExperienceForm) SetCurrentJob(on bool) {
	f.CurrentJob = on
	if on {
		f.EndDate = ""
	}
}

// EndDateDisabled reports whether the end date input should be inert.
func (f ExperienceForm) EndDateDisabled() bool {
	return f.CurrentJob
}

func (f ExperienceForm) Validate() error {
	if f.ID != "" {
		if _, err := uuid.Parse(f.ID); err != nil {
			return &ValidationError{Field: "id", Message: "invalid value in field 'id'=" + f.ID}
		}
	}
	if strings.TrimSpace(f.Company) == "" {
		return required("company")
	}
	if strings.TrimSpace(f.Position) == "" {
		return required("position")
	}
	if _, err := ParseOptionalDate(f.StartDate); err != nil {
		return &ValidationError{Field: "start_date", Message: "invalid value in field 'start_date'=" + f.StartDate}
	}
	if !f.CurrentJob {
		if _, err := ParseOptionalDate(f.EndDate); err != nil {
			return &ValidationError{Field: "end_date", Message: "invalid value in field 'end_date'=" + f.EndDate}
		}
	}
	return nil
}

// Record converts the form into a record for owner. Validate first.
// A blank ID yields uuid.Nil, meaning a new record.
func (f ExperienceForm) Record(owner string) Experience {
	start, _ := ParseOptionalDate(f.StartDate)
	end, _ := ParseOptionalDate(f.EndDate)
	id, _ := uuid.Parse(f.ID)

	e := Experience{
		ID:          id,
		Owner:       owner,
		Company:     f.Company,
		Position:    f.Position,
		Location:    f.Location,
		StartDate:   start,
		EndDate:     end,
		CurrentJob:  f.CurrentJob,
		Description: f.Description,
	}
	e.Normalize()

	return e
}
