package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Education is a degree or certification owned by one user.
type Education struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Owner       string    `json:"user_id" db:"user_id"`
	Institution string    `json:"institution" db:"institution"`
	Degree      string    `json:"degree" db:"degree"`
	StartDate   *Date     `json:"start_date" db:"start_date"`
	EndDate     *Date     `json:"end_date" db:"end_date"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (e *Education) Normalize() {
	e.Institution = strings.TrimSpace(e.Institution)
	e.Degree = strings.TrimSpace(e.Degree)
	e.Description = strings.TrimSpace(e.Description)
}

func (e Education) Validate() error {
	if strings.TrimSpace(e.Institution) == "" {
		return required("institution")
	}
	if strings.TrimSpace(e.Degree) == "" {
		return required("degree")
	}
	if e.StartDate != nil && e.EndDate != nil && e.EndDate.Before(e.StartDate.Time) {
		return &ValidationError{
			Field:   "end_date",
			Message: "invalid value in field 'period'={from:" + e.StartDate.String() + " to:" + e.EndDate.String() + "}",
		}
	}
	return nil
}
