package portfolio

import (
	"strings"

	"github.com/Zachkp/folio/internal/dto"
)

type Profile struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	Avatar   string
	Bio      string
	Skills   []string
	Social   Social

	Projects   []Project
	Experience []Entry
	Education  []Entry
}

type Social struct {
	GitHub   string
	LinkedIn string
}

type Project struct {
	Title        string
	Description  string
	Technologies []string
	LiveURL      string
	SourceURL    string
	Image        string
}

// Entry is one line of the experience or education timeline.
type Entry struct {
	Heading     string // position or degree
	Subheading  string // company or institution
	Location    string
	Period      string
	Description string
}

// Initials gives the avatar fallback, e.g. "AJ" for "Alex Johnson".
func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func ExperienceEntries(recs []dto.Experience) []Entry {
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		out = append(out, Entry{
			Heading:     r.Position,
			Subheading:  r.Company,
			Location:    r.Location,
			Period:      dto.DateRange(r.StartDate, r.EndDate, r.CurrentJob || r.EndDate == nil),
			Description: r.Description,
		})
	}
	return out
}

func EducationEntries(recs []dto.Education) []Entry {
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		out = append(out, Entry{
			Heading:     r.Degree,
			Subheading:  r.Institution,
			Period:      dto.DateRange(r.StartDate, r.EndDate, r.EndDate == nil),
			Description: r.Description,
		})
	}
	return out
}
