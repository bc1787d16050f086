package dto

import (
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2022-01-15"))
	assert.Equal(t, "2022-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2021-12-31")))
	assert.Equal(t, "2021-12-31", d.String())

	require.NoError(t, d.Scan(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-06-01", d.String())

	require.NoError(t, d.Scan("2019-03-04T00:00:00Z"))
	assert.Equal(t, "2019-03-04", d.String())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))
}

func TestDateValueAndJSON(t *testing.T) {
	d := NewDate(2022, time.January, 1)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("2022-01-01"), v)

	type wrapper struct {
		End *Date `json:"end_date"`
	}
	b, err := json.Marshal(wrapper{End: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"end_date":"2022-01-01"}`, string(b))

	b, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"end_date":null}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":"2023-05-31"}`), &w))
	assert.Equal(t, "2023-05-31", w.End.String())

	var empty wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":null}`), &empty))
	assert.Nil(t, empty.End)

	assert.Error(t, json.Unmarshal([]byte(`{"end_date":"31/05/2023"}`), &w))
}

func TestDateRange(t *testing.T) {
	start := NewDate(2022, time.January, 1)
	end := NewDate(2023, time.March, 31)

	assert.Equal(t, "Jan 2022 - Present", DateRange(&start, nil, true))
	assert.Equal(t, "Jan 2022 - Present", DateRange(&start, &end, true))
	assert.Equal(t, "Jan 2022 - Mar 2023", DateRange(&start, &end, false))
	assert.Equal(t, "Jan 2022 - ", DateRange(&start, nil, false))
	assert.Equal(t, "", DateRange(nil, &end, false))
}

func TestExperienceFormCurrentJobToggle(t *testing.T) {
	f := ExperienceForm{Company: "Acme", Position: "Engineer", EndDate: "2024-01-01"}

	f.SetCurrentJob(true)
	assert.True(t, f.CurrentJob)
	assert.True(t, f.EndDateDisabled())
	assert.Equal(t, "", f.EndDate)

	f.SetCurrentJob(false)
	assert.False(t, f.EndDateDisabled())
	assert.Equal(t, "", f.EndDate, "turning the toggle off does not restore the old date")
}

func TestExperienceFormRecordDropsEndDateForCurrentJob(t *testing.T) {
	// a form posted with both set, e.g. by a client that ignored the disabled input
	f := ExperienceForm{Company: " Acme ", Position: "Engineer", StartDate: "2022-01-01", EndDate: "2024-01-01", CurrentJob: true}
	require.NoError(t, f.Validate())

	rec := f.Record("user_1")
	assert.Equal(t, "user_1", rec.Owner)
	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, "2022-01-01", rec.StartDate.String())
	assert.Nil(t, rec.EndDate)
}

func TestExperienceFormValidate(t *testing.T) {
	cases := []struct {
		name  string
		form  ExperienceForm
		field string
	}{
		{"missing company", ExperienceForm{Position: "Engineer"}, "company"},
		{"missing position", ExperienceForm{Company: "Acme", Position: " "}, "position"},
		{"bad start", ExperienceForm{Company: "Acme", Position: "Eng", StartDate: "01/02/2020"}, "start_date"},
		{"bad end", ExperienceForm{Company: "Acme", Position: "Eng", EndDate: "soon"}, "end_date"},
		{"bad id", ExperienceForm{ID: "42", Company: "Acme", Position: "Eng"}, "id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verr *ValidationError
			require.ErrorAs(t, tc.form.Validate(), &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	ok := ExperienceForm{Company: "Acme", Position: "Eng", EndDate: "soon", CurrentJob: true}
	assert.NoError(t, ok.Validate(), "end date is ignored for a current job")
}

func TestExperienceFormRoundTrip(t *testing.T) {
	start := NewDate(2020, time.June, 1)
	end := NewDate(2021, time.December, 31)
	rec := Experience{ID: uuid.New(), Owner: "u", Company: "StartupXYZ", Position: "Full Stack Developer",
		StartDate: &start, EndDate: &end, Description: "CI/CD"}

	f := ExperienceFormFrom(rec)
	assert.Equal(t, "2020-06-01", f.StartDate)
	assert.Equal(t, "2021-12-31", f.EndDate)
	assert.Equal(t, rec.ID.String(), f.ID)

	back := f.Record("u")
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.Company, back.Company)
	assert.Equal(t, rec.StartDate.String(), back.StartDate.String())
	assert.Equal(t, rec.EndDate.String(), back.EndDate.String())

	assert.Equal(t, ExperienceForm{}, BlankExperienceForm())
	assert.Equal(t, uuid.Nil, BlankExperienceForm().Record("u").ID)
}
