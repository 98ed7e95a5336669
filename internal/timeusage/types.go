package timeusage

import (
	"github.com/go-gota/gota/dataframe"

	"atuscli/internal/config"
)

// Demographic labels derived from the survey control codes.
const (
	LabelWorking    = "working"
	LabelNotWorking = "not working"

	LabelMale   = "male"
	LabelFemale = "female"

	LabelYoung  = "young"
	LabelActive = "active"
	LabelElder  = "elder"
)

// maxEmploymentCode is the highest employment status code still inside
// the labor-force classification universe. Rows above it are dropped.
const maxEmploymentCode = 4

// Frame is a loaded source table: the typed dataframe plus the ordered
// column catalog discovered from the header and the schema used to load it.
type Frame struct {
	Columns []string
	Data    dataframe.DataFrame
	Schema  config.SurveyConfig
}

// Nrow returns the number of respondent rows in the frame
func (f *Frame) Nrow() int {
	return f.Data.Nrow()
}

// HasColumn reports whether the catalog contains the named column
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnSets holds the three disjoint activity column groups. Columns
// matching none of the classification rules appear in no set.
type ColumnSets struct {
	PrimaryNeeds []string
	Work         []string
	Other        []string
}

// Summary is one eligible respondent reduced to demographic labels and
// hour totals per bucket. Work and Other are whole hours; PrimaryNeeds
// keeps full precision.
type Summary struct {
	Working      string
	Sex          string
	Age          string
	PrimaryNeeds float64
	Work         float64
	Other        float64
}

// GroupKey identifies one demographic partition
type GroupKey struct {
	Working string
	Sex     string
	Age     string
}

// GroupAverage is one output row: the mean hours per bucket across all
// summaries sharing a group key, rounded to one decimal.
type GroupAverage struct {
	Working      string
	Sex          string
	Age          string
	PrimaryNeeds float64
	Work         float64
	Other        float64
}

// Key returns the group key of the average row
func (g GroupAverage) Key() GroupKey {
	return GroupKey{Working: g.Working, Sex: g.Sex, Age: g.Age}
}
