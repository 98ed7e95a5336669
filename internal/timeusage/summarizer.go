package timeusage

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	apperrors "atuscli/internal/errors"
	"atuscli/internal/infrastructure"
)

// Summarize reduces each eligible respondent row to one Summary: the three
// demographic labels plus hours per activity bucket. Respondents with an
// employment code above maxEmploymentCode are excluded. (The survey
// documentation describes the exclusion as "code 5"; the filter actually
// applied admits codes 1-4 and rejects everything above 4, which is the
// behavior kept here.)
func Summarize(ctx context.Context, sets ColumnSets, frame *Frame) ([]Summary, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	for _, name := range []string{
		frame.Schema.EmploymentColumn,
		frame.Schema.SexColumn,
		frame.Schema.AgeColumn,
	} {
		if !frame.HasColumn(name) {
			return nil, apperrors.NewSchemaError(
				fmt.Sprintf("control column %q missing from header", name), nil)
		}
	}

	employment := frame.Data.Col(frame.Schema.EmploymentColumn).Float()
	sex := frame.Data.Col(frame.Schema.SexColumn).Float()
	age := frame.Data.Col(frame.Schema.AgeColumn).Float()

	primaryMinutes := sumColumns(frame, sets.PrimaryNeeds)
	workMinutes := sumColumns(frame, sets.Work)
	otherMinutes := sumColumns(frame, sets.Other)

	summaries := make([]Summary, 0, frame.Nrow())
	for i := 0; i < frame.Nrow(); i++ {
		if employment[i] > maxEmploymentCode {
			continue
		}
		summaries = append(summaries, Summary{
			Working:      workingLabel(employment[i]),
			Sex:          sexLabel(sex[i]),
			Age:          ageLabel(age[i]),
			PrimaryNeeds: primaryMinutes[i] / 60,
			Work:         math.Round(workMinutes[i] / 60),
			Other:        math.Round(otherMinutes[i] / 60),
		})
	}

	logger.InfoContext(ctx, "summarized respondents",
		slog.Int("source_rows", frame.Nrow()),
		slog.Int("eligible_rows", len(summaries)))

	return summaries, nil
}

// sumColumns returns the per-row sum of minutes across the named columns
func sumColumns(frame *Frame, columns []string) []float64 {
	sums := make([]float64, frame.Nrow())
	for _, name := range columns {
		values := frame.Data.Col(name).Float()
		for i, v := range values {
			sums[i] += v
		}
	}
	return sums
}

func workingLabel(code float64) string {
	if code >= 1 && code < 3 {
		return LabelWorking
	}
	return LabelNotWorking
}

func sexLabel(code float64) string {
	if code == 1 {
		return LabelMale
	}
	return LabelFemale
}

func ageLabel(code float64) string {
	switch {
	case code >= 15 && code <= 22:
		return LabelYoung
	case code >= 23 && code <= 55:
		return LabelActive
	default:
		return LabelElder
	}
}
