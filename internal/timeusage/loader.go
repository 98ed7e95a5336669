package timeusage

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"atuscli/internal/config"
	apperrors "atuscli/internal/errors"
	"atuscli/internal/infrastructure"
)

// Load reads the survey CSV at path into a typed Frame. The identifier
// column is read as text and every other column as float; row count and
// column order mirror the source file exactly.
func Load(ctx context.Context, path string, schema config.SurveyConfig) (*Frame, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("open %s", path), err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{
			schema.IDColumn: series.String,
		}),
	)
	if df.Error() != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("read csv %s", path), df.Error())
	}

	columns := df.Names()

	frame := &Frame{Columns: columns, Data: df, Schema: schema}
	if !frame.HasColumn(schema.IDColumn) {
		return nil, apperrors.NewSchemaError(
			fmt.Sprintf("identifier column %q missing from header", schema.IDColumn), nil).
			WithContext("path", path)
	}

	// Every non-identifier column must be fully numeric. gota turns
	// unparseable cells into NaN rather than failing the read.
	for _, name := range columns {
		if name == schema.IDColumn {
			continue
		}
		if df.Col(name).HasNaN() {
			return nil, apperrors.NewSchemaError(
				fmt.Sprintf("column %q cannot be cast to numeric", name), nil).
				WithContext("path", path)
		}
	}

	logger.InfoContext(ctx, "loaded source table",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", len(columns)))

	return frame, nil
}
