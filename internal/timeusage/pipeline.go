package timeusage

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"atuscli/internal/config"
	"atuscli/internal/infrastructure"
)

// GrouperMode selects the grouping engine
type GrouperMode string

const (
	// GrouperMemory aggregates in memory (the default)
	GrouperMemory GrouperMode = "memory"
	// GrouperSQL runs the equivalent GROUP BY query on sqlite
	GrouperSQL GrouperMode = "sql"
)

// Report is the terminal pipeline output
type Report struct {
	Groups       []GroupAverage
	SourceRows   int
	EligibleRows int
	Sets         ColumnSets
}

// Pipeline wires the stages together: Loader, Classifier, Summarizer,
// Grouper. One Pipeline value serves one or more runs; runs do not share
// state.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	tracer  trace.Tracer
	grouper GrouperMode
}

// NewPipeline creates a pipeline. A nil logger falls back to the global
// logger and a nil tracer to the globally registered provider.
func NewPipeline(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer, grouper GrouperMode) *Pipeline {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	if tracer == nil {
		tracer = otel.Tracer(infrastructure.TracerName)
	}
	if grouper == "" {
		grouper = GrouperMemory
	}
	return &Pipeline{cfg: cfg, logger: logger, tracer: tracer, grouper: grouper}
}

// Run executes the full pipeline over the CSV at path. Stages run
// strictly in sequence; the first error aborts the run and no partial
// report is produced.
func (p *Pipeline) Run(ctx context.Context, path string) (*Report, error) {
	ctx = infrastructure.EnsureTraceID(ctx)

	ctx, span := p.tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(attribute.String("input.path", path)))
	defer span.End()

	frame, err := p.load(ctx, path)
	if err != nil {
		return nil, p.fail(ctx, span, "load", err)
	}

	sets := p.classify(ctx, frame)

	summaries, err := p.summarize(ctx, sets, frame)
	if err != nil {
		return nil, p.fail(ctx, span, "summarize", err)
	}

	groups, err := p.group(ctx, summaries)
	if err != nil {
		return nil, p.fail(ctx, span, "group", err)
	}

	span.SetAttributes(
		attribute.Int("rows.source", frame.Nrow()),
		attribute.Int("rows.eligible", len(summaries)),
		attribute.Int("rows.groups", len(groups)),
	)

	return &Report{
		Groups:       groups,
		SourceRows:   frame.Nrow(),
		EligibleRows: len(summaries),
		Sets:         sets,
	}, nil
}

func (p *Pipeline) load(ctx context.Context, path string) (*Frame, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.load")
	defer span.End()
	return Load(ctx, path, p.cfg.Survey)
}

func (p *Pipeline) classify(ctx context.Context, frame *Frame) ColumnSets {
	ctx, span := p.tracer.Start(ctx, "pipeline.classify")
	defer span.End()

	sets := Classify(frame.Columns)
	p.logger.InfoContext(ctx, "classified activity columns",
		slog.Int("primary_needs", len(sets.PrimaryNeeds)),
		slog.Int("work", len(sets.Work)),
		slog.Int("other", len(sets.Other)))
	return sets
}

func (p *Pipeline) summarize(ctx context.Context, sets ColumnSets, frame *Frame) ([]Summary, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.summarize")
	defer span.End()
	return Summarize(ctx, sets, frame)
}

func (p *Pipeline) group(ctx context.Context, summaries []Summary) ([]GroupAverage, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.group",
		trace.WithAttributes(attribute.String("grouper", string(p.grouper))))
	defer span.End()

	if p.grouper == GrouperSQL {
		return GroupAveragesSQL(ctx, summaries)
	}
	return GroupAverages(summaries), nil
}

func (p *Pipeline) fail(ctx context.Context, span trace.Span, stage string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, stage)
	p.logger.ErrorContext(ctx, "pipeline stage failed",
		slog.String("stage", stage),
		slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", stage, err)
}
