package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"atuscli/internal/config"
	"atuscli/internal/exporter"
	"atuscli/internal/infrastructure"
	"atuscli/internal/timeusage"
)

func main() {
	input := flag.String("input", "", "path to the survey csv extract (required)")
	configFile := flag.String("config", "", "optional yaml config file")
	grouper := flag.String("grouper", "memory", "grouping engine: memory | sql")
	csvOut := flag.String("csv", "", "optional csv output path for the report")
	xlsxOut := flag.String("xlsx", "", "optional xlsx output path for the report")
	quiet := flag.Bool("quiet", false, "suppress the stdout table")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	providers, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer providers.Shutdown(ctx)

	mode := timeusage.GrouperMode(*grouper)
	switch mode {
	case timeusage.GrouperMemory, timeusage.GrouperSQL:
	default:
		logger.ErrorContext(ctx, "unknown grouper mode", slog.String("grouper", *grouper))
		os.Exit(2)
	}

	logger.InfoContext(ctx, "starting time-use summarization",
		slog.String("input", *input),
		slog.String("grouper", *grouper))

	pipeline := timeusage.NewPipeline(cfg, logger, providers.Tracer, mode)
	report, err := pipeline.Run(ctx, *input)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline finished",
		slog.Int("source_rows", report.SourceRows),
		slog.Int("eligible_rows", report.EligibleRows),
		slog.Int("groups", len(report.Groups)))

	if !*quiet {
		if err := exporter.RenderTable(os.Stdout, report.Groups); err != nil {
			logger.ErrorContext(ctx, "failed to render report", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *csvOut != "" {
		writer := exporter.NewCSVWriter(logger)
		if err := writer.WriteReport(*csvOut, report.Groups); err != nil {
			logger.ErrorContext(ctx, "failed to write csv report", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *xlsxOut != "" {
		if err := exporter.WriteXLSX(*xlsxOut, report.Groups); err != nil {
			logger.ErrorContext(ctx, "failed to write xlsx report", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
