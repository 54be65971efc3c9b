package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"surveypipe/internal/cleaning"
	"surveypipe/internal/config"
	"surveypipe/internal/dataset"
	"surveypipe/internal/dictionary"
	"surveypipe/internal/infrastructure"
	"surveypipe/pkg/contracts"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	dataDir := flag.String("data", "", "data directory (defaults to the current working directory)")
	input := flag.String("input", "", "raw responses csv (defaults to <data>/"+config.DefaultResponsesFile+")")
	survey := flag.String("survey", "", "original survey export with Q1 (defaults to <data>/"+config.DefaultSurveyExportFile+")")
	out := flag.String("out", "", "cleaned output csv (defaults to <data>/"+config.DefaultCleanedFile+")")
	dict := flag.String("dict", "", "data dictionary output (defaults to <data>/"+config.DefaultCleanedDictionaryFile+")")
	flag.Parse()

	if *showVersion {
		info := contracts.GetVersionInfo()
		fmt.Printf("surveypipe cleaner %s (data format %s, %s, %s)\n",
			info.Version, info.DataFormatVersion, info.GoVersion, info.Platform)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{}
	}

	if *dataDir == "" {
		*dataDir = cfg.Paths.DataDir
	}
	paths, err := config.GetPaths(*dataDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if *input == "" {
		*input = paths.ResponsesCSV
	}
	if *survey == "" {
		*survey = paths.SurveyExportCSV
	}
	if *out == "" {
		*out = paths.CleanedCSV
	}
	if *dict == "" {
		*dict = paths.CleanedDictionary
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.FilePath == "" {
		cfg.Logging = config.LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: paths.GetLogPath("cleaner.log"),
		}
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger.InfoContext(ctx, "starting cleaning stage",
		slog.String("version", contracts.Version),
		slog.String("input", *input),
		slog.String("survey_export", *survey),
		slog.String("output", *out))

	cleaner := cleaning.NewCleaner(logger, os.Stdout)
	result, err := cleaner.Run(ctx, *input, *survey)
	if err != nil {
		logger.ErrorContext(ctx, "cleaning failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n14. Saving cleaned dataset...\n")
	if err := dataset.WriteCSV(*out, result.Table); err != nil {
		logger.ErrorContext(ctx, "failed to write cleaned dataset", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Saved to %s\n", *out)

	fmt.Printf("\n15. Generating data dictionary...\n")
	gen := dictionary.NewGenerator(dictionary.TitleCleaned)
	if err := gen.WriteFile(*dict, result.Table); err != nil {
		logger.ErrorContext(ctx, "failed to write data dictionary", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Data dictionary saved to %s\n", *dict)

	logger.InfoContext(ctx, "cleaning stage complete",
		slog.Int("rows", result.Table.NumRows()),
		slog.Int("cols", result.Table.NumCols()),
		slog.Int("values_imputed", result.ImputedValues))

	fmt.Printf("\nCleaning complete!\n")
	fmt.Printf("Files created:\n")
	fmt.Printf("  - %s\n", *out)
	fmt.Printf("  - %s\n", *dict)
}
