package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"surveypipe/internal/config"
	"surveypipe/internal/dataset"
	"surveypipe/internal/dictionary"
	"surveypipe/internal/infrastructure"
	"surveypipe/internal/regions"
	"surveypipe/pkg/contracts"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	dataDir := flag.String("data", "", "data directory (defaults to the current working directory)")
	input := flag.String("input", "", "cleaned dataset csv (defaults to <data>/"+config.DefaultCleanedFile+")")
	regionsFile := flag.String("regions", "", "regional reference csv (defaults to <data>/"+config.DefaultRegionsFile+")")
	out := flag.String("out", "", "merged output csv (defaults to <data>/"+config.DefaultMergedFile+")")
	dict := flag.String("dict", "", "data dictionary output (defaults to <data>/"+config.DefaultMergedDictionaryFile+")")
	flag.Parse()

	if *showVersion {
		info := contracts.GetVersionInfo()
		fmt.Printf("surveypipe regionmerge %s (data format %s, %s, %s)\n",
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
		*input = paths.CleanedCSV
	}
	if *regionsFile == "" {
		*regionsFile = paths.RegionsCSV
	}
	if *out == "" {
		*out = paths.MergedCSV
	}
	if *dict == "" {
		*dict = paths.MergedDictionary
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
			FilePath: paths.GetLogPath("regionmerge.log"),
		}
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger.InfoContext(ctx, "starting regional merge stage",
		slog.String("version", contracts.Version),
		slog.String("input", *input),
		slog.String("regions", *regionsFile),
		slog.String("output", *out))

	cleaned, err := dataset.ReadCSV(*input)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read cleaned dataset", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	merger := regions.NewMerger(logger, os.Stdout)
	merged, stats, err := merger.Run(ctx, cleaned, *regionsFile)
	if err != nil {
		logger.ErrorContext(ctx, "regional merge failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n4. Saving merged dataset...\n")
	if err := dataset.WriteCSV(*out, merged); err != nil {
		logger.ErrorContext(ctx, "failed to write merged dataset", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Saved to %s\n", *out)

	fmt.Printf("\n5. Updating data dictionary...\n")
	gen := dictionary.NewGenerator(dictionary.TitleMerged)
	if err := gen.WriteFile(*dict, merged); err != nil {
		logger.ErrorContext(ctx, "failed to write data dictionary", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Data dictionary updated: %s\n", *dict)

	logger.InfoContext(ctx, "regional merge stage complete",
		slog.Int("rows", merged.NumRows()),
		slog.Int("cols", merged.NumCols()),
		slog.Int("matched", stats.MatchedRows),
		slog.Int("unmatched", stats.UnmatchedRows))

	fmt.Printf("\nMerge complete!\n")
	fmt.Printf("Files created:\n")
	fmt.Printf("  - %s\n", *out)
	fmt.Printf("  - %s\n", *dict)
}
