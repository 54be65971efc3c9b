package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the pipeline file paths.
// This is the single source of truth for every file the two stages touch.
type Paths struct {
	DataDir string
	LogsDir string

	// Inputs
	ResponsesCSV    string
	SurveyExportCSV string
	RegionsCSV      string

	// Stage 1 outputs
	CleanedCSV        string
	CleanedDictionary string

	// Stage 2 outputs
	MergedCSV        string
	MergedDictionary string
}

// GetPaths returns the pipeline paths rooted at the given data directory.
// An empty dataDir means the current working directory, which keeps the
// default invocation identical to the original study scripts.
func GetPaths(dataDir string) (*Paths, error) {
	if dataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dataDir = wd
	}

	paths := &Paths{
		DataDir: dataDir,
		LogsDir: filepath.Join(dataDir, "logs"),

		ResponsesCSV:    filepath.Join(dataDir, DefaultResponsesFile),
		SurveyExportCSV: filepath.Join(dataDir, DefaultSurveyExportFile),
		RegionsCSV:      filepath.Join(dataDir, DefaultRegionsFile),

		CleanedCSV:        filepath.Join(dataDir, DefaultCleanedFile),
		CleanedDictionary: filepath.Join(dataDir, DefaultCleanedDictionaryFile),

		MergedCSV:        filepath.Join(dataDir, DefaultMergedFile),
		MergedDictionary: filepath.Join(dataDir, DefaultMergedDictionaryFile),
	}

	return paths, nil
}

// EnsureDirectories creates the directories the pipeline writes into.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path of a log file inside the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
