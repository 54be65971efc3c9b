package config

// Default file names for the wave 2 processing pipeline. These mirror the
// names used by the original study exports, so running the tools with no
// configuration reproduces the published dataset layout.
const (
	// Inputs
	DefaultResponsesFile    = "exogenous_variables_dataset.csv"
	DefaultSurveyExportFile = "Data_Wave2 (1).csv"
	DefaultRegionsFile      = "Regions.csv"

	// Stage 1 outputs
	DefaultCleanedFile           = "exogenous_variables_cleaned.csv"
	DefaultCleanedDictionaryFile = "exogenous_variables_cleaned_dictionary.txt"

	// Stage 2 outputs
	DefaultMergedFile           = "exogenous_variables_cleaned_with_regions.csv"
	DefaultMergedDictionaryFile = "exogenous_variables_cleaned_with_regions_dictionary.txt"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "SURVEY"

// ConfigFileName is the optional YAML configuration file looked up in the
// data directory.
const ConfigFileName = "surveypipe.yaml"
