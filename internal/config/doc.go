// Package config provides configuration loading for the survey processing
// pipeline. Configuration is layered: struct-tag defaults, then an optional
// surveypipe.yaml file in the data directory, then SURVEY_* environment
// variables, with later layers taking precedence. The Paths type is the
// single source of truth for every input and output file the two pipeline
// stages touch; its defaults reproduce the file names used by the original
// wave 2 study exports.
package config
