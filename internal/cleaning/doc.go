// Package cleaning implements stage 1 of the survey pipeline: encoding
// the raw wave-2 exogenous variables export into the cleaned dataset.
//
// The package splits into the survey codebook (encoders.go), free-text
// extractors (extract.go), derived variables (derive.go), the household
// imputation rule (impute.go), the output column registry (columns.go)
// and the Cleaner orchestrator that ties them together (cleaner.go).
// All encoders treat unmapped or missing raw values as missing rather
// than errors; a cleaning run only fails on structural problems such as
// absent columns or unreadable input files.
package cleaning
