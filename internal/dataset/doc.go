// Package dataset provides the in-memory table model shared by both
// pipeline stages, plus readers and writers for the survey export formats.
//
// A Table holds an ordered header and string cells; the empty string marks
// a missing value. Readers accept UTF-8 CSV, XLSX workbooks (first sheet),
// and — for region exports saved by legacy spreadsheet tools — CSV with a
// fixed character-encoding fallback chain (UTF-8, then ISO-8859-1, then
// Windows-1252). The writer emits BOM-prefixed UTF-8 CSV so the output
// opens cleanly in Excel.
package dataset
