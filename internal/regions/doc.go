// Package regions implements stage 2 of the survey pipeline: enriching
// the cleaned dataset with regional attributes looked up by postal code.
//
// The loader reads the regional reference file with an encoding fallback
// chain, removes spreadsheet artifacts and deduplicates postal codes; the
// merger left-joins the surviving attributes onto the cleaned table so
// that every participant row is preserved.
package regions
