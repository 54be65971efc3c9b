// Package dictionary renders plain-text data dictionaries for the
// pipeline's output datasets: per-column descriptions, inferred types,
// missing-value counts and summary statistics.
package dictionary
