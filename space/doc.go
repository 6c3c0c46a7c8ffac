// Package space builds sparse word-by-context co-occurrence spaces from
// delimited corpus records and materializes them as dense count matrices.
// It includes:
//   - Space: sparse mapping from labeled word to context counts
//   - Read: record parser producing a Space and the full context set
//   - SortIndex/Invert: deterministic dense index assignments
//   - Materialize: dense matrix construction over shared index spaces
package space
