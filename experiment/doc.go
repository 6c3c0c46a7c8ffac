// Package experiment orchestrates a full kNN PoS-tagging run: it aligns
// training and test spaces on shared word and context index assignments,
// materializes both count matrices, computes the similarity matrix, and
// categorizes every test word, reporting per-word accuracy.
package experiment
