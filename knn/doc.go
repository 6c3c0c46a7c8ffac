// Package knn implements nearest-neighbor categorization over dense count
// matrices: pairwise cosine similarity between training and test rows,
// nearest-distance neighbor selection (ties at the threshold expand the
// neighbor set instead of being pruned), and tie-broken majority voting over
// the neighbors' PoS tags.
package knn
