package knn

import "github.com/viant/vec/search"

// cosineDistance forwards to the NEON kernel, exported as
// CosineDistanceWithMagnitude on arm64 builds of the vec dependency.
func cosineDistance(a search.Float32s, b []float32, ma, mb float32) float32 {
	return a.CosineDistanceWithMagnitude(b, ma, mb)
}
