//go:build !arm64

package knn

import "github.com/viant/vec/search"

// cosineDistance forwards to the pure-Go kernel, which non-arm64 builds of
// the vec dependency export under the name CosineDistanceWithMagnitudesNeon.
func cosineDistance(a search.Float32s, b []float32, ma, mb float32) float32 {
	return a.CosineDistanceWithMagnitudesNeon(b, ma, mb)
}
