package knn

import "github.com/viant/vec/search"

// Similarities computes the cosine similarity between every training row and
// every test row, producing a matrix with one row per training vector and
// one column per test vector. Both inputs are expected to share the same row
// index space and column count, so the result is square and cell (i, j)
// compares training word i with test word j positionally.
//
// The cosine similarity of a zero vector with anything is defined as 0; the
// zero-magnitude case is guarded explicitly rather than left to divide by
// zero.
func Similarities(training, test [][]float32) [][]float64 {
	trainingMags := magnitudes(training)
	testMags := magnitudes(test)

	out := make([][]float64, len(training))
	for i := range training {
		row := make([]float64, len(test))
		v := search.Float32s(training[i])
		for j := range test {
			if trainingMags[i] == 0 || testMags[j] == 0 {
				continue
			}
			// cosineDistance resolves the per-GOARCH export of the kernel.
			distance := cosineDistance(v, test[j], trainingMags[i], testMags[j])
			row[j] = float64(1 - distance)
		}
		out[i] = row
	}
	return out
}

// SetDiagonal overwrites every cell whose row index equals its column index
// with value. This is only semantically meaningful when training and test
// were built against the same word index space, where it lets a caller stop
// a word from being retrieved as its own nearest neighbor.
func SetDiagonal(m [][]float64, value float64) {
	for i := range m {
		if i < len(m[i]) {
			m[i][i] = value
		}
	}
}

func magnitudes(m [][]float32) []float32 {
	mags := make([]float32, len(m))
	for i, row := range m {
		mags[i] = search.Float32s(row).Magnitude()
	}
	return mags
}
