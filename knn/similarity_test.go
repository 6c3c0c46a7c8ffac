package knn

import (
	"math"
	"testing"
)

func TestSimilaritiesSelfAndZero(t *testing.T) {
	training := [][]float32{
		{5, 0},
		{0, 0},
	}
	test := [][]float32{
		{5, 0},
		{0, 0},
	}
	sims := Similarities(training, test)

	// A non-zero vector compared with itself scores 1 within tolerance.
	if math.Abs(sims[0][0]-1) > 1e-6 {
		t.Fatalf("self similarity = %v, want 1", sims[0][0])
	}
	// Zero vectors score 0 against everything, including each other.
	if sims[1][0] != 0 || sims[0][1] != 0 || sims[1][1] != 0 {
		t.Fatalf("zero-vector similarities = %v %v %v, want all 0", sims[1][0], sims[0][1], sims[1][1])
	}
}

func TestSimilaritiesOrthogonal(t *testing.T) {
	sims := Similarities([][]float32{{1, 0}}, [][]float32{{0, 1}})
	if math.Abs(sims[0][0]) > 1e-6 {
		t.Fatalf("orthogonal similarity = %v, want 0", sims[0][0])
	}
}

func TestSimilaritiesProportionalRows(t *testing.T) {
	// Scaling a count vector must not change its direction.
	sims := Similarities([][]float32{{2, 4}}, [][]float32{{1, 2}})
	if math.Abs(sims[0][0]-1) > 1e-6 {
		t.Fatalf("proportional similarity = %v, want 1", sims[0][0])
	}
}

func TestSetDiagonal(t *testing.T) {
	m := [][]float64{
		{0.9, 0.2},
		{0.3, 0.8},
	}
	SetDiagonal(m, 0)
	if m[0][0] != 0 || m[1][1] != 0 {
		t.Fatalf("diagonal not overridden: %v", m)
	}
	if m[0][1] != 0.2 || m[1][0] != 0.3 {
		t.Fatalf("off-diagonal cells changed: %v", m)
	}
}

func TestSetDiagonalRectangular(t *testing.T) {
	m := [][]float64{
		{0.9},
		{0.3},
	}
	// Rows past the column count are left alone rather than indexed out of range.
	SetDiagonal(m, 0)
	if m[0][0] != 0 || m[1][0] != 0.3 {
		t.Fatalf("unexpected cells after override: %v", m)
	}
}
