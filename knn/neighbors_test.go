package knn

import (
	"math"
	"testing"
)

func TestNearestUniqueMaximum(t *testing.T) {
	sims := [][]float64{
		{0.9},
		{0.4},
		{0.1},
	}
	nearest, distance := Nearest(sims, 0, 1)
	if len(nearest) != 1 || nearest[0] != 0 {
		t.Fatalf("nearest = %v, want [0]", nearest)
	}
	if math.Abs(distance-0.1) > 1e-12 {
		t.Fatalf("distance = %v, want 0.1", distance)
	}
}

func TestNearestIncludesTies(t *testing.T) {
	sims := [][]float64{
		{0.9},
		{0.9},
		{0.1},
	}
	nearest, distance := Nearest(sims, 0, 1)
	// Two rows at the same closest distance are both returned, never pruned.
	if len(nearest) != 2 || nearest[0] != 0 || nearest[1] != 1 {
		t.Fatalf("nearest = %v, want [0 1]", nearest)
	}
	if math.Abs(distance-0.1) > 1e-12 {
		t.Fatalf("distance = %v, want 0.1", distance)
	}
}

func TestNearestSecondDistance(t *testing.T) {
	sims := [][]float64{
		{0.9},
		{0.5},
		{0.5},
		{0.2},
	}
	nearest, distance := Nearest(sims, 0, 2)
	// nn=2 selects everything at or above the second distinct value.
	if len(nearest) != 3 {
		t.Fatalf("nearest = %v, want 3 rows", nearest)
	}
	if math.Abs(distance-0.5) > 1e-12 {
		t.Fatalf("distance = %v, want 0.5", distance)
	}
}

func TestNearestSaturates(t *testing.T) {
	sims := [][]float64{
		{0.9},
		{0.9},
	}
	// More requested distances than distinct values: fall back to the
	// smallest distinct value and return every row.
	nearest, distance := Nearest(sims, 0, 5)
	if len(nearest) != 2 {
		t.Fatalf("nearest = %v, want both rows", nearest)
	}
	if math.Abs(distance-0.1) > 1e-12 {
		t.Fatalf("distance = %v, want 0.1", distance)
	}
}

func TestNearestSingleValue(t *testing.T) {
	sims := [][]float64{{0.3}}
	nearest, distance := Nearest(sims, 0, 3)
	if len(nearest) != 1 || nearest[0] != 0 {
		t.Fatalf("nearest = %v, want [0]", nearest)
	}
	if math.Abs(distance-0.7) > 1e-12 {
		t.Fatalf("distance = %v, want 0.7", distance)
	}
}

func TestNearestEmptyColumn(t *testing.T) {
	nearest, distance := Nearest(nil, 0, 1)
	if len(nearest) != 0 {
		t.Fatalf("nearest = %v, want none", nearest)
	}
	if distance != 1 {
		t.Fatalf("distance = %v, want 1", distance)
	}
}

func TestNearestPicksColumn(t *testing.T) {
	sims := [][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	}
	nearest, _ := Nearest(sims, 1, 1)
	if len(nearest) != 1 || nearest[0] != 1 {
		t.Fatalf("nearest = %v, want [1]", nearest)
	}
}
