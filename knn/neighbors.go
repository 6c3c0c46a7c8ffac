package knn

import "sort"

// Nearest selects the training rows closest to the test word in column idx
// of the similarity matrix using nearest distances rather than a fixed
// neighbor count: the nn-th largest distinct similarity value in the column
// becomes the threshold, and every row at or above it is returned. Two rows
// tied at the threshold are therefore both included. When the column holds
// fewer than nn distinct values the threshold saturates to the smallest
// distinct value present instead of failing.
//
// The second return value is the cosine distance of the selected neighbors,
// i.e. 1 minus the threshold similarity. An empty column yields no neighbors
// at distance 1.
func Nearest(similarities [][]float64, idx, nn int) ([]int, float64) {
	if nn < 1 {
		nn = 1
	}
	distinct := make([]float64, 0, len(similarities))
	seen := map[float64]bool{}
	for _, row := range similarities {
		v := row[idx]
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	if len(distinct) == 0 {
		return nil, 1
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rank := nn - 1
	if rank >= len(distinct) {
		rank = len(distinct) - 1
	}
	t := distinct[rank]

	var nearest []int
	for i, row := range similarities {
		if row[idx] >= t {
			nearest = append(nearest, i)
		}
	}
	return nearest, 1 - t
}
