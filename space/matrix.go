package space

// Materialize converts a sparse Space into a dense count matrix of shape
// (len(rowIndex), len(colIndex)). Cell (i, j) holds the stored count for the
// word at row index i and the context at column index j, or zero when the
// word is unknown to the space, the context is unknown, or the pair was
// never recorded. Inputs are not mutated; the result is deterministic given
// the index assignments.
//
// Counts are held as float32 so rows feed directly into the SIMD similarity
// path without conversion.
func Materialize(s Space, rowIndex, colIndex map[string]int) [][]float32 {
	m := make([][]float32, len(rowIndex))
	for i := range m {
		m[i] = make([]float32, len(colIndex))
	}
	for word, r := range rowIndex {
		occurred := s[word]
		if occurred == nil {
			continue
		}
		row := m[r]
		for context, count := range occurred {
			c, ok := colIndex[context]
			if !ok {
				continue
			}
			row[c] = float32(count)
		}
	}
	return m
}
