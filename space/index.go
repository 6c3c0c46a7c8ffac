package space

import "sort"

// SortIndex assigns dense numeric indices in [0, len(set)) to the members of
// set, numbering them in lexicographic order. Sorting clusters labeled words
// sharing a PoS-tag prefix together, which keeps related rows adjacent in
// the materialized matrices. The assignment is a deterministic function of
// the set contents.
func SortIndex(set map[string]bool) map[string]int {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	indices := make(map[string]int, len(keys))
	for i, k := range keys {
		indices[k] = i
	}
	return indices
}

// Invert turns a dense index assignment back into a positional lookup slice,
// so that Invert(idx)[idx[k]] == k for every key.
func Invert(indices map[string]int) []string {
	out := make([]string, len(indices))
	for k, i := range indices {
		out[i] = k
	}
	return out
}

// Union collects the key set of one or more spaces.
func Union(spaces ...Space) map[string]bool {
	set := map[string]bool{}
	for _, s := range spaces {
		for w := range s {
			set[w] = true
		}
	}
	return set
}
