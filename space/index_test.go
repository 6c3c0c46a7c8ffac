package space

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSortIndexProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("indices form a contiguous [0,n) range with no duplicates",
		prop.ForAll(func(keys []string) bool {
			set := map[string]bool{}
			for _, k := range keys {
				set[k] = true
			}
			indices := SortIndex(set)
			if len(indices) != len(set) {
				return false
			}
			seen := make([]bool, len(indices))
			for _, i := range indices {
				if i < 0 || i >= len(indices) || seen[i] {
					return false
				}
				seen[i] = true
			}
			return true
		}, gen.SliceOf(gen.Identifier())))

	properties.Property("assignment follows lexicographic order and is deterministic",
		prop.ForAll(func(keys []string) bool {
			set := map[string]bool{}
			for _, k := range keys {
				set[k] = true
			}
			indices := SortIndex(set)
			ordered := Invert(indices)
			if !sort.StringsAreSorted(ordered) {
				return false
			}
			again := SortIndex(set)
			for k, i := range indices {
				if again[k] != i {
					return false
				}
			}
			return true
		}, gen.SliceOf(gen.Identifier())))

	properties.TestingRun(t)
}

func TestSortIndexClustersTags(t *testing.T) {
	indices := SortIndex(map[string]bool{
		"V|run": true, "N|dog": true, "N|cat": true,
	})
	assert.Equal(t, map[string]int{"N|cat": 0, "N|dog": 1, "V|run": 2}, indices)
}

func TestInvert(t *testing.T) {
	set := map[string]bool{"b": true, "a": true, "c": true}
	indices := SortIndex(set)
	ordered := Invert(indices)
	assert.Equal(t, []string{"a", "b", "c"}, ordered)
}

func TestUnion(t *testing.T) {
	a := Space{"N|dog": {"c_0": 1}}
	b := Space{"N|cat": {"c_0": 2}, "N|dog": {"c_1": 3}}
	assert.Equal(t, map[string]bool{"N|dog": true, "N|cat": true}, Union(a, b))
}
