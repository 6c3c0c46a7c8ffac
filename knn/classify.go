package knn

import (
	"math/rand"
	"sort"
	"time"

	"github.com/viant/posknn/space"
)

// TagCount pairs a PoS tag with its frequency among a neighbor set.
type TagCount struct {
	Tag   string
	Count int
}

// TallyTags extracts the PoS tag of every neighbor and counts occurrences,
// returning the tally sorted by count in descending order. The relative
// order of equally frequent tags is not part of the contract; this
// implementation orders them lexicographically for stable output.
func TallyTags(neighbors []string) []TagCount {
	counts := map[string]int{}
	for _, n := range neighbors {
		counts[space.Tag(n)]++
	}
	tally := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		tally = append(tally, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Tag < tally[j].Tag
	})
	return tally
}

// Classifier assigns a PoS tag to a test word by majority vote over its
// nearest neighbors, with frequency-based and random tie-breaking. The
// random source is injectable so experiments can be made reproducible.
type Classifier struct {
	rand *rand.Rand
}

// NewClassifier returns a Classifier drawing final tie-breaks from rng. A
// nil rng falls back to a time-seeded source, matching the production
// behavior where repeated runs over tied inputs may differ.
func NewClassifier(rng *rand.Rand) *Classifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Classifier{rand: rng}
}

// Categorize picks the winning PoS tag for a tally of neighbor tags.
//
// The tally is walked in its descending order: every tag whose count equals
// the running maximum count is a candidate, and the first lower count ends
// the scan. When more than one tag remains, the tie is re-fought over the
// neighbors themselves: each neighbor whose total training-matrix row sum
// strictly exceeds the best mass seen so far contributes its tag to a fresh
// candidate list. This is a raw magnitude comparison, not a normalized vote;
// it favors neighbors with large total co-occurrence mass regardless of
// which contexts contributed, and a tag can appear several times when
// multiple neighbors carrying it each beat the then-current maximum. A tie
// that survives both rounds is resolved uniformly at random.
//
// Neighbors must be rows of the training matrix per wordIndex. If every
// neighbor row sums to zero the magnitude round selects nobody; the
// first-round candidates then stand. An empty tally has no winner and yields
// the empty string.
func (c *Classifier) Categorize(tally []TagCount, neighbors []string, training [][]float32, wordIndex map[string]int) string {
	if len(tally) == 0 {
		return ""
	}
	bestCount := 0
	var candidates []string
	for _, tc := range tally {
		if tc.Count > bestCount {
			bestCount = tc.Count
			candidates = append(candidates, tc.Tag)
		} else if tc.Count == bestCount {
			candidates = append(candidates, tc.Tag)
		} else {
			// The tally is sorted descending; a lower count ends the scan.
			break
		}
	}

	if len(candidates) > 1 {
		var bestMass float64
		var byMass []string
		for _, n := range neighbors {
			mass := rowSum(training[wordIndex[n]])
			if mass > bestMass {
				bestMass = mass
				byMass = append(byMass, space.Tag(n))
			}
		}
		if len(byMass) > 0 {
			candidates = byMass
		}
	}

	if len(candidates) > 1 {
		return candidates[c.rand.Intn(len(candidates))]
	}
	return candidates[0]
}

func rowSum(row []float32) float64 {
	var sum float64
	for _, v := range row {
		sum += float64(v)
	}
	return sum
}
