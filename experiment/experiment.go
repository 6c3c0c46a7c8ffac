package experiment

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/viant/posknn/knn"
	"github.com/viant/posknn/space"
)

// Config controls a categorization run.
type Config struct {
	// NeighborCount is the number of nearest distances considered when
	// categorizing a test word. Must be at least 1.
	NeighborCount int

	// DiagonalOverride, when set, overwrites the main diagonal of the
	// similarity matrix with the given value. Because training and test
	// matrices share one word index space, this stops a test word from
	// retrieving its own training vector, enforcing generalization.
	DiagonalOverride *float64

	// Verbose additionally records the tag frequency distribution of each
	// test word's neighbor set.
	Verbose bool

	// Rand is the source used for final tie-breaks. Nil selects a
	// time-seeded source, so repeated runs over tied inputs may differ.
	Rand *rand.Rand
}

// Result is the categorization outcome for a single test word.
type Result struct {
	// Predicted is the PoS tag assigned by the classifier.
	Predicted string

	// Correct is the PoS tag embedded in the word itself.
	Correct string

	// Accuracy is 1 when Predicted matches Correct, 0 otherwise.
	Accuracy int

	// Neighbors holds the labeled training words retrieved as nearest
	// neighbors, sorted.
	Neighbors []string

	// Distance is the cosine distance of the nearest neighbor set.
	Distance float64

	// TagDistribution is the neighbor tag tally; populated only on verbose
	// runs.
	TagDistribution []knn.TagCount
}

// Outcome bundles the per-word results with the similarity matrix and the
// word index assignment it was computed over, for reporting and diagnostics.
type Outcome struct {
	Results      map[string]Result
	Similarities [][]float64
	WordIndex    map[string]int
}

// Accuracy returns the fraction of test words whose predicted tag matched,
// in [0, 1]. An empty outcome counts as 0.
func (o *Outcome) Accuracy() float64 {
	if len(o.Results) == 0 {
		return 0
	}
	hits := 0
	for _, r := range o.Results {
		hits += r.Accuracy
	}
	return float64(hits) / float64(len(o.Results))
}

// Run categorizes every word of the test space against the training space.
//
// Word indices are assigned over the union of training and test words and
// context indices over the full context set, so both matrices share one row
// and column layout: rows of the training matrix that belong to test-only
// words are zero vectors and vice versa, keeping positions directly
// comparable. The caller guarantees context alignment between the two
// spaces; it is a precondition, not something Run verifies.
func Run(training, test space.Space, contexts map[string]bool, cfg Config) (*Outcome, error) {
	if cfg.NeighborCount < 1 {
		return nil, fmt.Errorf("experiment: neighbor count %d, want at least 1", cfg.NeighborCount)
	}

	wordIndex := space.SortIndex(space.Union(training, test))
	contextIndex := space.SortIndex(contexts)
	words := space.Invert(wordIndex)

	trainingMatrix := space.Materialize(training, wordIndex, contextIndex)
	testMatrix := space.Materialize(test, wordIndex, contextIndex)

	similarities := knn.Similarities(trainingMatrix, testMatrix)
	if cfg.DiagonalOverride != nil {
		knn.SetDiagonal(similarities, *cfg.DiagonalOverride)
	}

	classifier := knn.NewClassifier(cfg.Rand)
	results := make(map[string]Result, len(test))
	for word := range test {
		column := wordIndex[word]
		rows, distance := knn.Nearest(similarities, column, cfg.NeighborCount)

		neighbors := make([]string, len(rows))
		for i, r := range rows {
			neighbors[i] = words[r]
		}
		sort.Strings(neighbors)

		tally := knn.TallyTags(neighbors)
		predicted := classifier.Categorize(tally, neighbors, trainingMatrix, wordIndex)

		result := Result{
			Predicted: predicted,
			Correct:   space.Tag(word),
			Neighbors: neighbors,
			Distance:  distance,
		}
		if result.Predicted == result.Correct {
			result.Accuracy = 1
		}
		if cfg.Verbose {
			result.TagDistribution = tally
		}
		results[word] = result
	}

	return &Outcome{
		Results:      results,
		Similarities: similarities,
		WordIndex:    wordIndex,
	}, nil
}
