package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/posknn/experiment"
	"github.com/viant/posknn/space"
)

// neighborMarker prefixes the training-vector lines below each test item.
const neighborMarker = "####"

// Write renders the categorization outcome to w, one block per test word in
// sorted order. The first line of a block is the word's full test count row,
// tab-joined, followed by the correct tag, the predicted tag, and the cosine
// distance of the nearest neighbors. Each following line starts with the
// #### marker and carries the full training count row of one neighbor.
func Write(w io.Writer, outcome *experiment.Outcome, test, training space.Space, contexts map[string]bool) error {
	ordered := space.Invert(space.SortIndex(contexts))

	words := make([]string, 0, len(outcome.Results))
	for word := range outcome.Results {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		result := outcome.Results[word]

		fields := instance(test, word, ordered)
		fields = append(fields, result.Correct, result.Predicted,
			formatDistance(result.Distance))
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("report: write %s: %w", word, err)
		}

		for _, neighbor := range result.Neighbors {
			line := append([]string{neighborMarker}, instance(training, neighbor, ordered)...)
			if _, err := fmt.Fprintln(w, strings.Join(line, "\t")); err != nil {
				return fmt.Errorf("report: write neighbor %s: %w", neighbor, err)
			}
		}
	}
	return nil
}

// AppendFile appends the rendered outcome to the file at path, creating it
// when absent.
func AppendFile(path string, outcome *experiment.Outcome, test, training space.Space, contexts map[string]bool) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, outcome, test, training, contexts); err != nil {
		return err
	}
	return f.Sync()
}

// formatDistance renders a cosine distance in its shortest round-trip form,
// keeping an explicit decimal point on whole values ("0.0", not "0") so
// report lines diff cleanly against previously generated output.
func formatDistance(d float64) string {
	s := strconv.FormatFloat(d, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// instance renders a word and its full count row over the ordered context
// list as report fields.
func instance(s space.Space, word string, contexts []string) []string {
	fields := make([]string, 0, len(contexts)+1)
	fields = append(fields, word)
	for _, count := range space.Counts(s, word, contexts) {
		fields = append(fields, strconv.Itoa(count))
	}
	return fields
}
