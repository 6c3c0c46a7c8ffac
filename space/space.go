package space

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultSep is the field separator used by the corpus files this module is
// normally run against.
const DefaultSep = "\t"

// Space is a sparse co-occurrence mapping from a labeled word ("PoS|word")
// to the contexts it occurred with and the corresponding count. Only
// non-zero counts are stored; it is built once per input and not mutated
// afterwards.
type Space map[string]map[string]int

// Tag extracts the PoS tag embedded as a prefix of a labeled word, i.e. the
// substring before the first '|'. A word without a separator is returned
// whole.
func Tag(word string) string {
	if i := strings.IndexByte(word, '|'); i >= 0 {
		return word[:i]
	}
	return word
}

// Read consumes delimited records from r and builds a co-occurrence Space.
//
// Each record carries a word-bearing first field, a variable number of
// numeric count fields, and a final PoS-tag field. The labeled word is
// derived as "tag|word", where word is the prefix of the first field before
// its first '~' (the whole field when no tilde is present). Count column i
// is named "c_i"; every context name is returned in the context set even
// when all of its counts are zero, so that training and test files with the
// same column layout index into aligned context sets. Only non-zero counts
// are recorded in the Space.
//
// Records with fewer than two fields are skipped; beyond that, field counts
// are not validated and behavior on malformed input is undefined. A count
// field that does not parse as an integer surfaces the parse error.
func Read(r io.Reader, sep string) (Space, map[string]bool, error) {
	if sep == "" {
		sep = DefaultSep
	}
	s := Space{}
	contexts := map[string]bool{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		record := strings.Split(text, sep)
		if len(record) < 2 {
			continue
		}
		word, _, _ := strings.Cut(record[0], "~")
		pos := record[len(record)-1]
		counts := record[1 : len(record)-1]
		for i, raw := range counts {
			context := "c_" + strconv.Itoa(i)
			contexts[context] = true
			count, err := strconv.Atoi(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("space: line %d column %d: %w", line, i+2, err)
			}
			if count == 0 {
				continue
			}
			labeled := pos + "|" + word
			if s[labeled] == nil {
				s[labeled] = map[string]int{}
			}
			s[labeled][context] = count
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("space: read: %w", err)
	}
	return s, contexts, nil
}

// Counts re-materializes the full count row of a word over the given ordered
// context list, substituting zero for contexts the word never occurred with.
// The ordering of contexts must be fixed by the caller to preserve column
// alignment across words.
func Counts(s Space, word string, contexts []string) []int {
	row := make([]int, len(contexts))
	occurred := s[word]
	for i, context := range contexts {
		row[i] = occurred[context]
	}
	return row
}
