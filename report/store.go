package report

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"sort"
	"strings"

	sqlite "modernc.org/sqlite"

	"github.com/viant/posknn/experiment"
	"github.com/viant/posknn/space"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS results (
    word      TEXT PRIMARY KEY,
    predicted TEXT NOT NULL,
    correct   TEXT NOT NULL,
    accuracy  INTEGER NOT NULL,
    distance  REAL NOT NULL,
    neighbors TEXT,
    vector    BLOB
);
`

// Open opens a SQLite results database using the modernc.org/sqlite driver,
// registering the pos_cosine SQL function beforehand so new connections can
// rank stored vectors by similarity. Pass ":memory:" for an in-memory
// database.
func Open(dsn string) (*sql.DB, error) {
	// Idempotent registration; the driver rejects duplicates and the error is
	// ignored deliberately.
	_ = sqlite.RegisterDeterministicScalarFunction("pos_cosine", 2, posCosine)
	return sql.Open("sqlite", dsn)
}

// EnsureSchema creates the results table when absent.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(resultsSchema)
	return err
}

// SaveOutcome writes one row per categorized test word: the predicted and
// correct tags, the binary accuracy, the nearest cosine distance, the
// neighbor set, and the word's full count vector encoded as a BLOB. Existing
// rows for the same word are replaced, so a re-run overwrites its previous
// outcome.
func SaveOutcome(ctx context.Context, db *sql.DB, outcome *experiment.Outcome, test space.Space, contexts map[string]bool) error {
	if db == nil {
		return fmt.Errorf("report: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("report: ensure schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO results(word, predicted, correct, accuracy, distance, neighbors, vector)
VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ordered := space.Invert(space.SortIndex(contexts))

	words := make([]string, 0, len(outcome.Results))
	for word := range outcome.Results {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		result := outcome.Results[word]
		counts := space.Counts(test, word, ordered)
		vec := make([]float32, len(counts))
		for i, n := range counts {
			vec[i] = float32(n)
		}
		if _, err := stmt.ExecContext(ctx, word, result.Predicted, result.Correct,
			result.Accuracy, result.Distance, strings.Join(result.Neighbors, " "),
			EncodeVector(vec)); err != nil {
			return fmt.Errorf("report: insert %s: %w", word, err)
		}
	}
	return tx.Commit()
}

// posCosine backs the pos_cosine(blob, blob) SQL scalar. It decodes both
// BLOB arguments and returns their cosine similarity, with the zero-vector
// degenerate case defined as 0.
func posCosine(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pos_cosine: expected 2 arguments, got %d", len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("pos_cosine: dimension mismatch: %d vs %d", len(a), len(b))
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return float64(0), nil
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

func asVector(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("pos_cosine: unsupported argument type %T; want BLOB", arg)
	}
}
