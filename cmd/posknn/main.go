// Command posknn runs a distributional PoS-tagging experiment: it categorizes
// every word of a test co-occurrence file by the majority tag of its nearest
// training neighbors under cosine similarity, appends a per-word report to
// the output folder, and runs the same experiment through the external TiMBL
// classifier for comparison.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viant/posknn/experiment"
	"github.com/viant/posknn/report"
	"github.com/viant/posknn/space"
	"github.com/viant/posknn/timbl"
)

type options struct {
	trainingFile string
	testFile     string
	outputFolder string
	neighbors    int
	verbose      bool
	resultsDB    bool
	seed         int64
	noTimbl      bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "posknn",
		Short:         "PoS-tagging experiment over distributional co-occurrence vectors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.trainingFile, "training-file", "f", "", "path to the training file")
	flags.StringVarP(&opts.testFile, "test-file", "t", "", "path to the test file")
	flags.StringVarP(&opts.outputFolder, "output-folder", "o", "", "folder where experiment output files are stored")
	flags.IntVarP(&opts.neighbors, "nearest-neighbors", "n", 1, "number of nearest neighbors considered when categorizing a test word")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print extra information about the categorization outcome")
	flags.BoolVar(&opts.resultsDB, "results-db", false, "additionally store per-word outcomes in a SQLite database in the output folder")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for tie-break randomness (0 keeps the time-seeded default)")
	flags.BoolVar(&opts.noTimbl, "no-timbl", false, "skip the TiMBL comparison run")
	_ = cmd.MarkFlagRequired("training-file")
	_ = cmd.MarkFlagRequired("test-file")
	_ = cmd.MarkFlagRequired("output-folder")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := os.MkdirAll(opts.outputFolder, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	basename := filepath.Base(opts.testFile)

	// The TiMBL path is independent of the kNN path; its failure is reported
	// but does not abort the experiment.
	if !opts.noTimbl {
		err := timbl.Run(cmd.Context(), timbl.Config{
			TrainingFile:  opts.trainingFile,
			TestFile:      opts.testFile,
			OutputFile:    filepath.Join(opts.outputFolder, basename+".timbl"),
			NeighborCount: opts.neighbors,
			Verbose:       opts.verbose,
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}

	training, _, err := readSpace(opts.trainingFile)
	if err != nil {
		return err
	}
	// Contexts in the training and test files are assumed to be aligned by
	// construction: both were generated against the same column layout.
	test, contexts, err := readSpace(opts.testFile)
	if err != nil {
		return err
	}

	cfg := experiment.Config{
		NeighborCount: opts.neighbors,
		Verbose:       opts.verbose,
	}
	if opts.seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(opts.seed))
	}
	outcome, err := experiment.Run(training, test, contexts, cfg)
	if err != nil {
		return err
	}

	reportPath := filepath.Join(opts.outputFolder, basename+".knn")
	if err := report.AppendFile(reportPath, outcome, test, training, contexts); err != nil {
		return err
	}

	if opts.resultsDB {
		if err := saveResults(cmd, opts, basename, outcome, test, contexts); err != nil {
			return err
		}
	}

	printDiagnostics(cmd, outcome)
	return nil
}

func readSpace(path string) (space.Space, map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	s, contexts, err := space.Read(f, space.DefaultSep)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, contexts, nil
}

func saveResults(cmd *cobra.Command, opts *options, basename string, outcome *experiment.Outcome, test space.Space, contexts map[string]bool) error {
	db, err := report.Open(filepath.Join(opts.outputFolder, basename+".db"))
	if err != nil {
		return err
	}
	defer db.Close()
	return report.SaveOutcome(cmd.Context(), db, outcome, test, contexts)
}

func printDiagnostics(cmd *cobra.Command, outcome *experiment.Outcome) {
	out := cmd.OutOrStdout()
	words := space.Invert(outcome.WordIndex)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cosine matrix - rows are training words, columns test words:")
	for _, row := range outcome.Similarities {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprintf(out, "%.4f", v)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Mapping between rows/columns and words:")
	fmt.Fprintln(out, "  columns of words absent from the test set stay zero and are never categorized")
	fmt.Fprintln(out, "  rows of words absent from the training set stay zero and are never retrieved as neighbors")
	for i, word := range words {
		fmt.Fprintf(out, "  %d\t%s\n", i, word)
	}
	fmt.Fprintln(out)
	hits := 0
	for _, r := range outcome.Results {
		hits += r.Accuracy
	}
	fmt.Fprintf(out, "Accuracy: %.4f (%d/%d)\n", outcome.Accuracy(), hits, len(outcome.Results))
}
