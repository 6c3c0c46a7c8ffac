package timbl

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Binary is the name of the TiMBL executable resolved via PATH.
const Binary = "timbl"

// Config describes one TiMBL experiment invocation.
type Config struct {
	// TrainingFile and TestFile are the delimited corpus files.
	TrainingFile string
	TestFile     string

	// OutputFile is where TiMBL writes its categorization output.
	OutputFile string

	// NeighborCount is passed as -k. Values below 1 are raised to 1.
	NeighborCount int

	// Verbose adds +v di+db+n: the cosine distance of the nearest
	// neighbor(s), the class distribution of the neighbor set, and the
	// neighbor set itself.
	Verbose bool
}

// Args builds the TiMBL command line: overlap metric with the first feature
// ignored (-mC:I1), no feature weighting (-w0), and the configured neighbor
// count.
func Args(cfg Config) []string {
	nn := cfg.NeighborCount
	if nn < 1 {
		nn = 1
	}
	args := []string{"-k" + strconv.Itoa(nn), "-mC:I1", "-w0"}
	if cfg.Verbose {
		args = append(args, "+v", "di+db+n")
	}
	return append(args,
		"-f", cfg.TrainingFile,
		"-t", cfg.TestFile,
		"-o", cfg.OutputFile,
	)
}

// Run executes the TiMBL experiment, producing cfg.OutputFile as a side
// effect. Failures (binary not found, non-zero exit) are returned unmodified
// apart from the wrapping prefix; the caller decides whether they are fatal.
func Run(ctx context.Context, cfg Config) error {
	cmd := exec.CommandContext(ctx, Binary, Args(cfg)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("timbl: %w: %s", err, out)
	}
	return nil
}
