// Command closestpair compares the brute-force and divide-and-conquer
// closest-pair solvers.
//
// Benchmark mode (default) doubles the input size from -start while it stays
// below -max, runs each size -repeats times and writes
//
//	<out>/recursive.txt
//	<out>/brute_force.txt
//
// with one "size t1 i1 … tN iN avgT avgI" line per size. -archive bundles both
// files into a .zip/.tar.gz (format chosen by extension).
//
// Single mode (-n N, or -input FILE) solves one point set with both solvers
// and prints the results.
//
// Usage:
//
//	closestpair [-start 2] [-max 50000] [-repeats 10] [-seed 1] [-out output]
//	            [-scratch DIR] [-archive results.tar.gz]
//	closestpair -n 1000 [-seed 1]
//	closestpair -input points.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mholt/archiver/v3"

	"github.com/katalvlaran/closestpair/bench"
	"github.com/katalvlaran/closestpair/bruteforce"
	"github.com/katalvlaran/closestpair/divconq"
	"github.com/katalvlaran/closestpair/point"
	"github.com/katalvlaran/closestpair/pointgen"
	"github.com/katalvlaran/closestpair/pointio"
	"github.com/katalvlaran/closestpair/quicksort"
	"github.com/katalvlaran/closestpair/result"
)

// options are the parsed command-line flags.
type options struct {
	n       int
	input   string
	start   int
	max     int
	repeats int
	seed    int64
	out     string
	scratch string
	archive string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("closestpair failed", "err", err)
		os.Exit(1)
	}
}

// run parses args and dispatches to single or benchmark mode.
func run(args []string, stdout io.Writer, logger *slog.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.input != "" || opts.n > 0 {
		return runSingle(opts, stdout, logger)
	}

	return runBench(opts, logger)
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("closestpair", flag.ContinueOnError)
	fs.IntVar(&o.n, "n", 0, "solve a single generated set of n points and exit")
	fs.StringVar(&o.input, "input", "", "solve the point file at this path and exit")
	fs.IntVar(&o.start, "start", bench.DefaultStartSize, "first input size (≥2)")
	fs.IntVar(&o.max, "max", bench.DefaultMaxSize, "exclusive upper bound of the doubling sizes")
	fs.IntVar(&o.repeats, "repeats", bench.DefaultRepeats, "runs per input size")
	fs.Int64Var(&o.seed, "seed", 1, "seed of the point generator")
	fs.StringVar(&o.out, "out", "output", "directory for the result files")
	fs.StringVar(&o.scratch, "scratch", "", "round-trip generated sets through files in this directory")
	fs.StringVar(&o.archive, "archive", "", "bundle the result files into this .zip or .tar.gz")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.start < 2 {
		return o, fmt.Errorf("closestpair: -start must be ≥ 2, got %d", o.start)
	}
	if o.repeats <= 0 {
		return o, fmt.Errorf("closestpair: -repeats must be > 0, got %d", o.repeats)
	}

	return o, nil
}

// runSingle solves one point set with both solvers and prints the outcome.
func runSingle(opts options, stdout io.Writer, logger *slog.Logger) error {
	var (
		pts []point.Point
		err error
	)
	if opts.input != "" {
		pts, err = pointio.ReadFile(opts.input)
	} else {
		pts, err = pointgen.Generate(opts.n, pointgen.WithSeed(opts.seed))
	}
	if err != nil {
		return err
	}
	logger.Info("solving", "points", len(pts))

	quicksort.Sort(pts)
	rec, err := divconq.Solve(pts)
	if err != nil {
		return err
	}
	bf, err := bruteforce.Solve(pts)
	if err != nil {
		return err
	}
	printResult(stdout, bench.Recursive, rec)
	printResult(stdout, bench.BruteForce, bf)
	if rec.Distance != bf.Distance {
		return fmt.Errorf("%w: recursive=%g brute=%g", bench.ErrDisagreement, rec.Distance, bf.Distance)
	}

	return nil
}

func printResult(w io.Writer, algo bench.Algorithm, r result.Result) {
	fmt.Fprintf(w, "%-11s pair=%v %v distance=%g iterations=%d elapsed=%s\n",
		algo, r.P1, r.P2, r.Distance, r.Iterations, r.Elapsed)
}

// runBench writes the two result files and optionally archives them.
func runBench(opts options, logger *slog.Logger) error {
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}
	recPath := filepath.Join(opts.out, string(bench.Recursive)+".txt")
	bfPath := filepath.Join(opts.out, string(bench.BruteForce)+".txt")

	if err := writeResults(opts, recPath, bfPath, logger); err != nil {
		return err
	}
	logger.Info("results written", "recursive", recPath, "brute_force", bfPath)

	if opts.archive == "" {
		return nil
	}
	if err := removeIfExists(opts.archive); err != nil {
		return err
	}
	if err := archiver.Archive([]string{recPath, bfPath}, opts.archive); err != nil {
		return fmt.Errorf("closestpair: archive %s: %w", opts.archive, err)
	}
	logger.Info("archive written", "path", opts.archive)

	return nil
}

// writeResults runs the harness into freshly created result files.
func writeResults(opts options, recPath, bfPath string, logger *slog.Logger) (err error) {
	recFile, err := os.Create(recPath)
	if err != nil {
		return err
	}
	defer closeInto(recFile, &err)
	bfFile, err := os.Create(bfPath)
	if err != nil {
		return err
	}
	defer closeInto(bfFile, &err)

	benchOpts := []bench.Option{
		bench.WithSizes(opts.start, opts.max),
		bench.WithRepeats(opts.repeats),
		bench.WithSeed(opts.seed),
		bench.WithProgress(func(p bench.Progress) {
			logger.Info("running", "algorithm", p.Algorithm, "points", p.Size, "run", p.Run+1, "of", p.Repeats)
		}),
	}
	if opts.scratch != "" {
		if err = os.MkdirAll(opts.scratch, 0o755); err != nil {
			return err
		}
		benchOpts = append(benchOpts, bench.WithScratchDir(opts.scratch))
	}

	return bench.Run(bench.NewTextSink(recFile), bench.NewTextSink(bfFile), benchOpts...)
}

// closeInto closes f and records the error in *err unless one is already set.
func closeInto(f *os.File, err *error) {
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
