package bench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/closestpair/bruteforce"
	"github.com/katalvlaran/closestpair/divconq"
	"github.com/katalvlaran/closestpair/point"
	"github.com/katalvlaran/closestpair/pointgen"
	"github.com/katalvlaran/closestpair/pointio"
	"github.com/katalvlaran/closestpair/quicksort"
	"github.com/katalvlaran/closestpair/result"
)

// Run executes the comparison and streams results to the two sinks.
func Run(recursive, brute Sink, opts ...Option) error {
	cfg := newConfig(opts...)
	genOpts := append([]pointgen.Option{pointgen.WithRand(cfg.rng)}, cfg.pointOpts...)

	for size := cfg.startSize; size < cfg.maxSize; size *= 2 {
		if err := runSize(cfg, genOpts, size, recursive, brute); err != nil {
			return err
		}
	}

	return nil
}

// runSize performs every repetition for one input size.
func runSize(cfg config, genOpts []pointgen.Option, size int, recursive, brute Sink) error {
	if err := recursive.Begin(size); err != nil {
		return err
	}
	if err := brute.Begin(size); err != nil {
		return err
	}

	var (
		recAvg, bfAvg Average
		n             = float64(cfg.repeats)
	)
	for run := 0; run < cfg.repeats; run++ {
		pts, err := pointgen.Generate(size, genOpts...)
		if err != nil {
			return err
		}
		if cfg.scratchDir != "" {
			if pts, err = roundTrip(cfg.scratchDir, pts); err != nil {
				return err
			}
		}
		quicksort.Sort(pts)

		cfg.progress(Progress{Algorithm: Recursive, Size: size, Run: run, Repeats: cfg.repeats})
		rec, err := divconq.Solve(pts)
		if err != nil {
			return err
		}
		cfg.progress(Progress{Algorithm: BruteForce, Size: size, Run: run, Repeats: cfg.repeats})
		bf, err := bruteforce.Solve(pts)
		if err != nil {
			return err
		}
		if rec.Distance != bf.Distance {
			return fmt.Errorf("%w: size=%d run=%d recursive=%g brute=%g",
				ErrDisagreement, size, run, rec.Distance, bf.Distance)
		}

		if err = recursive.Consume(rec); err != nil {
			return err
		}
		if err = brute.Consume(bf); err != nil {
			return err
		}
		accumulate(&recAvg, rec, n)
		accumulate(&bfAvg, bf, n)
	}

	if err := recursive.End(recAvg); err != nil {
		return err
	}

	return brute.End(bfAvg)
}

// accumulate adds r's share of the mean over n runs to avg.
func accumulate(avg *Average, r result.Result, n float64) {
	avg.Elapsed += float64(r.Elapsed.Nanoseconds()) / n
	avg.Iterations += float64(r.Iterations) / n
}

// roundTrip writes pts to a uniquely named file in dir, reads it back and
// removes it.
func roundTrip(dir string, pts []point.Point) ([]point.Point, error) {
	path := filepath.Join(dir, "points-"+uuid.NewString()+".txt")
	if err := pointio.WriteFile(path, pts); err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return pointio.ReadFile(path)
}
