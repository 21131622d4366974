package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/IotA-asce/TSP-visualization/geom"
	"github.com/IotA-asce/TSP-visualization/tsp"
)

var (
	benchN         int
	benchSeed      int64
	benchStrategy  string
	benchMetric    string
	benchOpen      bool
	benchRepeats   int
	benchTimeLimit time.Duration
	benchAllStarts bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark a strategy on random instances",
	Long: `Generates n uniform random points in [0,1000)² from a fixed seed,
solves the instance repeatedly and reports the best wall time and best
length, plus the host environment for comparability.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchN, "n", 30, "Number of points")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "Random seed for point generation")
	benchCmd.Flags().StringVar(&benchStrategy, "strategy", "auto", "auto|bruteforce|nearest|two_opt|nearest_two_opt")
	benchCmd.Flags().StringVar(&benchMetric, "metric", "euclidean", "euclidean|manhattan")
	benchCmd.Flags().BoolVar(&benchOpen, "open", false, "Treat the route as an open path")
	benchCmd.Flags().IntVar(&benchRepeats, "repeats", 3, "Repeat runs and report best")
	benchCmd.Flags().DurationVar(&benchTimeLimit, "time-limit", 0, "Soft wall-clock budget per run (0 = none)")
	benchCmd.Flags().BoolVar(&benchAllStarts, "all-starts", false, "Restart nearest-neighbor from every vertex")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchN < 2 {
		return fmt.Errorf("--n must be >= 2")
	}
	if benchRepeats < 1 {
		return fmt.Errorf("--repeats must be >= 1")
	}

	opts, err := buildOptions(benchStrategy, benchMetric, benchOpen, benchTimeLimit)
	if err != nil {
		return err
	}
	opts.NearestAllStarts = benchAllStarts

	rng := rand.New(rand.NewSource(benchSeed))
	points := make([]geom.Vec, benchN)
	for i := range points {
		points[i] = geom.V(rng.Float64()*1000, rng.Float64()*1000)
	}

	env := collectSysInfo()
	slog.Info("Benchmark environment", "platform", env.Platform, "cpu", env.CPU, "memory", env.Memory)
	slog.Info("Benchmark starting", "n", benchN, "strategy", benchStrategy, "repeats", benchRepeats)

	var (
		bestTime   = time.Duration(math.MaxInt64)
		bestLength = math.Inf(1)
		last       tsp.Result
	)
	for run := 0; run < benchRepeats; run++ {
		t0 := time.Now()
		res, serr := tsp.Solve(points, opts)
		if serr != nil {
			return fmt.Errorf("solve: %w", serr)
		}
		dt := time.Since(t0)

		if dt < bestTime {
			bestTime = dt
		}
		if res.Length < bestLength {
			bestLength = res.Length
		}
		last = res
		slog.Debug("Run finished", "run", run, "elapsed", dt, "length", res.Length,
			"iterations", res.Iterations, "converged", res.Converged)
	}

	fmt.Printf("n=%d closed=%v strategy=%s metric=%s\n",
		benchN, !benchOpen, last.StrategyUsed, benchMetric)
	fmt.Printf("best_time_s=%.6f best_length=%.3f converged=%v\n",
		bestTime.Seconds(), bestLength, last.Converged)

	return nil
}

// buildOptions assembles engine options from the shared CLI flags.
func buildOptions(strategy, metric string, open bool, limit time.Duration) (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	opts.Closed = !open
	opts.TimeLimit = limit

	strat, err := tsp.ParseStrategy(strategy)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("--strategy %q: %w", strategy, err)
	}
	opts.Strategy = strat

	m, err := tsp.ParseMetric(metric)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("--metric %q: %w", metric, err)
	}
	opts.Metric = m

	return opts, nil
}
