package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IotA-asce/TSP-visualization/tsp"
)

var (
	solveLoad      string
	solveStrategy  string
	solveMetric    string
	solveOpen      bool
	solveTimeLimit time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a JSON point file",
	Long: `Loads points from JSON ([[x,y],…] or {"points": [[x,y],…]}, the
visualizer's save format), solves them and prints the tour as JSON.`,
	RunE: runSolveFile,
}

func init() {
	solveCmd.Flags().StringVar(&solveLoad, "load", "", "Points file path (required)")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "auto", "auto|bruteforce|nearest|two_opt|nearest_two_opt")
	solveCmd.Flags().StringVar(&solveMetric, "metric", "euclidean", "euclidean|manhattan")
	solveCmd.Flags().BoolVar(&solveOpen, "open", false, "Treat the route as an open path")
	solveCmd.Flags().DurationVar(&solveTimeLimit, "time-limit", 0, "Soft wall-clock budget (0 = none)")

	solveCmd.MarkFlagRequired("load")
	rootCmd.AddCommand(solveCmd)
}

// solveOutput is the printed result shape.
type solveOutput struct {
	Tour       []int   `json:"tour"`
	Length     float64 `json:"length"`
	Strategy   string  `json:"strategy"`
	Iterations int     `json:"iterations"`
	ElapsedMS  float64 `json:"elapsed_ms"`
	Converged  bool    `json:"converged"`
}

func runSolveFile(cmd *cobra.Command, args []string) error {
	points, err := loadPoints(solveLoad)
	if err != nil {
		return err
	}
	slog.Info("Loaded points", "path", solveLoad, "count", len(points))

	opts, err := buildOptions(solveStrategy, solveMetric, solveOpen, solveTimeLimit)
	if err != nil {
		return err
	}

	res, err := tsp.Solve(points, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	out := solveOutput{
		Tour:       res.Tour,
		Length:     res.Length,
		Strategy:   res.StrategyUsed.String(),
		Iterations: res.Iterations,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
		Converged:  res.Converged,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
