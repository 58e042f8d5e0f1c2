// Command benchcmp compares two benchmark history files written by the bench package.
//
// Usage:
//
//	benchcmp <base_json_file> <current_json_file>
//
// The comparison is printed, written to benchmark-comparison.json, and the
// command exits with status 1 when a significant regression is found. The
// significance threshold in percent comes from HTABLE_REGRESSION_THRESHOLD.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/theflywheel/htable/bench"
	"github.com/theflywheel/htable/internal/config"
)

const outputPath = "benchmark-comparison.json"

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: benchcmp <base_json_file> <current_json_file>")
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	logger, err := cfg.StderrLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up logging")
	}

	base, err := bench.Load(os.Args[1])
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load base results")
	}
	current, err := bench.Load(os.Args[2])
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load current results")
	}

	comparison := bench.Compare(base, current, cfg.RegressionThreshold)
	printComparison(os.Stdout, comparison)

	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("could not encode comparison")
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		logger.Fatal().Err(err).Str("path", outputPath).Msg("could not write comparison")
	}
	logger.Info().Str("path", outputPath).Msg("comparison written")

	if comparison.SignificantRegressions > 0 {
		logger.Warn().Int("regressions", comparison.SignificantRegressions).Msg("significant performance regressions detected")
		os.Exit(1)
	}
}

// printComparison outputs a human-readable comparison report
func printComparison(w io.Writer, c bench.Comparison) {
	fmt.Fprintf(w, "Benchmark Comparison: %s vs %s\n\n", c.BaseCommit, c.CurrentCommit)
	fmt.Fprintf(w, "- Total benchmarks compared: %d\n", c.TotalBenchmarks)
	fmt.Fprintf(w, "- Improvements: %d\n", c.ImprovedBenchmarks)
	fmt.Fprintf(w, "- Significant regressions: %d\n", c.SignificantRegressions)

	if c.TotalBenchmarks == 0 {
		fmt.Fprintln(w, "\nNo matching benchmarks found for comparison")
		return
	}

	for _, bc := range c.BenchmarkComparisons {
		fmt.Fprintf(w, "\n[%s] %s (%s):\n", bc.OverallAssessment, bc.Name, bc.Category)

		metrics := append([]bench.MetricComparison(nil), bc.MetricComparisons...)
		sort.Slice(metrics, func(i, j int) bool {
			return abs(metrics[i].PercentChange) > abs(metrics[j].PercentChange)
		})
		for _, m := range metrics {
			if m.PercentChange == 0 {
				continue
			}
			marker := " "
			switch {
			case m.IsRegression && m.IsSignificant:
				marker = "v"
			case m.IsImprovement && m.IsSignificant:
				marker = "^"
			}
			fmt.Fprintf(w, "  %s %-24s: %+8.2f%% (%g -> %g)\n",
				marker, m.Name, m.PercentChange, m.BaseValue, m.CurrentValue)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
