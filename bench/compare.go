package bench

import (
	"sort"
	"strings"
)

// MetricComparison represents a comparison between two metric values
type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsImprovement bool    `json:"is_improvement"`
	IsSignificant bool    `json:"is_significant"`
}

// Assessment is the overall verdict for one benchmark
type Assessment string

const (
	Regression  Assessment = "REGRESSION"
	Improvement Assessment = "IMPROVEMENT"
	Neutral     Assessment = "NEUTRAL"
)

// BenchmarkComparison represents a comparison between benchmark results
type BenchmarkComparison struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	MetricComparisons []MetricComparison `json:"metric_comparisons"`
	OverallAssessment Assessment         `json:"overall_assessment"`
	HasRegressions    bool               `json:"has_regressions"`
	Score             float64            `json:"score"`
}

// Comparison represents the overall benchmark comparison result
type Comparison struct {
	BaseCommit             string                `json:"base_commit"`
	CurrentCommit          string                `json:"current_commit"`
	TotalBenchmarks        int                   `json:"total_benchmarks"`
	ImprovedBenchmarks     int                   `json:"improved_benchmarks"`
	SignificantRegressions int                   `json:"significant_regressions"`
	BenchmarkComparisons   []BenchmarkComparison `json:"benchmark_comparisons"`
}

// Compare matches benchmarks by name and classifies every shared metric.
// Only the last result recorded under a name takes part. A change of at least
// threshold percent is significant. Benchmarks with significant regressions
// sort first, then by ascending score.
func Compare(base, current Summary, threshold float64) Comparison {
	baseResults := make(map[string]Metrics, len(base.Results))
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}

	out := Comparison{
		BaseCommit:           base.CommitID,
		CurrentCommit:        current.CommitID,
		BenchmarkComparisons: []BenchmarkComparison{},
	}

	for _, cur := range latest(current.Results) {
		prev, found := baseResults[cur.Name]
		if !found {
			continue
		}

		bc := compareMetrics(prev, cur, threshold)
		switch bc.OverallAssessment {
		case Regression:
			out.SignificantRegressions++
		case Improvement:
			out.ImprovedBenchmarks++
		}
		out.BenchmarkComparisons = append(out.BenchmarkComparisons, bc)
	}

	sort.SliceStable(out.BenchmarkComparisons, func(i, j int) bool {
		a, b := out.BenchmarkComparisons[i], out.BenchmarkComparisons[j]
		if a.HasRegressions != b.HasRegressions {
			return a.HasRegressions
		}
		return a.Score < b.Score
	})
	out.TotalBenchmarks = len(out.BenchmarkComparisons)
	return out
}

// latest keeps the last result per name, in order of first appearance
func latest(results []Metrics) []Metrics {
	pos := make(map[string]int, len(results))
	out := make([]Metrics, 0, len(results))
	for _, r := range results {
		if i, ok := pos[r.Name]; ok {
			out[i] = r
			continue
		}
		pos[r.Name] = len(out)
		out = append(out, r)
	}
	return out
}

func compareMetrics(base, cur Metrics, threshold float64) BenchmarkComparison {
	bc := BenchmarkComparison{
		Name:              cur.Name,
		Category:          cur.Category,
		MetricComparisons: []MetricComparison{},
	}

	names := make([]string, 0, len(cur.Metrics))
	for name := range cur.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	score := 0.0
	for _, name := range names {
		baseValue, found := base.Metrics[name]
		if !found {
			continue
		}
		currentValue := cur.Metrics[name]

		change := 0.0
		if baseValue != 0 {
			change = (currentValue - baseValue) / baseValue * 100
		}

		mc := MetricComparison{
			Name:          name,
			BaseValue:     baseValue,
			CurrentValue:  currentValue,
			PercentChange: change,
			IsSignificant: abs(change) >= threshold,
		}
		if higherIsBetter(name) {
			mc.IsRegression, mc.IsImprovement = change < 0, change > 0
		} else {
			mc.IsRegression, mc.IsImprovement = change > 0, change < 0
		}

		switch {
		case mc.IsImprovement:
			score += abs(change)
		case mc.IsRegression:
			score -= abs(change)
		}
		if mc.IsRegression && mc.IsSignificant {
			bc.HasRegressions = true
		}
		bc.MetricComparisons = append(bc.MetricComparisons, mc)
	}

	if n := len(bc.MetricComparisons); n > 0 {
		bc.Score = score / float64(n)
	}
	switch {
	case bc.HasRegressions:
		bc.OverallAssessment = Regression
	case bc.Score > 0:
		bc.OverallAssessment = Improvement
	default:
		bc.OverallAssessment = Neutral
	}
	return bc
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// higherIsBetter reports whether larger values of the metric are an improvement.
// Rates and counts go up; times, sizes and chain lengths go down.
func higherIsBetter(metric string) bool {
	for _, pattern := range []string{"rate", "ops_per_sec", "throughput", "operations"} {
		if strings.Contains(metric, pattern) {
			return true
		}
	}
	return false
}
