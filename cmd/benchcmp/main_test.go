package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theflywheel/htable/bench"
)

func TestPrintComparison(t *testing.T) {
	base := bench.Summary{CommitID: "aaaa", Results: []bench.Metrics{
		{Name: "TenThousandKeys", Category: "scale", Metrics: map[string]float64{"insertion_rate": 100, "longest_chain": 6}},
	}}
	current := bench.Summary{CommitID: "bbbb", Results: []bench.Metrics{
		{Name: "TenThousandKeys", Category: "scale", Metrics: map[string]float64{"insertion_rate": 50, "longest_chain": 6}},
	}}

	var buf bytes.Buffer
	printComparison(&buf, bench.Compare(base, current, 5))

	out := buf.String()
	assert.Contains(t, out, "Benchmark Comparison: aaaa vs bbbb")
	assert.Contains(t, out, "[REGRESSION] TenThousandKeys (scale)")
	assert.Contains(t, out, "insertion_rate")
	assert.NotContains(t, out, "longest_chain")
}

func TestPrintComparisonEmpty(t *testing.T) {
	var buf bytes.Buffer
	printComparison(&buf, bench.Compare(bench.Summary{}, bench.Summary{}, 5))
	assert.Contains(t, buf.String(), "No matching benchmarks found")
}
