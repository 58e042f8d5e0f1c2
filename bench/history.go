// Package bench records scale benchmark results for htable and compares runs.
//
// Results are appended to JSON files under a benchmark_history directory,
// tagged with the git commit and branch of the working tree.
package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Metrics represents metrics for a single benchmark
type Metrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Summary represents all benchmark results of one run
type Summary struct {
	Timestamp string    `json:"timestamp"`
	CommitID  string    `json:"commit_id"`
	Branch    string    `json:"branch"`
	GoVersion string    `json:"go_version"`
	Results   []Metrics `json:"results"`
}

// MemoryStats returns the current heap figures in megabytes
func MemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// Save appends m to dir/file, creating the directory and file when missing.
// A new file is tagged with the git state found under repoRoot; appending keeps
// the existing header.
func Save(repoRoot, dir, file string, m Metrics) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	commitID, branch := gitInfo(repoRoot)
	summary := Summary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []Metrics{m},
	}

	path := filepath.Join(dir, file)
	existing, err := Load(path)
	switch {
	case err == nil:
		summary = existing
		summary.Results = append(summary.Results, m)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}

// Load reads a Summary written by Save
func Load(path string) (Summary, error) {
	var s Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// gitInfo reads the short commit id and branch from repoRoot/.git
func gitInfo(repoRoot string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return
	}
	content := strings.TrimSpace(string(head))
	if !strings.HasPrefix(content, "ref: ") {
		// Detached HEAD holds the commit itself.
		return shortCommit(content), branch
	}

	ref := strings.TrimPrefix(content, "ref: ")
	branch = strings.TrimPrefix(ref, "refs/heads/")
	if data, err := os.ReadFile(filepath.Join(repoRoot, ".git", ref)); err == nil {
		commitID = shortCommit(strings.TrimSpace(string(data)))
	}
	return
}

func shortCommit(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
