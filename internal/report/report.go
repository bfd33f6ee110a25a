// Package report builds the persisted run document and the human-readable
// console rendering. The JSON field set and nesting are the externally
// consumable contract and must stay stable for downstream consumers.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/example/stealthprobe/internal/probe"
)

// Meta is the run metadata recorded alongside the results.
type Meta struct {
	TargetProcess string
	TargetWindow  string
	Platform      string
	Timestamp     time.Time
}

// SeverityCounts is the severity-bucketed failure summary. Unlike the console
// recommendation tiers, it includes low-severity failures.
type SeverityCounts struct {
	Critical int `json:"critical_issues"`
	High     int `json:"high_issues"`
	Medium   int `json:"medium_issues"`
	Low      int `json:"low_issues"`
}

// Document is the persisted report.
type Document struct {
	Timestamp       string         `json:"timestamp"`
	TargetProcess   string         `json:"target_process"`
	TargetWindow    string         `json:"target_window"`
	Platform        string         `json:"platform"`
	TotalTests      int            `json:"total_tests"`
	PassedTests     int            `json:"passed_tests"`
	ScorePercentage float64        `json:"score_percentage"`
	TestResults     []probe.Result `json:"test_results"`
	Summary         SeverityCounts `json:"summary"`
}

// Build derives a document from the immutable result sequence.
func Build(meta Meta, results []probe.Result) Document {
	summary := probe.Score(results)
	counts := probe.FailureCounts(results)

	return Document{
		Timestamp:       meta.Timestamp.UTC().Format(time.RFC3339),
		TargetProcess:   meta.TargetProcess,
		TargetWindow:    meta.TargetWindow,
		Platform:        meta.Platform,
		TotalTests:      summary.Total,
		PassedTests:     summary.Passed,
		ScorePercentage: summary.Percentage,
		TestResults:     results,
		Summary: SeverityCounts{
			Critical: counts[probe.SeverityCritical],
			High:     counts[probe.SeverityHigh],
			Medium:   counts[probe.SeverityMedium],
			Low:      counts[probe.SeverityLow],
		},
	}
}

// Write persists the document as indented JSON.
func (d Document) Write(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a previously written document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return doc, nil
}

// DefaultFilename derives the report filename from the run timestamp.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("stealth_report_%s.json", t.Format("20060102_150405"))
}
