package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report captures per-phase timings for a single pipeline run.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Phases    []Phase   `json:"phases"`
}

// Phase records the outcome of one pipeline stage.
type Phase struct {
	Name     string        `json:"name"`
	Items    int           `json:"items"`
	Duration time.Duration `json:"duration_ns"`
}

// New returns a report stamped with a fresh run ID and start time.
func New() *Report {
	return &Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// AddPhase appends a completed phase to the report.
func (r *Report) AddPhase(name string, items int, d time.Duration) {
	r.Phases = append(r.Phases, Phase{Name: name, Items: items, Duration: d})
}

// Write marshals the report as indented JSON and writes it to path.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
