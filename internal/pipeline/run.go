package pipeline

import (
	"fmt"
	"time"

	"statewords/internal/charset"
	"statewords/internal/report"
	"statewords/internal/wordlist"
)

// Options configures a pipeline run.
type Options struct {
	// Workers bounds each parallel stage. Zero or negative means
	// runtime.NumCPU().
	Workers int

	// Progress, when non-nil, receives one human-readable message per
	// phase.
	Progress func(string)
}

// Result is the outcome of a full pipeline run.
type Result struct {
	// Pairs is the final unique disjoint pair list, sorted by state.
	Pairs []Pair

	// Report holds per-phase timings for the run.
	Report *report.Report
}

// Run executes the whole pipeline over two word-list files: load both
// lists, build charsets, generate disjoint candidates, filter them for
// uniqueness, and merge into the final sorted order. Any phase error
// aborts the run with no partial output.
func Run(statesFile, wordsFile string, opts Options) (*Result, error) {
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	rep := report.New()

	progress("Loading word lists...")
	phase := time.Now()

	stateLines, err := wordlist.Load(statesFile)
	if err != nil {
		return nil, err
	}
	wordLines, err := wordlist.Load(wordsFile)
	if err != nil {
		return nil, err
	}

	states := charset.Build(stateLines)
	words := charset.Build(wordLines)
	rep.AddPhase("load", len(states)+len(words), time.Since(phase))

	progress(fmt.Sprintf("Scanning %d states against %d words...", len(states), len(words)))
	phase = time.Now()

	candidates, err := Candidates(states, words, opts.Workers)
	if err != nil {
		return nil, err
	}
	rep.AddPhase("candidates", len(candidates), time.Since(phase))

	progress(fmt.Sprintf("Filtering %d candidate pairs for uniqueness...", len(candidates)))
	phase = time.Now()

	unique, err := Unique(states, candidates, opts.Workers)
	if err != nil {
		return nil, err
	}
	rep.AddPhase("unique", len(unique), time.Since(phase))

	phase = time.Now()
	merged := Merge(unique)
	rep.AddPhase("merge", len(merged), time.Since(phase))

	progress(fmt.Sprintf("Found %d unique disjoint pairs", len(merged)))

	return &Result{Pairs: merged, Report: rep}, nil
}
