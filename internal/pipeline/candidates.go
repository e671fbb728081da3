package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"statewords/internal/charset"
)

// DefaultWorkers is the worker pool size used when no override is given.
const DefaultWorkers = 4

// Pair links a state entry to a word entry found disjoint from it.
// It borrows both entries; the backing lists own them.
type Pair struct {
	State *charset.Entry
	Word  *charset.Entry
}

// Candidates produces every (state, word) pair whose charsets are
// disjoint. One task is scheduled per state; each task scans the whole
// word list and sends matches into a shared results channel drained by
// a single collector. The stage joins fully before returning, so the
// caller always sees the complete candidate set.
//
// workers bounds the pool; if 0 or negative, runtime.NumCPU() is used.
func Candidates(states, words []charset.Entry, workers int) ([]Pair, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan Pair, workers)

	// Collect results in a separate goroutine
	var candidates []Pair
	done := make(chan struct{})
	go func() {
		defer close(done)
		for pair := range results {
			candidates = append(candidates, pair)
		}
	}()

	var eg errgroup.Group
	eg.SetLimit(workers)

	for i := range states {
		state := &states[i]
		eg.Go(func() error {
			for j := range words {
				word := &words[j]
				if charset.IsDisjoint(state.Chars, word.Chars) {
					results <- Pair{State: state, Word: word}
				}
			}
			return nil
		})
	}

	// Wait for all workers, then signal the collector and wait for it:
	// a lost candidate here would corrupt the uniqueness phase.
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(results)
	<-done

	return candidates, nil
}
