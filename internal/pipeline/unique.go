package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"statewords/internal/charset"
)

// Unique retains only the candidate pairs whose word is disjoint from
// no state other than its paired one. Each pair is checked against the
// full state list by its own task; the pair is discarded as soon as any
// other state disjoint from the word turns up, and emitted unchanged
// otherwise. States count as "other" when their original text differs,
// so duplicate state names never disqualify each other's pairs.
//
// workers bounds the pool; if 0 or negative, runtime.NumCPU() is used.
func Unique(states []charset.Entry, candidates []Pair, workers int) ([]Pair, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan Pair, workers)

	var unique []Pair
	done := make(chan struct{})
	go func() {
		defer close(done)
		for pair := range results {
			unique = append(unique, pair)
		}
	}()

	var eg errgroup.Group
	eg.SetLimit(workers)

	for _, candidate := range candidates {
		candidate := candidate
		eg.Go(func() error {
			for i := range states {
				other := &states[i]
				if other.Original != candidate.State.Original &&
					charset.IsDisjoint(other.Chars, candidate.Word.Chars) {
					return nil
				}
			}
			results <- candidate
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(results)
	<-done

	return unique, nil
}
