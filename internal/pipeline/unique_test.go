package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statewords/internal/charset"
)

func TestUnique_WorkedExample(t *testing.T) {
	states := charset.Build([]string{"abc", "def"})
	words := charset.Build([]string{"xyz", "abx"})

	candidates, err := Candidates(states, words, DefaultWorkers)
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"abc => xyz", "def => xyz", "def => abx"},
		pairStrings(candidates))

	// xyz is disjoint from both states, so both of its pairs fall; abx
	// is disjoint only from def and survives.
	got, err := Unique(states, candidates, DefaultWorkers)
	require.NoError(t, err)

	assert.Equal(t, []string{"def => abx"}, pairStrings(got))
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		words  []string
		want   []string
	}{
		{
			name:   "word disjoint from two states is dropped for both",
			states: []string{"abc", "def", "ghi"},
			words:  []string{"xyz"},
			want:   []string{},
		},
		{
			name:   "word disjoint from exactly one state survives",
			states: []string{"abc", "dex", "ghx"},
			words:  []string{"xyz"},
			want:   []string{"abc => xyz"},
		},
		{
			name:   "single state keeps every candidate",
			states: []string{"abc"},
			words:  []string{"xyz", "def"},
			want:   []string{"abc => def", "abc => xyz"},
		},
		{
			name:   "no candidates",
			states: []string{"abc"},
			words:  []string{"cab"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := charset.Build(tt.states)
			words := charset.Build(tt.words)

			candidates, err := Candidates(states, words, DefaultWorkers)
			require.NoError(t, err)

			got, err := Unique(states, candidates, DefaultWorkers)
			require.NoError(t, err)

			assert.Equal(t, tt.want, pairStrings(got))
		})
	}
}

// States with identical text are not "other" to each other, so a word
// paired with one duplicate is never disqualified by the twin. No pair
// may be silently dropped.
func TestUnique_DuplicateStateNames(t *testing.T) {
	states := charset.Build([]string{"abc", "abc"})
	words := charset.Build([]string{"def"})

	candidates, err := Candidates(states, words, DefaultWorkers)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	got, err := Unique(states, candidates, DefaultWorkers)
	require.NoError(t, err)

	assert.Equal(t, []string{"abc => def", "abc => def"}, pairStrings(got))
}

func TestUnique_WorkerCountInvariance(t *testing.T) {
	states := charset.Build([]string{"alabama", "ohio", "utah", "texas", "iowa"})
	words := charset.Build([]string{"nymph", "crwth", "glyph", "dvorak", "fjord", "squelch"})

	candidates, err := Candidates(states, words, DefaultWorkers)
	require.NoError(t, err)

	baseline, err := Unique(states, candidates, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 0} {
		got, err := Unique(states, candidates, workers)
		require.NoError(t, err)
		assert.Equal(t, pairStrings(baseline), pairStrings(got), "workers=%d", workers)
	}
}
