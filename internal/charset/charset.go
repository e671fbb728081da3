package charset

import "slices"

// Entry pairs a line of text with the deduplicated, sorted set of
// characters appearing in it. Chars is derived once at construction
// and never mutated afterward, so entries can be shared across
// goroutines without locking.
type Entry struct {
	Original string
	Chars    []rune
}

// Build converts lines into entries, one per line, in input order.
// Spaces are skipped; every other character is retained on first
// occurrence and the retained set is then sorted. Blank lines yield
// entries with an empty Chars rather than being dropped, preserving
// line-to-entry correspondence for callers that rely on it.
func Build(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))

	for _, line := range lines {
		entries = append(entries, Entry{
			Original: line,
			Chars:    buildChars(line),
		})
	}

	return entries
}

func buildChars(line string) []rune {
	seen := make(map[rune]bool, len(line))
	chars := make([]rune, 0, len(line))

	for _, r := range line {
		if r == ' ' || seen[r] {
			continue
		}
		seen[r] = true
		chars = append(chars, r)
	}

	slices.Sort(chars)
	return chars
}
