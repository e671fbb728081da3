package charset

// IsDisjoint reports whether two slices of runes share no element.
// Both slices _MUST_ be sorted ascending: the scan of b resumes from
// the last offset known to hold only elements smaller than the current
// element of a, and no defensive sort is performed. Returns false on
// the first equal pair; an empty a or b is trivially disjoint.
func IsDisjoint(a, b []rune) bool {
	skip := 0

	for _, r := range a {
		for j := skip; j < len(b); j++ {
			if b[j] == r {
				return false
			}
			if b[j] < r {
				skip = j
			}
		}
	}

	return true
}
