// Package prefix turns "name starts with P" into a half-open
// lexicographic range usable by an ordered index.
package prefix

// Range returns the minimal name range [lower, upper) containing exactly
// the strings that start with prefix, compared byte-wise. When bounded is
// false the range has no upper limit: this happens for the empty prefix
// (which matches everything) and for a prefix consisting entirely of 0xFF
// bytes, which has no byte-wise successor.
//
// The upper bound is formed by incrementing the prefix's last byte with
// carry: trailing 0xFF bytes are dropped until a byte below 0xFF is found
// and incremented.
func Range(prefix string) (lower, upper string, bounded bool) {
	lower = prefix

	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xFF {
			b[i]++
			return lower, string(b[:i+1]), true
		}
	}

	// Empty prefix or all bytes at the maximum value.
	return lower, "", false
}

// Matches reports whether name falls in the range produced by Range for
// the given prefix. It is the naive reference predicate; the range form
// exists so an ordered index can answer the same question with a scan.
func Matches(prefix, name string) bool {
	return len(name) >= len(prefix) && name[:len(prefix)] == prefix
}
