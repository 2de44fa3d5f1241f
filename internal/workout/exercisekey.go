package workout

import "strings"

// ExerciseKey canonicalises an exercise display name for use as a lookup key:
// lowercase with everything outside [a-z0-9] removed. "Bench Press",
// "bench-press" and "benchpress" all map to "benchpress". The function is
// idempotent, so stored keys pass through unchanged.
func ExerciseKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
