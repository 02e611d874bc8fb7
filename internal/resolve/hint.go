package resolve

import "strings"

// HasHint is a case-insensitive substring test against a directory
// path. It only disambiguates architectures that share an identical
// role signature; a missed hint falls through to the generic kind.
func HasHint(path, needle string) bool {
	return strings.Contains(strings.ToLower(path), strings.ToLower(needle))
}

// HasAnyHint reports whether any needle matches the path.
func HasAnyHint(path string, needles ...string) bool {
	for _, n := range needles {
		if HasHint(path, n) {
			return true
		}
	}
	return false
}
