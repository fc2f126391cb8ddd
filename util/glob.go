package util

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
)

// Glob returns the sorted names of all entries below root that match the given slash separated pattern.
// The pattern may contain "**" to match any number of directories. A root that doesn't exist yields an
// empty result.
func Glob(root string, pattern string) (matches []string, e error) {
	if !IsDir(root) {
		return nil, nil
	}
	matches, e = doublestar.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if e != nil {
		return nil, e
	}
	sort.Strings(matches)
	return matches, nil
}

// GlobAll returns the sorted and unique names of all entries below root that match any of the given
// patterns.
func GlobAll(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	all := make([]string, 0, 16)
	for _, p := range patterns {
		ms, err := Glob(root, p)
		if err != nil {
			return nil, err
		}
		for _, m := range ms {
			if !seen[m] {
				seen[m] = true
				all = append(all, m)
			}
		}
	}
	sort.Strings(all)
	return all, nil
}
