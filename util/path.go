// Package util contains the path primitives, filesystem probes, and decoding helpers used by the path
// calculation.
package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/issue/issue"
)

// MaxPathLen is the maximum length of any path produced by Join or Absolute
const MaxPathLen = 4096

// MaxSearchPathLen is the maximum length of an assembled module search path
const MaxSearchPathLen = 64 * MaxPathLen

// Separator is the platform path separator
const Separator = os.PathSeparator

// ListSeparator is the platform delimiter used in lists of paths such as PATH
const ListSeparator = os.PathListSeparator

// IsAbs returns true if the given path is absolute
func IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

// Join returns seg when it is absolute. Otherwise it returns base followed by a separator and seg. The
// separator is omitted when base is empty or already ends with a separator. An error is returned when
// the result would exceed MaxPathLen.
func Join(base, seg string) (string, error) {
	var r string
	switch {
	case IsAbs(seg):
		r = seg
	case base == `` || base[len(base)-1] == Separator:
		r = base + seg
	default:
		r = base + string(Separator) + seg
	}
	return checkLen(r)
}

// JoinAll joins all segments onto base using Join.
func JoinAll(base string, segs ...string) (string, error) {
	var err error
	for _, s := range segs {
		if base, err = Join(base, s); err != nil {
			break
		}
	}
	return base, err
}

// Reduce removes the last separator of the given path and everything after it. A path without a separator
// is reduced to the empty string. Note that this means that the root directory is also reduced to the
// empty string. Callers that need a root use RootIfEmpty.
func Reduce(path string) string {
	if i := strings.LastIndexByte(path, Separator); i >= 0 {
		return path[:i]
	}
	return ``
}

// RootIfEmpty returns the root directory when the given path is empty and the path otherwise.
func RootIfEmpty(path string) string {
	if path == `` {
		return string(Separator)
	}
	return path
}

// Absolute returns the given path if it is absolute. Otherwise the path, stripped from a leading "./", is
// joined with cwd. A relative path is returned unchanged when cwd is empty.
func Absolute(path, cwd string) (string, error) {
	if IsAbs(path) || cwd == `` {
		return checkLen(path)
	}
	if len(path) > 1 && path[0] == '.' && path[1] == Separator {
		path = path[2:]
	}
	return Join(cwd, path)
}

// SplitList splits the given string on the first ListSeparator. The second return value is false when no
// separator was found.
func SplitList(s string) (first, rest string, ok bool) {
	if i := strings.IndexByte(s, ListSeparator); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, ``, false
}

func checkLen(path string) (string, error) {
	if len(path) > MaxPathLen {
		return ``, api.Error(api.PathTooLong, issue.H{`path`: path})
	}
	return path, nil
}
