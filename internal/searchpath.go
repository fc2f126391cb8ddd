package internal

import (
	"strings"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
	"github.com/lyraproj/issue/issue"
)

// BuildSearchPath assembles the module search path from, in order, the override (when not empty), the zip
// path, each entry of the default search path, and the extensions directory. Relative entries are made
// relative to the stdlib directory. Default entries that contain list separators are split into several
// entries. Entries are neither deduplicated nor reordered.
//
// The exact length is computed up front and a GETPATH_SEARCH_PATH_TOO_LONG error is returned, before
// anything is assembled, when it exceeds MaxSearchPathLen.
func BuildSearchPath(override, zip, stdlib string, defaults []string, ext string) (string, error) {
	entries := make([]string, 0, len(defaults))
	for _, d := range defaults {
		entries = append(entries, strings.Split(d, string(util.ListSeparator))...)
	}

	// Relative entries are prefixed by the stdlib dir, and by a separator unless the stdlib dir already
	// ends with one or the entry is empty.
	needsSep := func(e string) bool {
		return e != `` && !(stdlib != `` && stdlib[len(stdlib)-1] == util.Separator)
	}

	size := 0
	if override != `` {
		size += len(override) + 1
	}
	size += len(zip) + 1
	for _, e := range entries {
		if !util.IsAbs(e) {
			size += len(stdlib)
			if needsSep(e) {
				size++
			}
		}
		size += len(e) + 1
	}
	size += len(ext)
	if size > util.MaxSearchPathLen {
		return ``, api.Error(api.SearchPathTooLong, issue.H{`size`: size, `max`: util.MaxSearchPathLen})
	}

	var b strings.Builder
	b.Grow(size)
	if override != `` {
		b.WriteString(override)
		b.WriteByte(util.ListSeparator)
	}
	b.WriteString(zip)
	b.WriteByte(util.ListSeparator)
	for _, e := range entries {
		if !util.IsAbs(e) {
			b.WriteString(stdlib)
			if needsSep(e) {
				b.WriteByte(util.Separator)
			}
		}
		b.WriteString(e)
		b.WriteByte(util.ListSeparator)
	}
	b.WriteString(ext)
	return b.String(), nil
}

func (c *calculator) calculateModuleSearchPath() error {
	c.push(`module search path`)
	defer c.pop()

	sp, err := BuildSearchPath(c.ctx.SearchPathEnv, c.zipPath, c.stdlibDir, c.ctx.Build.SearchPath, c.extensions)
	if err != nil {
		return err
	}
	c.searchPath = sp
	c.result(`module search path`, sp, api.Provenance{})
	return nil
}
