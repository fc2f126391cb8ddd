package internal

import (
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
	"github.com/lyraproj/issue/issue"
)

// MaxSymlinkHops is the number of symbolic links that can be followed before the chain is considered to be
// a cycle. It is the Linux kernel 4.2 limit.
const MaxSymlinkHops = 40

// ResolveSymlinks follows the chain of symbolic links starting at the given path and returns the first path
// that isn't a link. A relative link target is resolved against the directory of the link. A failure to
// read a link ends the chain without error.
func ResolveSymlinks(pf api.Platform, path string) (string, error) {
	hops := 0
	for {
		target, err := pf.ReadLink(path)
		if err != nil {
			break
		}

		// Join replaces the directory when the target is absolute
		if path, err = util.Join(util.Reduce(path), target); err != nil {
			return ``, err
		}

		hops++
		if hops >= MaxSymlinkHops {
			return ``, api.Error(api.LinkCycle, issue.H{`max`: MaxSymlinkHops, `path`: path})
		}
	}
	return path, nil
}

// calculateArgv0Dir resolves symbolic links of the executable and sets the directory that the searches
// start from.
func (c *calculator) calculateArgv0Dir() error {
	c.push(`executable directory`)
	defer c.pop()

	resolved, err := ResolveSymlinks(c.pf, c.program)
	if err != nil {
		return err
	}
	if resolved != c.program {
		c.text(`'%s' is a link to '%s'`, c.program, resolved)
	}
	c.argv0Dir = util.Reduce(resolved)
	c.argv0DirVerified = api.Provenance{NearExecutable: true, WithFile: true}
	c.result(`executable directory`, c.argv0Dir, c.argv0DirVerified)
	return nil
}
