package internal

import (
	"io"
	"os"
	"strings"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
)

func (c *calculator) calculateExtensionsDir() error {
	c.push(`extensions`)
	defer c.pop()

	dir, p, err := c.searchForExtensionsDir()
	if err != nil {
		return err
	}
	c.extensions = dir
	c.extensionsVerified = p
	if p.WithFile {
		c.argv0DirVerified = c.argv0DirVerified.Merge(api.Provenance{Exists: p.Exists})
	}
	c.result(`extensions`, dir, p)
	return nil
}

func (c *calculator) searchForExtensionsDir() (string, api.Provenance, error) {
	bc := c.ctx.Build

	if home := c.home(); home != `` {
		_, rest, ok := util.SplitList(home)
		if !ok {
			rest = home
		}
		c.text(`using home '%s'`, rest)
		dir, err := util.JoinAll(rest, c.ctx.LibPython, bc.ExtensionsDirName)
		return dir, api.Provenance{Forced: true, Custom: true}, err
	}

	// A build directory file beside the executable names the extensions directory relative to the
	// executable directory
	bdf, err := util.Join(c.argv0Dir, bc.BuildDirFile)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	if c.isFile(bdf) {
		rel, ok, err := c.readBuildDirFile(bdf)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		if ok {
			c.text(`'%s' names the extensions directory '%s'`, bdf, rel)
			dir, err := util.Join(c.argv0Dir, rel)
			return dir, api.Provenance{InBuildDir: true, Custom: true}, err
		}
	}

	start, err := util.Absolute(c.argv0Dir, c.ctx.Cwd)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	for dir := start; ; {
		candidate, err := util.JoinAll(dir, c.ctx.LibPython, bc.ExtensionsDirName)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		if c.isDir(candidate) {
			if dir == start {
				return candidate, api.Provenance{Exists: true, NearExecutable: true, WithFile: true}, nil
			}
			return candidate, api.Provenance{Exists: true}, nil
		}
		if dir = util.Reduce(dir); dir == `` {
			break
		}
	}

	dir, err := util.JoinAll(bc.ExecPrefix, c.ctx.LibPython, bc.ExtensionsDirName)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	if c.isDir(dir) {
		return dir, api.Provenance{Exists: true, ExecPrefixMacro: true}, nil
	}
	c.text(`falling back to the compiled-in exec-prefix`)
	return dir, api.Provenance{Default: true, ExecPrefixMacro: true}, nil
}

// readBuildDirFile reads at most MaxPathLen bytes from the given file and returns its decoded first line.
// The second return value is false when the file could not be read.
func (c *calculator) readBuildDirFile(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return ``, false, nil
	}
	defer f.Close()

	buf := make([]byte, util.MaxPathLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		c.log.Debug(`unable to read build directory file`, `path`, path, `error`, err.Error())
		return ``, false, nil
	}
	content, err := c.dec.Decode(path, buf[:n])
	if err != nil {
		return ``, false, err
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	return strings.TrimRight(content, "\r"), true, nil
}
