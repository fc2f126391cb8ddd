package internal

import (
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
)

func (c *calculator) calculateStdlibDir() error {
	c.push(`stdlib`)
	defer c.pop()

	dir, p, err := c.searchForStdlibDir()
	if err != nil {
		return err
	}
	c.stdlibDir = dir
	c.stdlibVerified = p
	if p.WithFile {
		c.argv0DirVerified = c.argv0DirVerified.Merge(api.Provenance{
			Exists: p.Exists, InBuildDir: p.InBuildDir, InSourceTree: p.InSourceTree})
	}
	c.result(`stdlib`, dir, p)
	return nil
}

func (c *calculator) searchForStdlibDir() (string, api.Provenance, error) {
	bc := c.ctx.Build

	// An explicit home short circuits the search
	if home := c.home(); home != `` {
		first, _, _ := util.SplitList(home)
		c.text(`using home '%s'`, first)
		dir, err := util.Join(first, c.ctx.LibPython)
		return dir, api.Provenance{Forced: true, Custom: true}, err
	}

	// Check to see if we are in the build directory
	lm, err := util.Join(c.argv0Dir, bc.BuildLandmark)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	if c.isFile(lm) {
		dir, err := util.JoinAll(c.argv0Dir, bc.VPath, bc.SourceLibDir)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		ok, err := c.isModuleRoot(dir)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		if ok {
			c.text(`executable is in a build tree`)
			return dir, api.Provenance{
				Exists: true, NearExecutable: true, WithFile: true, InSourceTree: true, InBuildDir: true}, nil
		}
	}

	// Search from the executable directory and up
	start, err := util.Absolute(c.argv0Dir, c.ctx.Cwd)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	for dir := start; ; {
		candidate, err := util.Join(dir, c.ctx.LibPython)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		ok, err := c.isModuleRoot(candidate)
		if err != nil {
			return ``, api.Provenance{}, err
		}
		if ok {
			if dir == start {
				return candidate, api.Provenance{Exists: true, NearExecutable: true, WithFile: true}, nil
			}
			return candidate, api.Provenance{Exists: true}, nil
		}
		if dir = util.Reduce(dir); dir == `` {
			break
		}
	}

	// Look at the compiled-in prefix
	dir, err := util.Join(bc.Prefix, c.ctx.LibPython)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	ok, err := c.isModuleRoot(dir)
	if err != nil {
		return ``, api.Provenance{}, err
	}
	if ok {
		return dir, api.Provenance{Exists: true, PrefixMacro: true}, nil
	}
	c.text(`falling back to the compiled-in prefix`)
	return dir, api.Provenance{Default: true, PrefixMacro: true}, nil
}
