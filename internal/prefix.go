package internal

import (
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
)

// calculatePrefix derives the prefix from the stdlib directory, i.e. <prefix>/<platlibdir>/<lang><version>
func (c *calculator) calculatePrefix() error {
	c.push(`prefix`)
	defer c.pop()

	c.prefix = util.RootIfEmpty(util.Reduce(util.Reduce(c.stdlibDir)))
	c.prefixVerified = c.stdlibVerified
	c.prefixFound = c.prefixVerified.Found()
	if !c.prefixFound && c.ctx.Warnings {
		c.log.Warn(`Could not find platform independent libraries <prefix>`, `prefix`, c.prefix)
	}
	c.result(`prefix`, c.reportedPrefix(), c.prefixVerified)
	return nil
}

// reportedPrefix returns the prefix that is reported externally. A source tree has no meaningful prefix so
// the compiled-in prefix is reported instead.
func (c *calculator) reportedPrefix() string {
	if c.stdlibVerified.InSourceTree {
		return c.ctx.Build.Prefix
	}
	return c.prefix
}

// calculateExecPrefix derives the exec-prefix from the extensions directory, i.e.
// <exec_prefix>/<platlibdir>/<lang><version>/<extensions>
func (c *calculator) calculateExecPrefix() error {
	c.push(`exec-prefix`)
	defer c.pop()

	if c.extensionsVerified.InBuildDir {
		c.text(`extensions are in a build tree, using the compiled-in exec-prefix`)
		c.execPrefix = c.ctx.Build.ExecPrefix
		c.execPrefixVerified = api.Provenance{Default: true, ExecPrefixMacro: true}
		c.execPrefixFound = true
	} else {
		c.execPrefix = util.RootIfEmpty(util.Reduce(util.Reduce(util.Reduce(c.extensions))))
		c.execPrefixVerified = c.extensionsVerified
		c.execPrefixFound = c.execPrefixVerified.Found()
		if !c.execPrefixFound && c.ctx.Warnings {
			c.log.Warn(`Could not find platform dependent libraries <exec_prefix>`, `exec_prefix`, c.execPrefix)
		}
	}
	c.result(`exec-prefix`, c.execPrefix, c.execPrefixVerified)
	return nil
}

func (c *calculator) calculateZipPath() error {
	c.push(`zip path`)
	defer c.pop()

	zip, err := util.JoinAll(c.reportedPrefix(), c.ctx.Build.PlatLibDir, c.ctx.Build.ZipName())
	if err != nil {
		return err
	}
	c.zipPath = zip
	c.result(`zip path`, zip, api.Provenance{})
	return nil
}
