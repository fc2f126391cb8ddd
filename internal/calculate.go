// Package internal contains the path calculation. The calculation runs a fixed sequence of stages where
// each stage consumes the output of the previous ones:
//
// program → symlinks → venv → stdlib → prefix → extensions → exec-prefix → zip path → search path
package internal

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
)

type calculator struct {
	ctx *api.Context
	pf  api.Platform
	dec util.Decoder
	log hclog.Logger
	exp api.Explainer

	program string

	argv0Dir         string
	argv0DirVerified api.Provenance
	venvHome         string

	stdlibDir      string
	stdlibVerified api.Provenance

	prefix         string
	prefixVerified api.Provenance
	prefixFound    bool

	extensions         string
	extensionsVerified api.Provenance

	execPrefix         string
	execPrefixVerified api.Provenance
	execPrefixFound    bool

	zipPath    string
	searchPath string
}

// Calculate performs the path calculation described by the given context and writes the result into the
// given PathConfig. Fields of the PathConfig that are already set are left unchanged and, in the case of
// the executable path and the module search path, used as input instead of being calculated.
//
// The log is used for tracing and for the diagnostics about missing prefixes. A nil log means the default
// hclog logger. The explainer is optional.
//
// The PathConfig is not modified when an error is returned.
func Calculate(ctx *api.Context, pf api.Platform, pc *api.PathConfig, log hclog.Logger, explainer api.Explainer) error {
	if log == nil {
		log = hclog.Default().Named(`getpath`)
	}
	dec, err := util.NewDecoder(ctx.Build.Encoding)
	if err != nil {
		return err
	}
	c := &calculator{ctx: ctx, pf: pf, dec: dec, log: log, exp: explainer}
	if err = c.calculate(pc); err != nil {
		return err
	}
	c.commit(pc)
	return nil
}

func (c *calculator) calculate(pc *api.PathConfig) error {
	c.program = pc.ExecutablePath
	if c.program == `` {
		if err := c.calculateProgram(); err != nil {
			return err
		}
	}

	steps := []func() error{
		c.calculateArgv0Dir,
		c.readVenv,
		c.calculateStdlibDir,
		c.calculatePrefix,
		c.calculateExtensionsDir,
		c.calculateExecPrefix,
		c.calculateZipPath,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	if (!c.prefixFound || !c.execPrefixFound) && c.ctx.Warnings {
		c.log.Warn(fmt.Sprintf(`Consider setting $%s to <stdlib>[%c<exec_prefix>]`, c.ctx.Build.HomeEnv, util.ListSeparator))
	}

	if pc.ModuleSearchPath == `` {
		return c.calculateModuleSearchPath()
	}
	return nil
}

// commit writes the calculated values into all fields of the PathConfig that are not already set
func (c *calculator) commit(pc *api.PathConfig) {
	setIfEmpty := func(field *string, value string) {
		if *field == `` {
			*field = value
		}
	}
	setIfEmpty(&pc.ExecutablePath, c.program)
	if c.prefixFound {
		setIfEmpty(&pc.StdlibDir, c.stdlibDir)
	}
	setIfEmpty(&pc.ExtensionsDir, c.extensions)
	setIfEmpty(&pc.Prefix, c.reportedPrefix())
	setIfEmpty(&pc.ExecPrefix, c.execPrefix)
	setIfEmpty(&pc.ZipPath, c.zipPath)
	setIfEmpty(&pc.ModuleSearchPath, c.searchPath)

	pc.PrefixFound = c.prefixFound
	pc.ExecPrefixFound = c.execPrefixFound
	pc.StdlibProvenance = c.stdlibVerified
	pc.ExtensionsProvenance = c.extensionsVerified
	pc.PrefixProvenance = c.prefixVerified
	pc.ExecPrefixProvenance = c.execPrefixVerified
}

// home returns the explicit home. A runtime override wins over a home found in a venv configuration.
func (c *calculator) home() string {
	if c.ctx.Home != `` {
		return c.ctx.Home
	}
	return c.venvHome
}

func (c *calculator) push(stage string) {
	c.log.Debug(`entering stage`, `stage`, stage)
	if c.exp != nil {
		c.exp.PushStage(stage)
	}
}

func (c *calculator) pop() {
	if c.exp != nil {
		c.exp.Pop()
	}
}

func (c *calculator) text(format string, args ...interface{}) {
	if c.exp != nil {
		c.exp.AcceptText(fmt.Sprintf(format, args...))
	}
}

func (c *calculator) result(name, value string, p api.Provenance) {
	c.log.Info(`resolved`, `name`, name, `value`, value, `provenance`, p.String())
	if c.exp != nil {
		c.exp.AcceptResult(name, value, p)
	}
}

func (c *calculator) probe(kind, path string, test func(string) bool) bool {
	ok := test(path)
	c.log.Debug(`probe`, `kind`, kind, `path`, path, `ok`, ok)
	if c.exp != nil {
		c.exp.AcceptProbe(kind, path, ok)
	}
	return ok
}

func (c *calculator) isFile(path string) bool {
	return c.probe(`file`, path, util.IsFile)
}

func (c *calculator) isExecutable(path string) bool {
	return c.probe(`executable`, path, util.IsExecutable)
}

func (c *calculator) isDir(path string) bool {
	return c.probe(`dir`, path, util.IsDir)
}

// isModuleRoot returns true if the landmark file, or its compiled sibling, is present in the given dir
func (c *calculator) isModuleRoot(dir string) (bool, error) {
	f, err := util.Join(dir, c.ctx.Build.Landmark)
	if err != nil {
		return false, err
	}
	if c.isFile(f) {
		return true, nil
	}
	if c.ctx.Build.BytecodeSuffix == `` {
		return false, nil
	}
	return c.isFile(f + c.ctx.Build.BytecodeSuffix), nil
}
