package config

import (
	"os"
	"strings"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
)

// Options are the runtime inputs of a path calculation that don't come from the build configuration.
type Options struct {
	// ProgramName is the invocation name of the program, i.e. its argv[0]
	ProgramName string

	// Home is an explicit home override. It takes precedence over the home environment variable.
	Home string

	// SearchPath is an explicit search path override. It takes precedence over the search path
	// environment variable.
	SearchPath string

	// Warnings enables diagnostics about missing prefixes
	Warnings bool

	// Environment is the environment in the form of KEY=value entries. The process environment is used
	// when it is nil.
	Environment []string

	// Cwd is the current working directory. The process working directory is used when it is empty.
	Cwd string
}

// Environment is an immutable snapshot of environment variables
type Environment map[string]string

// NewEnvironment creates a snapshot from a slice of KEY=value entries. Entries without '=' are ignored.
// When a key occurs more than once, the last entry wins.
func NewEnvironment(environ []string) Environment {
	env := make(Environment, len(environ))
	for _, e := range environ {
		if i := strings.IndexByte(e, '='); i > 0 {
			env[e[:i]] = e[i+1:]
		}
	}
	return env
}

// Lookup returns the value of the given variable. Variables with an empty value are considered unset.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok && v != ``
}

// NewContext creates the api.Context for a path calculation. All environment values are read and decoded
// here, once. The returned context is not modified by the calculation.
func NewContext(bc *api.BuildConfig, opts *Options) (*api.Context, error) {
	if opts == nil {
		opts = &Options{}
	}
	dec, err := util.NewDecoder(bc.Encoding)
	if err != nil {
		return nil, err
	}

	environ := opts.Environment
	if environ == nil {
		environ = os.Environ()
	}
	env := NewEnvironment(environ)

	ctx := &api.Context{Build: bc, Warnings: opts.Warnings}

	decodeEnv := func(name string, dflt string) (string, error) {
		if dflt != `` {
			return dec.DecodeString(`option for `+name, dflt)
		}
		if v, ok := env.Lookup(name); ok {
			return dec.DecodeString(name+` environment variable`, v)
		}
		return ``, nil
	}

	if ctx.ProgramName, err = dec.DecodeString(`program name`, opts.ProgramName); err != nil {
		return nil, err
	}
	// An empty PATH is still a search path with one component, the current directory
	if v, ok := env[`PATH`]; ok {
		if ctx.PathEnv, err = dec.DecodeString(`PATH environment variable`, v); err != nil {
			return nil, err
		}
		ctx.PathEnvSet = true
	}
	if ctx.Home, err = decodeEnv(bc.HomeEnv, opts.Home); err != nil {
		return nil, err
	}
	if ctx.SearchPathEnv, err = decodeEnv(bc.PathEnv, opts.SearchPath); err != nil {
		return nil, err
	}

	ctx.Cwd = opts.Cwd
	if ctx.Cwd == `` {
		if wd, err := os.Getwd(); err == nil {
			ctx.Cwd = wd
		}
	}

	if ctx.LibPython, err = util.Join(bc.PlatLibDir, bc.Language+bc.Version); err != nil {
		return nil, err
	}
	return ctx, nil
}
