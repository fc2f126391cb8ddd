// Package getpath contains the functions to use when using the path calculation as a library.
package getpath

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/config"
	"github.com/lyraproj/getpath/explain"
	"github.com/lyraproj/getpath/internal"
	"github.com/lyraproj/getpath/platform"
	"github.com/lyraproj/getpath/util"
)

// A CommandOptions contains the options given by to the CLI command or a REST invocation that control
// what is produced from a path calculation.
type CommandOptions struct {
	// RenderAs is the name of the desired rendering
	RenderAs string

	// Explain should be set to true to explain the progress of the calculation instead of rendering the
	// result
	Explain bool

	// ListExtensions should be set to true to render the compiled extensions found in the resolved
	// extensions directory instead of the path configuration
	ListExtensions bool
}

// NewBuildConfig returns the build configuration selected by the given options. A file given with the
// api.GetpathConfig key must exist. Otherwise, a configuration file in the api.GetpathRoot directory (or
// the current directory) is used if present and the compiled-in constants if not.
func NewBuildConfig(options map[string]interface{}) (*api.BuildConfig, error) {
	if cfgPath := stringOption(options, api.GetpathConfig); cfgPath != `` {
		return config.Load(cfgPath)
	}
	root := stringOption(options, api.GetpathRoot)
	if root == `` {
		root = `.`
	}
	return config.New(config.Find(root))
}

// Resolve performs a path calculation for the given build configuration. The runtime inputs are taken from
// the options map using the api.Getpath... keys. When no api.GetpathProgramName is given, the name of the
// running program is used and the platform may replace it with the path of the running executable.
//
// The log and the explainer are both optional.
func Resolve(bc *api.BuildConfig, options map[string]interface{}, log hclog.Logger, explainer api.Explainer) (*api.PathConfig, error) {
	pf := platform.New()
	program := stringOption(options, api.GetpathProgramName)
	if program == `` {
		program = os.Args[0]
	} else {
		pf = platform.WithoutHint(pf)
	}

	opts := &config.Options{
		ProgramName: program,
		Home:        stringOption(options, api.GetpathHome),
		SearchPath:  stringOption(options, api.GetpathSearchPath),
		Warnings:    boolOption(options, api.GetpathWarnings),
		Environment: stringsOption(options, api.GetpathEnvironment)}

	ctx, err := config.NewContext(bc, opts)
	if err != nil {
		return nil, err
	}
	pc := &api.PathConfig{}
	if err = internal.Calculate(ctx, pf, pc, log, explainer); err != nil {
		return nil, err
	}
	return pc, nil
}

// ListExtensions returns the sorted paths of all files in the given extensions directory that match one of
// the given glob patterns. Nothing is loaded.
func ListExtensions(dir string, patterns []string) ([]string, error) {
	return util.GlobAll(dir, patterns)
}

// ResolveAndRender performs a path calculation using the given options and renders the result on the given
// io.Writer in accordance with the command options.
func ResolveAndRender(options map[string]interface{}, opts *CommandOptions, log hclog.Logger, out io.Writer) error {
	bc, err := NewBuildConfig(options)
	if err != nil {
		return err
	}

	var explainer api.Explainer
	if opts.Explain {
		explainer = explain.NewExplainer()
	}

	pc, err := Resolve(bc, options, log, explainer)
	if explainer != nil {
		// The explanation is useful also when the calculation failed
		if _, werr := io.WriteString(out, explainer.String()+"\n"); werr != nil && err == nil {
			err = werr
		}
		return err
	}
	if err != nil {
		return err
	}

	renderAs := YAML
	if opts.RenderAs != `` {
		renderAs = RenderName(opts.RenderAs)
	}

	if opts.ListExtensions {
		exts, err := ListExtensions(pc.ExtensionsDir, bc.ExtensionPatterns)
		if err != nil {
			return err
		}
		return RenderList(renderAs, exts, out)
	}
	return Render(renderAs, pc, out)
}

func stringOption(options map[string]interface{}, key string) string {
	if s, ok := options[key].(string); ok {
		return s
	}
	return ``
}

func boolOption(options map[string]interface{}, key string) bool {
	switch v := options[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, `true`)
	}
	return false
}

func stringsOption(options map[string]interface{}, key string) []string {
	if ss, ok := options[key].([]string); ok {
		return ss
	}
	return nil
}
