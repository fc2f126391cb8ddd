package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/config"
	"github.com/lyraproj/getpath/getpath"
	"github.com/lyraproj/getpath/util"
	"github.com/lyraproj/issue/issue"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

var (
	cmdOpts    getpath.CommandOptions
	logLevel   string
	configPath string
	program    string
	home       string
	searchPath string
	warnings   bool
	environ    []string
)

// NewCommand creates the getpath Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getpath",
		Short: `Getpath - Calculate the runtime path configuration`,
		Long: `Getpath - Calculate the prefix, exec-prefix, library directories, and module search path of a runtime
    installation from the location of its executable.`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdResolve,
		Args:    cobra.NoArgs,

		// Errors are printed by the caller
		SilenceErrors: true}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `warn`,
		`error/warn/info/debug`)
	flags.StringVar(&configPath, `config`, ``,
		`path to the build configuration file. Overrides <current directory>/`+config.FileName)
	flags.StringVar(&program, `program`, ``,
		`the invocation name of the program to resolve for. Defaults to this executable`)
	flags.StringVar(&home, `home`, ``,
		`explicit home, <stdlib home>[`+string(util.ListSeparator)+`<extensions home>]. Overrides the home environment variable`)
	flags.StringVar(&searchPath, `path`, ``,
		`search path override. Overrides the search path environment variable`)
	flags.BoolVar(&warnings, `warnings`, true,
		`emit warnings when the prefixes cannot be found`)
	flags.StringArrayVar(&environ, `env`, nil,
		`a KEY=value entry. When given, the entries replace the process environment`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml/env: Specify the output format of the results; s means plain key=value text`)
	flags.BoolVar(&cmdOpts.Explain, `explain`, false,
		`Explain the details of how the paths were calculated`)
	flags.BoolVar(&cmdOpts.ListExtensions, `list-extensions`, false,
		`list the compiled extensions found in the extensions directory`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `getpath`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdResolve(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	log := hclog.New(&hclog.LoggerOptions{
		Name:   `getpath`,
		Level:  hclog.LevelFromString(logLevel),
		Output: cmd.ErrOrStderr()})

	options := map[string]interface{}{
		api.GetpathProgramName: program,
		api.GetpathHome:        home,
		api.GetpathSearchPath:  searchPath,
		api.GetpathWarnings:    warnings}
	if configPath != `` {
		options[api.GetpathConfig] = configPath
	}
	if environ != nil {
		options[api.GetpathEnvironment] = environ
	}
	return getpath.ResolveAndRender(options, &cmdOpts, log, cmd.OutOrStdout())
}
