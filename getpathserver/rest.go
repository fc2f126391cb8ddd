package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/getpath"
	"github.com/lyraproj/issue/issue"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel   string
	configPath string
	addr       string
	port       int

	// environment replaces the process environment when not nil
	environment []string
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: `Server - Start a getpath REST server`,
		Long: `Server - Start a REST server that calculates path configurations.
  Responds to GET requests on the /paths endpoint`,
		PreRun: initialize,
		Run:    startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug`)
	flags.StringVar(&configPath, `config`, ``, `path to the build configuration file. Overrides <current directory>/getpath.yaml`)
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `getpath`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) {
	e := newServer()
	e.Logger.SetOutput(cmd.OutOrStdout())
	e.Logger.Fatal(e.Start(addr + `:` + strconv.Itoa(port)))
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET(`/paths`, resolvePaths)
	return e
}

// resolvePaths responds with the path configuration for the program given by the "program" query
// parameter. The optional "home" and "path" parameters are the home and search path overrides. The
// "extensions" parameter requests the list of compiled extensions and "explain" a plain text
// explanation.
func resolvePaths(c echo.Context) error {
	program := c.QueryParam(`program`)
	if program == `` {
		return c.JSON(http.StatusBadRequest, map[string]string{`message`: `missing required parameter 'program'`})
	}

	options := map[string]interface{}{
		api.GetpathProgramName: program,
		api.GetpathHome:        c.QueryParam(`home`),
		api.GetpathSearchPath:  c.QueryParam(`path`),
		api.GetpathWarnings:    true}
	if configPath != `` {
		options[api.GetpathConfig] = configPath
	}
	if environment != nil {
		options[api.GetpathEnvironment] = environment
	}

	opts := getpath.CommandOptions{
		RenderAs:       `json`,
		Explain:        queryBool(c, `explain`),
		ListExtensions: queryBool(c, `extensions`)}

	out := bytes.Buffer{}
	log := hclog.Default().With(`program`, program)
	if err := getpath.ResolveAndRender(options, &opts, log, &out); err != nil {
		if rp, ok := err.(issue.Reported); ok {
			return c.JSON(http.StatusBadRequest, map[string]string{`message`: rp.Error()})
		}
		return err
	}
	if opts.Explain {
		return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, out.Bytes())
	}
	return c.JSONBlob(http.StatusOK, out.Bytes())
}

func queryBool(c echo.Context, name string) bool {
	b, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && b
}
