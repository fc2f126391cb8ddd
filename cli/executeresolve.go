package cli

import (
	"bytes"

	"github.com/lyraproj/getpath/getpath"
)

// ExecuteResolve performs a path calculation using the CLI and returns what was written on stdout and
// stderr. It's primarily intended for testing purposes
func ExecuteResolve(args ...string) (output []byte, log []byte, err error) {
	cmdOpts = getpath.CommandOptions{}
	logLevel = ``
	configPath = ``
	program = ``
	home = ``
	searchPath = ``
	warnings = true
	environ = nil

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), errBuf.Bytes(), err
}
