package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/getpath/cli"
)

func main() {
	cmd := cli.NewCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
