package internal

import (
	"strings"

	"github.com/lyraproj/getpath/util"
)

// calculateProgram determines the absolute path of the executable from the program name. The result is an
// empty string when nothing could be found.
func (c *calculator) calculateProgram() error {
	c.push(`program`)
	defer c.pop()

	program, err := c.findProgram()
	if err != nil || program == `` {
		if err == nil {
			c.text(`executable not found, continuing with an empty executable path`)
		}
		return err
	}

	if !util.IsAbs(program) {
		if program, err = util.Absolute(program, c.ctx.Cwd); err != nil {
			return err
		}
	}

	if sfx := c.pf.ExecutableSuffix(); sfx != `` {
		if program, err = c.addExecutableSuffix(program, sfx); err != nil {
			return err
		}
	}
	c.program = program
	c.text(`executable is '%s'`, program)
	return nil
}

func (c *calculator) findProgram() (string, error) {
	name := c.ctx.ProgramName

	// A name containing a separator is used as is. Otherwise, it must have been found by the shell using PATH
	// since there is no other way to find a directory to start the search from.
	if strings.IndexByte(name, util.Separator) >= 0 {
		c.text(`program name '%s' contains a path separator`, name)
		return name, nil
	}

	if hint, ok := c.pf.ExecutableHint(); ok && util.IsAbs(hint) {
		c.text(`using executable path reported by the platform`)
		return hint, nil
	}

	if !c.ctx.PathEnvSet || name == `` {
		return ``, nil
	}
	return c.which(name)
}

// which searches the directories of PATH for an executable file with the given name. Empty and relative
// components are relative to the current directory.
func (c *calculator) which(name string) (string, error) {
	for _, dir := range strings.Split(c.ctx.PathEnv, string(util.ListSeparator)) {
		candidate, err := util.Join(dir, name)
		if err == nil && !util.IsAbs(candidate) {
			candidate, err = util.Absolute(candidate, c.ctx.Cwd)
		}
		if err != nil {
			// Too long to exist
			continue
		}
		if c.isExecutable(candidate) {
			return candidate, nil
		}
	}
	return ``, nil
}

// addExecutableSuffix appends the suffix to the program unless it is already present. The suffixed name is
// only used when it denotes an executable file.
func (c *calculator) addExecutableSuffix(program, sfx string) (string, error) {
	if n := len(program) - len(sfx); n >= 0 && strings.EqualFold(program[n:], sfx) {
		return program, nil
	}
	candidate, err := util.Join(``, program+sfx)
	if err != nil {
		return ``, err
	}
	if c.isExecutable(candidate) {
		return candidate, nil
	}
	return program, nil
}
