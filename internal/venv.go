package internal

import (
	"io/ioutil"
	"strings"

	"github.com/lyraproj/getpath/util"
)

// FindEnvConfigValue searches the content of a venv configuration file for the value of the given key. Lines
// starting with '#' are comments. A line matches when its first whitespace delimited token is the key and
// its second token is exactly "=". The value is the remainder of the line with surrounding whitespace
// removed. An empty value is not a match.
func FindEnvConfigValue(content, key string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, `#`) {
			continue
		}
		rest := strings.TrimLeft(line, " \t\r\f\v")
		tok, rest := nextToken(rest)
		if tok != key {
			continue
		}
		tok, rest = nextToken(rest)
		if tok != `=` {
			continue
		}
		if value := strings.TrimSpace(rest); value != `` {
			return value, true
		}
	}
	return ``, false
}

func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\r\f\v")
	if i := strings.IndexAny(s, " \t\r\f\v"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ``
}

// readVenv looks for a venv configuration beside the executable and in its parent directory. A home found
// there replaces the executable directory as the starting point of the searches and is used as the home
// unless a runtime home is given.
func (c *calculator) readVenv() error {
	c.push(`venv`)
	defer c.pop()

	cfgPath, err := util.Join(c.argv0Dir, c.ctx.Build.VenvFile)
	if err != nil {
		return err
	}
	if !c.isFile(cfgPath) {
		if cfgPath, err = util.Join(util.Reduce(c.argv0Dir), c.ctx.Build.VenvFile); err != nil {
			return err
		}
		if !c.isFile(cfgPath) {
			c.text(`no venv configuration found`)
			return nil
		}
	}

	raw, err := ioutil.ReadFile(cfgPath)
	if err != nil {
		// Vanished or unreadable since the probe. Treated as absent.
		c.log.Debug(`unable to read venv configuration`, `path`, cfgPath, `error`, err)
		return nil
	}
	content, err := c.dec.Decode(cfgPath, raw)
	if err != nil {
		return err
	}

	home, ok := FindEnvConfigValue(content, `home`)
	if !ok {
		c.text(`'%s' has no home`, cfgPath)
		return nil
	}
	c.text(`'%s' sets home to '%s'`, cfgPath, home)
	c.venvHome = home
	c.argv0Dir = home
	c.result(`executable directory`, c.argv0Dir, c.argv0DirVerified)
	return nil
}
