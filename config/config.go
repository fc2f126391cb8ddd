// Package config contains the compiled-in build constants and the code that loads a build configuration
// and creates the context for a path calculation
package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/issue/issue"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the default file name for the build configuration file.
const FileName = `getpath.yaml`

// TomlFileName is the alternative file name for a build configuration file in TOML format.
const TomlFileName = `getpath.toml`

var versionPattern = regexp.MustCompile(`\A[0-9]+\.[0-9]+\z`)

// Default returns a new BuildConfig that holds the compiled-in constants.
func Default() *api.BuildConfig {
	return &api.BuildConfig{
		Language:          `python`,
		Version:           `3.9`,
		Prefix:            `/usr/local`,
		ExecPrefix:        `/usr/local`,
		VPath:             `..`,
		PlatLibDir:        `lib`,
		SearchPath:        []string{``},
		Landmark:          `os.py`,
		BytecodeSuffix:    `c`,
		BuildLandmark:     `Modules/Setup.local`,
		BuildDirFile:      `pybuilddir.txt`,
		SourceLibDir:      `Lib`,
		ExtensionsDirName: `lib-dynload`,
		VenvFile:          `pyvenv.cfg`,
		HomeEnv:           `PYTHONHOME`,
		PathEnv:           `PYTHONPATH`,
		Encoding:          `utf-8`,
		ExtensionPatterns: []string{`*.so`}}
}

// Find returns the path of the build configuration file in the given directory. The YAML file takes
// precedence over the TOML file. An empty string is returned when neither file exists.
func Find(dir string) string {
	for _, n := range []string{FileName, TomlFileName} {
		p := filepath.Join(dir, n)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ``
}

// New returns the BuildConfig read from the given path. If the path is empty or does not exist, the
// compiled-in defaults are returned.
func New(configPath string) (*api.BuildConfig, error) {
	if configPath == `` {
		return Default(), nil
	}
	bc, err := Load(configPath)
	if err != nil && os.IsNotExist(errors.Cause(err)) {
		return Default(), nil
	}
	return bc, err
}

// Load reads the build configuration file at the given path and overlays its values on the compiled-in
// defaults. The format is determined by the file extension.
func Load(configPath string) (*api.BuildConfig, error) {
	content, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, `unable to read build configuration '%s'`, configPath)
	}

	bc := Default()
	switch strings.ToLower(filepath.Ext(configPath)) {
	case `.yaml`, `.yml`:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err = dec.Decode(bc); err != nil && err != io.EOF {
			return nil, invalid(configPath, err.Error())
		}
	case `.toml`:
		if err = toml.Unmarshal(content, bc); err != nil {
			return nil, invalid(configPath, err.Error())
		}
	default:
		return nil, api.Error(api.UnsupportedConfigExt, issue.H{`path`: configPath})
	}

	if err = Validate(bc); err != nil {
		return nil, invalid(configPath, err.Error())
	}
	return bc, nil
}

// Validate checks that the given BuildConfig contains everything that a path calculation needs.
func Validate(bc *api.BuildConfig) error {
	required := []struct {
		name  string
		value string
	}{
		{`language`, bc.Language},
		{`version`, bc.Version},
		{`prefix`, bc.Prefix},
		{`exec_prefix`, bc.ExecPrefix},
		{`platlibdir`, bc.PlatLibDir},
		{`landmark`, bc.Landmark},
		{`extensions_dir_name`, bc.ExtensionsDirName},
		{`home_env`, bc.HomeEnv},
		{`path_env`, bc.PathEnv},
	}
	for _, r := range required {
		if r.value == `` {
			return errors.Errorf(`'%s' must not be empty`, r.name)
		}
	}
	if !versionPattern.MatchString(bc.Version) {
		return errors.Errorf(`'version' must be in the form <major>.<minor>, got '%s'`, bc.Version)
	}
	return nil
}

func invalid(path, detail string) error {
	return api.Error(api.InvalidBuildConfig, issue.H{`path`: path, `detail`: detail})
}
