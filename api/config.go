package api

import (
	"strings"
)

// A BuildConfig holds the constants that are compiled into the runtime. They can be overridden by a
// build configuration file.
type BuildConfig struct {
	// Language is the name of the language, used when forming the library root and the zip name
	Language string `yaml:"language" toml:"language"`

	// Version is the language version tag in the form <major>.<minor>
	Version string `yaml:"version" toml:"version"`

	// Prefix is the compiled-in installation prefix
	Prefix string `yaml:"prefix" toml:"prefix"`

	// ExecPrefix is the compiled-in platform dependent installation prefix
	ExecPrefix string `yaml:"exec_prefix" toml:"exec_prefix"`

	// VPath is the source root relative to the build directory. It is only used for build tree detection.
	VPath string `yaml:"vpath" toml:"vpath"`

	// PlatLibDir is the name of the platform library directory, typically "lib" or "lib64"
	PlatLibDir string `yaml:"platlibdir" toml:"platlibdir"`

	// SearchPath is the default module search path. Relative entries are relative to the stdlib directory.
	SearchPath []string `yaml:"search_path" toml:"search_path"`

	// Landmark is the file that marks the root of the standard library
	Landmark string `yaml:"landmark" toml:"landmark"`

	// BytecodeSuffix is appended to the Landmark to form the name of its compiled sibling
	BytecodeSuffix string `yaml:"bytecode_suffix" toml:"bytecode_suffix"`

	// BuildLandmark is the file beside the executable that signals a build tree
	BuildLandmark string `yaml:"build_landmark" toml:"build_landmark"`

	// BuildDirFile is the file beside the executable that holds the relative path to the extensions
	BuildDirFile string `yaml:"build_dir_file" toml:"build_dir_file"`

	// SourceLibDir is the name of the stdlib directory in a source tree
	SourceLibDir string `yaml:"source_lib_dir" toml:"source_lib_dir"`

	// ExtensionsDirName is the name of the directory that holds compiled extensions
	ExtensionsDirName string `yaml:"extensions_dir_name" toml:"extensions_dir_name"`

	// VenvFile is the name of the virtual environment configuration file
	VenvFile string `yaml:"venv_file" toml:"venv_file"`

	// HomeEnv is the name of the home override environment variable
	HomeEnv string `yaml:"home_env" toml:"home_env"`

	// PathEnv is the name of the search path override environment variable
	PathEnv string `yaml:"path_env" toml:"path_env"`

	// Encoding is the name of the encoding used for environment values and marker file contents
	Encoding string `yaml:"encoding" toml:"encoding"`

	// ExtensionPatterns are glob patterns matching compiled extensions in the extensions directory
	ExtensionPatterns []string `yaml:"extension_patterns" toml:"extension_patterns"`
}

// VersionDigits returns the version tag without its dots, i.e. <major><minor>
func (bc *BuildConfig) VersionDigits() string {
	parts := strings.Split(bc.Version, `.`)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ``)
}

// ZipName returns the name of the bundled library archive, e.g. "python39.zip"
func (bc *BuildConfig) ZipName() string {
	return bc.Language + bc.VersionDigits() + `.zip`
}

// A Context is the immutable input of one path calculation. It is constructed once from the BuildConfig,
// a snapshot of the environment, and runtime options.
type Context struct {
	// Build holds the compile-time constants
	Build *BuildConfig

	// ProgramName is the invocation name of the program
	ProgramName string

	// PathEnv is the value of the PATH environment variable
	PathEnv string

	// PathEnvSet is true when PATH is present in the environment, even when its value is empty
	PathEnvSet bool

	// Home is the runtime home override. It is either a single directory or a stdlib home and an
	// extensions home joined by the list delimiter.
	Home string

	// SearchPathEnv is the runtime search path override that is prepended to the module search path
	SearchPathEnv string

	// Warnings controls whether diagnostics about missing prefixes are emitted
	Warnings bool

	// Cwd is the current working directory or empty if it could not be determined
	Cwd string

	// LibPython is the library root under a prefix, i.e. <platlibdir>/<language><version>
	LibPython string
}
