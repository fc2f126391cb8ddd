package api

// A PathConfig holds the result of a path calculation. A field that is already set when the calculation
// starts is never overwritten.
type PathConfig struct {
	// ExecutablePath is the absolute path of the executable or empty if it could not be determined
	ExecutablePath string

	// StdlibDir is the standard library directory. It is only set when the prefix was found.
	StdlibDir string

	// ExtensionsDir is the directory holding compiled extensions
	ExtensionsDir string

	// Prefix is the externally reported installation prefix
	Prefix string

	// ExecPrefix is the externally reported platform dependent installation prefix
	ExecPrefix string

	// ZipPath is the path of the bundled library archive
	ZipPath string

	// ModuleSearchPath is the delimited module search path
	ModuleSearchPath string

	// PrefixFound is true when the prefix was confirmed or forced
	PrefixFound bool

	// ExecPrefixFound is true when the exec-prefix was confirmed or forced
	ExecPrefixFound bool

	// StdlibProvenance tells how the standard library directory was located
	StdlibProvenance Provenance

	// ExtensionsProvenance tells how the extensions directory was located
	ExtensionsProvenance Provenance

	// PrefixProvenance tells how the prefix was determined
	PrefixProvenance Provenance

	// ExecPrefixProvenance tells how the exec-prefix was determined
	ExecPrefixProvenance Provenance
}

// Reset clears all fields so that the receiver can be used for a new calculation.
func (pc *PathConfig) Reset() {
	*pc = PathConfig{}
}
