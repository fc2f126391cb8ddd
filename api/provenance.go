package api

import "strings"

// Provenance records the facts that were established about how a directory was located. Later stages use
// these facts to decide whether a location can be trusted for external reporting or only for internal use.
type Provenance struct {
	// Exists is set when the existence of the location was confirmed by a probe
	Exists bool

	// NearExecutable is set when the location was found relative to the directory of the executable
	NearExecutable bool

	// WithFile is set when the landmark itself was confirmed in the starting directory, as opposed to a
	// location that was only derived
	WithFile bool

	// InSourceTree is set when the location was found inside a source checkout
	InSourceTree bool

	// InBuildDir is set when the location was found inside a build tree
	InBuildDir bool

	// Forced is set when the location came from an explicit override
	Forced bool

	// Custom is set when the location was given by the user or a build artifact rather than searched for
	Custom bool

	// Default is set when the location is a compiled-in default that was not confirmed
	Default bool

	// PrefixMacro is set when the location was derived from the compiled-in prefix
	PrefixMacro bool

	// ExecPrefixMacro is set when the location was derived from the compiled-in exec-prefix
	ExecPrefixMacro bool
}

// Found returns true if the location can be trusted for external reporting, i.e. when its existence was
// confirmed or when it was forced by an explicit override.
func (p Provenance) Found() bool {
	return p.Exists || p.Forced
}

// IsUnknown returns true when no fact at all has been established.
func (p Provenance) IsUnknown() bool {
	return p == Provenance{}
}

// Merge returns a Provenance where each fact is set if it is set in the receiver or in other.
func (p Provenance) Merge(o Provenance) Provenance {
	return Provenance{
		Exists:          p.Exists || o.Exists,
		NearExecutable:  p.NearExecutable || o.NearExecutable,
		WithFile:        p.WithFile || o.WithFile,
		InSourceTree:    p.InSourceTree || o.InSourceTree,
		InBuildDir:      p.InBuildDir || o.InBuildDir,
		Forced:          p.Forced || o.Forced,
		Custom:          p.Custom || o.Custom,
		Default:         p.Default || o.Default,
		PrefixMacro:     p.PrefixMacro || o.PrefixMacro,
		ExecPrefixMacro: p.ExecPrefixMacro || o.ExecPrefixMacro}
}

// Facts returns the names of the facts that are set, in declaration order.
func (p Provenance) Facts() []string {
	fs := make([]string, 0, 4)
	add := func(set bool, name string) {
		if set {
			fs = append(fs, name)
		}
	}
	add(p.Exists, `exists`)
	add(p.NearExecutable, `near_executable`)
	add(p.WithFile, `with_file`)
	add(p.InSourceTree, `in_source_tree`)
	add(p.InBuildDir, `in_build_dir`)
	add(p.Forced, `forced`)
	add(p.Custom, `custom`)
	add(p.Default, `default`)
	add(p.PrefixMacro, `prefix_macro`)
	add(p.ExecPrefixMacro, `exec_prefix_macro`)
	return fs
}

// String returns the set facts joined by '|' or "unknown" when no fact has been established
func (p Provenance) String() string {
	if p.IsUnknown() {
		return `unknown`
	}
	return strings.Join(p.Facts(), `|`)
}
