package api

// A Platform isolates the platform dependent capabilities that the path calculation needs.
type Platform interface {
	// Name returns the name of the platform, e.g. "linux"
	Name() string

	// ExecutableHint returns the absolute path of the running binary when the platform offers a way to
	// obtain it. The boolean is false when no such hint is available.
	ExecutableHint() (string, bool)

	// ExecutableSuffix returns the mandatory suffix of executable file names or an empty string.
	ExecutableSuffix() string

	// ReadLink returns the target of the symbolic link at the given path. An error is returned when the
	// path is not a link or when links are not supported.
	ReadLink(path string) (string, error)
}
