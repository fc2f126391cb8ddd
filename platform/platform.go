// Package platform contains the api.Platform implementations. Exactly one of them is compiled into a
// binary and returned by New.
package platform

import (
	"os"
	"runtime"

	"github.com/lyraproj/getpath/api"
)

type basePlatform struct{}

// New returns the api.Platform for the platform that the binary was built for.
func New() api.Platform {
	return newPlatform()
}

func (basePlatform) Name() string {
	return runtime.GOOS
}

func (basePlatform) ExecutableHint() (string, bool) {
	return ``, false
}

func (basePlatform) ExecutableSuffix() string {
	return ``
}

func (basePlatform) ReadLink(path string) (string, error) {
	return os.Readlink(path)
}

type withoutHint struct {
	api.Platform
}

// WithoutHint returns a Platform that delegates to the given one but never reports an executable hint. It
// is used when the program name is given explicitly and must not be replaced by the running binary.
func WithoutHint(p api.Platform) api.Platform {
	return withoutHint{p}
}

func (withoutHint) ExecutableHint() (string, bool) {
	return ``, false
}
