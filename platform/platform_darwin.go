// +build darwin

package platform

import (
	"os"
	"path/filepath"

	"github.com/lyraproj/getpath/api"
)

// darwinPlatform uses the path of the running binary as a hint. When a script uses an interpreter of the
// form "#!/opt/python/bin/python", the kernel only passes "python" as argv[0] and a PATH search might
// find some other interpreter.
type darwinPlatform struct {
	basePlatform
}

func newPlatform() api.Platform {
	return darwinPlatform{}
}

func (darwinPlatform) ExecutableHint() (string, bool) {
	exe, err := os.Executable()
	if err != nil || !filepath.IsAbs(exe) {
		return ``, false
	}
	return exe, true
}
