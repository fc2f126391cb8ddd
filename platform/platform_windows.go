// +build windows

package platform

import (
	"path/filepath"

	"github.com/lyraproj/getpath/api"
	"golang.org/x/sys/windows"
)

type windowsPlatform struct {
	basePlatform
}

func newPlatform() api.Platform {
	return windowsPlatform{}
}

func (windowsPlatform) ExecutableHint() (string, bool) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		return ``, false
	}
	exe := windows.UTF16ToString(buf[:n])
	if !filepath.IsAbs(exe) {
		return ``, false
	}
	return exe, true
}

func (windowsPlatform) ExecutableSuffix() string {
	return `.exe`
}
