// +build !windows,!darwin

package platform

import "github.com/lyraproj/getpath/api"

type unixPlatform struct {
	basePlatform
}

func newPlatform() api.Platform {
	return unixPlatform{}
}
