package cli

import (
	"fmt"
	"runtime"
)

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	tag       string
	time      string
	sha       string
	goVersion string
}

func getVersion() *version {
	tag := BuildTag
	if tag == `` {
		tag = `dirty`
	}
	return &version{tag: tag, time: BuildTime, sha: BuildSHA, goVersion: runtime.Version()}
}

// String returns <Git SHA>-<Git Tag>, followed by the build time when known, and the Go version
func (v *version) String() string {
	s := v.sha + `-` + v.tag
	if v.time != `` {
		s += ` built ` + v.time
	}
	return fmt.Sprintf(`%s (%s)`, s, v.goVersion)
}
