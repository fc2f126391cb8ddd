package api

import (
	"github.com/lyraproj/issue/issue"
)

const (
	DecodeFailed         = `GETPATH_DECODE_FAILED`
	InvalidBuildConfig   = `GETPATH_INVALID_BUILD_CONFIG`
	LinkCycle            = `GETPATH_LINK_CYCLE`
	PathTooLong          = `GETPATH_PATH_TOO_LONG`
	SearchPathTooLong    = `GETPATH_SEARCH_PATH_TOO_LONG`
	UnknownEncoding      = `GETPATH_UNKNOWN_ENCODING`
	UnknownRendering     = `GETPATH_UNKNOWN_RENDERING`
	UnsupportedConfigExt = `GETPATH_UNSUPPORTED_CONFIG_EXTENSION`
)

func init() {
	issue.Hard(DecodeFailed, `unable to decode %{what}: %{detail}`)

	issue.Hard(InvalidBuildConfig, `build configuration '%{path}' is invalid: %{detail}`)

	issue.Hard(LinkCycle, `maximum number of symbolic links (%{max}) reached while resolving '%{path}'`)

	issue.Hard(PathTooLong, `path configuration: path too long '%{path}'`)

	issue.Hard(SearchPathTooLong, `path configuration: module search path needs %{size} characters, the maximum is %{max}`)

	issue.Hard(UnknownEncoding, `unknown encoding '%{encoding}'`)

	issue.Hard(UnknownRendering, `unknown rendering '%{name}'`)

	issue.Hard(UnsupportedConfigExt, `build configuration '%{path}' must have a .yaml, .yml, or .toml extension`)
}

// Error creates an issue.Reported error with the given code and arguments.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, 1)
}

// HasCode returns true if the given error is an issue.Reported with the given code.
func HasCode(err error, code issue.Code) bool {
	if re, ok := err.(issue.Reported); ok {
		return re.Code() == code
	}
	return false
}
