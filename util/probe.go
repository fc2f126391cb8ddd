package util

import (
	"os"
	"runtime"
)

// IsFile returns true if the given path is a regular file. Any error is treated as the file not existing.
func IsFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// IsExecutable returns true if the given path is a regular file with at least one execute permission bit
// set. Windows has no execute bits so there, all regular files are considered executable.
func IsExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return runtime.GOOS == `windows` || fi.Mode().Perm()&0111 != 0
}

// IsDir returns true if the given path is a directory. Any error is treated as the directory not existing.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
