// +build !windows

package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lyraproj/getpath/platform"
	"github.com/stretchr/testify/require"
)

func TestReadLink_relativeTarget(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, `python`)
	require.NoError(t, os.Symlink(`python3.9`, link))
	target, err := platform.New().ReadLink(link)
	require.NoError(t, err)
	require.Equal(t, `python3.9`, target)
}
