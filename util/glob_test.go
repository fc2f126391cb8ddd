package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lyraproj/getpath/util"
	"github.com/stretchr/testify/require"
)

func TestGlob_matchesBelowRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, `_json.so`))
	touch(t, filepath.Join(root, `array.cpython-39-x86_64-linux-gnu.so`))
	touch(t, filepath.Join(root, `README`))
	touch(t, filepath.Join(root, `sub`, `deep.so`))

	ms, err := util.Glob(root, `*.so`)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, `_json.so`),
		filepath.Join(root, `array.cpython-39-x86_64-linux-gnu.so`)}, ms)

	ms, err = util.Glob(root, `**/*.so`)
	require.NoError(t, err)
	require.Contains(t, ms, filepath.Join(root, `sub`, `deep.so`))
}

func TestGlob_missingRoot(t *testing.T) {
	ms, err := util.Glob(filepath.Join(t.TempDir(), `nope`), `*.so`)
	require.NoError(t, err)
	require.Empty(t, ms)
}

func TestGlobAll_unique(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, `a.so`))
	touch(t, filepath.Join(root, `b.abi3.so`))

	ms, err := util.GlobAll(root, []string{`*.so`, `*.abi3.so`})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, `a.so`), filepath.Join(root, `b.abi3.so`)}, ms)
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte{}, 0644))
}
