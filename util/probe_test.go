// +build !windows

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/getpath/util"
	"github.com/stretchr/testify/require"
)

func TestProbes(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, `plain`)
	exe := filepath.Join(dir, `exe`)
	require.NoError(t, ioutil.WriteFile(plain, []byte(`x`), 0644))
	require.NoError(t, ioutil.WriteFile(exe, []byte(`x`), 0755))

	require.True(t, util.IsFile(plain))
	require.True(t, util.IsFile(exe))
	require.False(t, util.IsFile(dir))
	require.False(t, util.IsFile(filepath.Join(dir, `missing`)))

	require.True(t, util.IsExecutable(exe))
	require.False(t, util.IsExecutable(plain))
	require.False(t, util.IsExecutable(dir))

	require.True(t, util.IsDir(dir))
	require.False(t, util.IsDir(plain))
	require.False(t, util.IsDir(filepath.Join(dir, `missing`)))
}

func TestProbes_followLinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, `target`)
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(dir, `link`)
	require.NoError(t, os.Symlink(target, link))
	require.True(t, util.IsDir(link))

	dangling := filepath.Join(dir, `dangling`)
	require.NoError(t, os.Symlink(filepath.Join(dir, `gone`), dangling))
	require.False(t, util.IsFile(dangling))
	require.False(t, util.IsDir(dangling))
}

func TestDecoder_utf8(t *testing.T) {
	d, err := util.NewDecoder(`UTF-8`)
	require.NoError(t, err)
	s, err := d.DecodeString(`PATH`, "/usr/bin:/opt/café")
	require.NoError(t, err)
	require.Equal(t, "/usr/bin:/opt/café", s)

	_, err = d.Decode(`PATH`, []byte{'/', 'a', 0xff, 'b'})
	require.True(t, api.HasCode(err, api.DecodeFailed))
	require.Contains(t, err.Error(), `at byte 2`)
}

func TestDecoder_latin1(t *testing.T) {
	d, err := util.NewDecoder(`iso-8859-1`)
	require.NoError(t, err)
	s, err := d.Decode(`home`, []byte{'/', 'c', 'a', 'f', 0xe9})
	require.NoError(t, err)
	require.Equal(t, "/café", s)
}

func TestDecoder_unknown(t *testing.T) {
	_, err := util.NewDecoder(`no-such-encoding`)
	require.True(t, api.HasCode(err, api.UnknownEncoding))
}
