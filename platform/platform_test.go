package platform_test

import (
	"io/ioutil"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lyraproj/getpath/platform"
	"github.com/stretchr/testify/require"
)

func TestNew_name(t *testing.T) {
	require.Equal(t, runtime.GOOS, platform.New().Name())
}

func TestNew_suffix(t *testing.T) {
	sfx := platform.New().ExecutableSuffix()
	if runtime.GOOS == `windows` {
		require.Equal(t, `.exe`, sfx)
	} else {
		require.Equal(t, ``, sfx)
	}
}

func TestReadLink_notALink(t *testing.T) {
	f := filepath.Join(t.TempDir(), `file`)
	require.NoError(t, ioutil.WriteFile(f, []byte(`x`), 0644))
	_, err := platform.New().ReadLink(f)
	require.Error(t, err)
}

func TestExecutableHint_absolute(t *testing.T) {
	if exe, ok := platform.New().ExecutableHint(); ok {
		require.True(t, filepath.IsAbs(exe))
	}
}

func TestWithoutHint(t *testing.T) {
	p := platform.WithoutHint(platform.New())
	_, ok := p.ExecutableHint()
	require.False(t, ok)
	require.Equal(t, runtime.GOOS, p.Name())
	require.Equal(t, platform.New().ExecutableSuffix(), p.ExecutableSuffix())
}
