// +build !windows

package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func installed(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	for _, f := range []string{`bin/python`, `lib/python3.9/os.py`, `lib/python3.9/lib-dynload/_ssl.so`} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, ioutil.WriteFile(p, []byte{}, 0755))
	}
	return root
}

func get(t *testing.T, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	environment = []string{}
	defer func() { environment = nil }()

	req := httptest.NewRequest(http.MethodGet, `/paths?`+params.Encode(), nil)
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, req)
	return rec
}

func TestPaths(t *testing.T) {
	root := installed(t)
	rec := get(t, url.Values{`program`: {root + `/bin/python`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(`Content-Type`), `application/json`)
	require.Contains(t, rec.Body.String(), `"stdlib_dir":"`+root+`/lib/python3.9"`)
	require.Contains(t, rec.Body.String(), `"prefix_found":true`)
}

func TestPaths_home(t *testing.T) {
	root := installed(t)
	rec := get(t, url.Values{`program`: {root + `/bin/python`}, `home`: {`/opt/home`}, `path`: {`/custom`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"prefix":"/opt/home"`)
	require.Contains(t, rec.Body.String(), `"module_search_path":"/custom:/opt/home/lib/python39.zip:`)
}

func TestPaths_extensions(t *testing.T) {
	root := installed(t)
	rec := get(t, url.Values{`program`: {root + `/bin/python`}, `extensions`: {`true`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `["`+root+`/lib/python3.9/lib-dynload/_ssl.so"]`+"\n", rec.Body.String())
}

func TestPaths_explain(t *testing.T) {
	root := installed(t)
	rec := get(t, url.Values{`program`: {root + `/bin/python`}, `explain`: {`1`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(`Content-Type`), `text/plain`)
	require.Contains(t, rec.Body.String(), `Stage "stdlib"`)
}

func TestPaths_missingProgram(t *testing.T) {
	rec := get(t, url.Values{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `missing required parameter 'program'`)
}

func TestPaths_badConfig(t *testing.T) {
	root := installed(t)
	configPath = filepath.Join(root, `getpath.json`)
	defer func() { configPath = `` }()
	require.NoError(t, ioutil.WriteFile(configPath, []byte(`{}`), 0644))

	rec := get(t, url.Values{`program`: {root + `/bin/python`}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `must have a .yaml, .yml, or .toml extension`)
}
