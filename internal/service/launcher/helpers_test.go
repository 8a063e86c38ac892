package launcher

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireShell skips tests that use shell scripts in place of a JVM.
func requireShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts stand in for java")
	}
}

// writeScript creates an executable /bin/sh script and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

// touch creates a file with the given contents and returns its path.
func touch(t *testing.T, dir, name, contents string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

// releaseServer serves body for every request and counts the requests.
func releaseServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts, &hits
}
