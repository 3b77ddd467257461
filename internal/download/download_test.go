package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFile_DownloadsAndCleansUp streams a payload and verifies the
// destination holds exactly the streamed bytes with no temporary leftovers.
func TestFile_DownloadsAndCleansUp(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("jar-bytes-"), 1024)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "server.jar")

	var progress bytes.Buffer

	require.NoError(t, File(context.Background(), ts.Client(), ts.URL, dest, &progress))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	// Percentage reporting kicks in when the total size is known.
	require.Contains(t, progress.String(), "%")

	// No temporary siblings survive the transfer.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "server.jar", entries[0].Name())
}

// TestFile_UnknownLength exercises the byte-count progress format used when
// the server does not report Content-Length.
func TestFile_UnknownLength(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("x"), 4096)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		// Flushing before the body is complete forces chunked encoding.
		_, _ = w.Write(payload[:1])
		flusher.Flush()
		_, _ = w.Write(payload[1:])
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "server.jar")

	var progress bytes.Buffer

	require.NoError(t, File(context.Background(), ts.Client(), ts.URL, dest, &progress))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	require.Contains(t, progress.String(), "bytes")
	require.NotContains(t, progress.String(), "%")
}

// TestFile_ReplacesExisting overwrites a previous artifact in place.
func TestFile_ReplacesExisting(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("new contents"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "server.jar")
	require.NoError(t, os.WriteFile(dest, []byte("old contents"), 0o644))

	require.NoError(t, File(context.Background(), ts.Client(), ts.URL, dest, nil))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "new contents", string(got))

	_, err = os.Stat(dest + ".old")
	require.True(t, os.IsNotExist(err))
}

// TestFile_BadStatus asserts non-200 responses fail without touching the destination.
func TestFile_BadStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "server.jar")

	err := File(context.Background(), ts.Client(), ts.URL, dest, nil)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "404"))

	_, err = os.Stat(dest)
	require.True(t, os.IsNotExist(err))
}

// TestFile_AbortedTransfer drops the connection mid-body and expects nothing
// under the final name: a re-run must not find a truncated artifact there.
func TestFile_AbortedTransfer(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1000000")
		_, _ = w.Write([]byte("partial payload"))

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		flusher.Flush()

		hijacker, ok := w.(http.Hijacker)
		require.True(t, ok)

		conn, _, err := hijacker.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer ts.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "server.jar")

	require.Error(t, File(context.Background(), ts.Client(), ts.URL, dest, nil))

	_, err := os.Stat(dest)
	require.True(t, os.IsNotExist(err))

	// No temporary siblings survive the failed transfer either.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
