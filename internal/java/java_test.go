package java

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

// skipOnWindows skips subprocess tests that rely on shell scripts.
func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not runnable on windows")
	}
}

// TestLocate_PrefersJavaHome asserts JAVA_HOME wins over PATH lookup.
func TestLocate_PrefersJavaHome(t *testing.T) {
	javaHome := t.TempDir()
	binDir := filepath.Join(javaHome, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	launcher := filepath.Join(binDir, "java"+getExecutableExtension())
	require.NoError(t, os.WriteFile(launcher, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("JAVA_HOME", javaHome)

	found, err := Locate()
	require.NoError(t, err)
	require.Equal(t, launcher, found)
}

// TestLocate_NotFound asserts a bare environment yields ErrNotFound.
func TestLocate_NotFound(t *testing.T) {
	t.Setenv("JAVA_HOME", "")
	t.Setenv("PATH", t.TempDir())

	_, err := Locate()
	require.ErrorIs(t, err, ErrNotFound)
}

// TestRun_Classification covers the clean, benign, unexpected, and
// launcher-not-found outcomes.
func TestRun_Classification(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	clean := writeScript(t, dir, "clean.sh", "exit 0")
	benign := writeScript(t, dir, "benign.sh", "exit 1")
	unexpected := writeScript(t, dir, "unexpected.sh", "exit 7")

	outcome, err := Run(ctx, clean, dir, nil)
	require.NoError(t, err)
	require.Equal(t, Outcome{Result: ResultClean, ExitCode: 0}, outcome)

	outcome, err = Run(ctx, benign, dir, nil)
	require.NoError(t, err)
	require.Equal(t, Outcome{Result: ResultBenign, ExitCode: 1}, outcome)

	outcome, err = Run(ctx, unexpected, dir, nil)
	require.NoError(t, err)
	require.Equal(t, Outcome{Result: ResultUnexpected, ExitCode: 7}, outcome)

	outcome, err = Run(ctx, filepath.Join(dir, "missing"), dir, nil)
	require.NoError(t, err)
	require.Equal(t, ResultNotFound, outcome.Result)
}

// TestRun_UsesWorkingDirectory asserts the subprocess runs inside dir.
func TestRun_UsesWorkingDirectory(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	dir := t.TempDir()
	script := writeScript(t, dir, "touch.sh", "touch generated.txt")

	outcome, err := Run(context.Background(), script, dir, nil)
	require.NoError(t, err)
	require.Equal(t, ResultClean, outcome.Result)

	_, err = os.Stat(filepath.Join(dir, "generated.txt"))
	require.NoError(t, err)
}
