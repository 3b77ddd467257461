package script

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWrite_Contents verifies both scripts carry the shared java line and
// their platform-specific scaffolding.
func TestWrite_Contents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	params := Params{Xms: "2G", Xmx: "4G", JarName: "server.jar", NoGUI: true}

	require.NoError(t, Write(dir, params))

	batch, err := os.ReadFile(filepath.Join(dir, BatchFilename))
	require.NoError(t, err)
	require.Contains(t, string(batch), `java -Xms2G -Xmx4G -jar "server.jar" nogui`)
	require.Contains(t, string(batch), "cd /d %~dp0")
	require.Contains(t, string(batch), "pause")

	shell, err := os.ReadFile(filepath.Join(dir, ShellFilename))
	require.NoError(t, err)
	require.Contains(t, string(shell), "#!/usr/bin/env bash")
	require.Contains(t, string(shell), `cd "$(dirname "$0")"`)
	require.Contains(t, string(shell), `java -Xms2G -Xmx4G -jar "server.jar" nogui`)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, ShellFilename))
		require.NoError(t, err)
		require.NotZero(t, info.Mode()&0o111)
	}
}

// TestWrite_Deterministic asserts a rewrite produces byte-identical scripts.
func TestWrite_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	params := Params{Xms: "1G", Xmx: "2G", JarName: "server.jar"}

	require.NoError(t, Write(dir, params))

	first, err := os.ReadFile(filepath.Join(dir, ShellFilename))
	require.NoError(t, err)

	require.NoError(t, Write(dir, params))

	second, err := os.ReadFile(filepath.Join(dir, ShellFilename))
	require.NoError(t, err)
	require.Equal(t, first, second)

	// GUI kept when NoGUI is off.
	require.NotContains(t, string(second), "nogui")
}

// TestLaunchArgs matches the argument vector against the scripted command line.
func TestLaunchArgs(t *testing.T) {
	t.Parallel()

	params := Params{Xms: "2G", Xmx: "4G", JarName: "server.jar", NoGUI: true}
	require.Equal(t, []string{"-Xms2G", "-Xmx4G", "-jar", "server.jar", "nogui"}, params.LaunchArgs())

	params.NoGUI = false
	require.Equal(t, []string{"-Xms2G", "-Xmx4G", "-jar", "server.jar"}, params.LaunchArgs())
}
