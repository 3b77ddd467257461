package script

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// BatchFilename is the Windows start script name.
	BatchFilename = "start.bat"
	// ShellFilename is the POSIX start script name.
	ShellFilename = "start.sh"

	// scriptFileMode keeps the shell script executable for everyone.
	scriptFileMode os.FileMode = 0o755
	// batchFileMode is plain read/write; Windows ignores the execute bit anyway.
	batchFileMode os.FileMode = 0o644
)

// Params describes the java invocation both scripts share.
type Params struct {
	// Xms is the initial heap size, passed through verbatim (e.g. "2G").
	Xms string
	// Xmx is the maximum heap size, passed through verbatim (e.g. "4G").
	Xmx string
	// JarName is the server artifact filename.
	JarName string
	// NoGUI suppresses the server's graphical console.
	NoGUI bool
}

// LaunchArgs returns the java arguments matching the generated scripts,
// used for the bootstrap runs so both paths launch the server identically.
func (p Params) LaunchArgs() []string {
	args := []string{"-Xms" + p.Xms, "-Xmx" + p.Xmx, "-jar", p.JarName}
	if p.NoGUI {
		args = append(args, "nogui")
	}

	return args
}

// commandLine renders the java invocation as a single shell line.
func (p Params) commandLine() string {
	line := fmt.Sprintf("java -Xms%s -Xmx%s -jar %q", p.Xms, p.Xmx, p.JarName)
	if p.NoGUI {
		line += " nogui"
	}

	return line
}

// Write emits start.bat and start.sh into dir. The batch script pauses after
// exit so its output stays visible; the shell script changes into its own
// directory first and is marked executable.
func Write(dir string, params Params) error {
	javaLine := params.commandLine()

	batch := "@echo off\r\n" +
		"setlocal\r\n" +
		"cd /d %~dp0\r\n" +
		javaLine + "\r\n" +
		"pause\r\n"

	if err := os.WriteFile(filepath.Join(dir, BatchFilename), []byte(batch), batchFileMode); err != nil {
		return fmt.Errorf("write %s: %w", BatchFilename, err)
	}

	shell := "#!/usr/bin/env bash\n" +
		"set -euo pipefail\n" +
		"cd \"$(dirname \"$0\")\"\n" +
		javaLine + "\n"

	shellPath := filepath.Join(dir, ShellFilename)
	if err := os.WriteFile(shellPath, []byte(shell), scriptFileMode); err != nil {
		return fmt.Errorf("write %s: %w", ShellFilename, err)
	}

	// WriteFile does not change the mode of a script that already existed.
	if err := os.Chmod(shellPath, scriptFileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", ShellFilename, err)
	}

	return nil
}
