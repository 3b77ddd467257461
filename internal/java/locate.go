package java

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrNotFound indicates no usable Java launcher could be located.
var ErrNotFound = errors.New("java launcher not found")

// Locate returns the path to the Java launcher. A launcher under JAVA_HOME
// is preferred; otherwise the command search path is consulted.
func Locate() (string, error) {
	if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
		candidate := filepath.Join(javaHome, "bin", "java"+getExecutableExtension())
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	path, err := exec.LookPath("java")
	if err != nil {
		return "", fmt.Errorf("%w: install Java (Temurin / OpenJDK) and ensure 'java' is on PATH", ErrNotFound)
	}

	return path, nil
}

// getExecutableExtension returns ".exe" on Windows and "" elsewhere.
func getExecutableExtension() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}

	return ""
}
