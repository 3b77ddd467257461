package properties

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EULAFilename is the license flag file the server generates on first run.
	EULAFilename = "eula.txt"

	// eulaKeyPrefix identifies the license flag line.
	eulaKeyPrefix = "eula="
	// eulaAcceptedLine is what the flag line becomes on acceptance.
	eulaAcceptedLine = "eula=true"

	// patchedFileMode matches what the server itself writes these files with.
	patchedFileMode os.FileMode = 0o644
)

// ErrEULANotFound indicates eula.txt does not exist yet; the server has to
// be run once before the flag can be toggled.
var ErrEULANotFound = errors.New("eula.txt not found, run the server once first to generate it")

// AcceptEULA rewrites eula.txt so the license flag reads accepted. Every
// line whose trimmed form starts with the flag key is replaced; all other
// lines pass through unchanged, in order. When no flag line exists the
// accepted line is appended. Running it twice is byte-stable.
func AcceptEULA(dir string) error {
	path := filepath.Join(dir, EULAFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrEULANotFound
		}

		return fmt.Errorf("read %s: %w", EULAFilename, err)
	}

	var (
		lines    = splitLines(string(data))
		out      = make([]string, 0, len(lines)+1)
		replaced bool
	)

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), eulaKeyPrefix) {
			out = append(out, eulaAcceptedLine)
			replaced = true

			continue
		}

		out = append(out, line)
	}

	if !replaced {
		out = append(out, eulaAcceptedLine)
	}

	contents := strings.Join(out, "\n") + "\n"
	if err = os.WriteFile(path, []byte(contents), patchedFileMode); err != nil {
		return fmt.Errorf("write %s: %w", EULAFilename, err)
	}

	return nil
}

// EULAExists reports whether the license flag file has been generated.
func EULAExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, EULAFilename))

	return err == nil
}
