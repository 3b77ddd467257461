package properties

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// PropertiesFilename is the configuration file the server generates.
	PropertiesFilename = "server.properties"

	// Keys this tool knows how to toggle.
	whitelistKey        = "white-list"
	enforceWhitelistKey = "enforce-whitelist"
	onlineModeKey       = "online-mode"
)

// PatchServerProperties applies the requested toggles to server.properties
// inside dir. A nil toggle leaves its keys untouched; when the file does not
// exist the whole call is a silent no-op. The whitelist toggle sets both the
// whitelist key and its stricter enforcement variant.
func PatchServerProperties(dir string, whitelist, onlineMode *bool) error {
	if whitelist == nil && onlineMode == nil {
		return nil
	}

	path := filepath.Join(dir, PropertiesFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read %s: %w", PropertiesFilename, err)
	}

	f := Parse(data)

	if whitelist != nil {
		value := strconv.FormatBool(*whitelist)
		f.Set(whitelistKey, value)
		f.Set(enforceWhitelistKey, value)
	}

	if onlineMode != nil {
		f.Set(onlineModeKey, strconv.FormatBool(*onlineMode))
	}

	if err = os.WriteFile(path, f.Render(), patchedFileMode); err != nil {
		return fmt.Errorf("write %s: %w", PropertiesFilename, err)
	}

	return nil
}
