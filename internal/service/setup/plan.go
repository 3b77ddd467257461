package setup

import (
	"errors"

	"github.com/oshokin/minecraft-server-setup/internal/java"
	"github.com/oshokin/minecraft-server-setup/internal/manifest"
)

var (
	// ErrVersionFlagConflict indicates both --version and --latest were given.
	ErrVersionFlagConflict = errors.New("use only one of --latest or --version")
	// ErrWhitelistFlagConflict indicates both whitelist toggles were given.
	ErrWhitelistFlagConflict = errors.New("use only one of --whitelist or --no-whitelist")
	// ErrOnlineModeFlagConflict indicates both online-mode toggles were given.
	ErrOnlineModeFlagConflict = errors.New("use only one of --online-mode or --offline-mode")
	// ErrEULAStillMissing indicates the server's first run did not generate
	// eula.txt, so there is nothing to accept.
	ErrEULAStillMissing = errors.New("eula.txt still not found after the first run, check the server output for errors")
)

// Process exit codes. Declining the EULA is not a failure.
const (
	// exitCodeFailure covers errors without a more specific meaning.
	exitCodeFailure = 1
	// exitCodeMissingPrerequisite covers absent java, invalid flag
	// combinations, and metadata without a server download URL.
	exitCodeMissingPrerequisite = 2
	// exitCodeEULAMissing covers eula.txt being absent after the bootstrap run.
	exitCodeEULAMissing = 3
)

// validateOptions rejects contradictory flag combinations. It runs before
// any network or filesystem work.
func validateOptions(opts *Options) error {
	if opts.Version != "" && opts.Latest {
		return ErrVersionFlagConflict
	}

	if opts.Whitelist && opts.NoWhitelist {
		return ErrWhitelistFlagConflict
	}

	if opts.OnlineMode && opts.OfflineMode {
		return ErrOnlineModeFlagConflict
	}

	return nil
}

// toggleFromFlags folds an enable/disable flag pair into an optional toggle:
// nil when neither flag was given.
func toggleFromFlags(enable, disable bool) *bool {
	switch {
	case enable:
		value := true
		return &value
	case disable:
		value := false
		return &value
	default:
		return nil
	}
}

// ExitCode maps an error from Run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrVersionFlagConflict),
		errors.Is(err, ErrWhitelistFlagConflict),
		errors.Is(err, ErrOnlineModeFlagConflict),
		errors.Is(err, java.ErrNotFound),
		errors.Is(err, manifest.ErrNoServerDownload):
		return exitCodeMissingPrerequisite
	case errors.Is(err, ErrEULAStillMissing):
		return exitCodeEULAMissing
	default:
		return exitCodeFailure
	}
}
