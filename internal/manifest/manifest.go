package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates that every manifest mirror failed.
	ErrUnreachable = errors.New("version manifest is unreachable")
	// ErrVersionNotFound indicates the requested id is absent from the manifest.
	ErrVersionNotFound = errors.New("version not found in manifest")
	// ErrNoLatestRelease indicates the manifest carries no latest release pointer.
	ErrNoLatestRelease = errors.New("manifest did not include a latest release")
	// ErrNoServerDownload indicates version metadata carries no server jar URL.
	ErrNoServerDownload = errors.New("version metadata did not include a server download URL")
)

// Manifest is the remote document listing all available server versions.
type Manifest struct {
	// Latest points at the current release and snapshot ids.
	Latest Latest `json:"latest"`
	// Versions lists every published version with its metadata URL.
	Versions []Version `json:"versions"`
}

// Latest holds the manifest's "newest version" pointers.
type Latest struct {
	// Release is the id of the newest stable release.
	Release string `json:"release"`
	// Snapshot is the id of the newest snapshot build.
	Snapshot string `json:"snapshot"`
}

// Version is a single manifest record.
type Version struct {
	// ID is the version identifier, e.g. "1.21.4".
	ID string `json:"id"`
	// URL points at the per-version metadata document.
	URL string `json:"url"`
}

// VersionNotFoundError reports a version id that the manifest does not list.
type VersionNotFoundError struct {
	// ID is the version identifier that was requested.
	ID string
}

// Error names the missing id and suggests the usual fixes.
func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found in manifest, try --latest or check spelling (example: 1.21.4)", e.ID)
}

// Is matches the sentinel so callers can classify with errors.Is.
func (e *VersionNotFoundError) Is(target error) bool {
	return target == ErrVersionNotFound
}

// Resolve picks a version record from the manifest. An empty requested id
// means the latest release. Requesting an id the manifest does not list
// fails with a VersionNotFoundError naming that id.
func Resolve(m *Manifest, requested string) (*Version, error) {
	if requested == "" {
		requested = m.Latest.Release
		if requested == "" {
			return nil, ErrNoLatestRelease
		}
	}

	for i := range m.Versions {
		if m.Versions[i].ID == requested {
			return &m.Versions[i], nil
		}
	}

	return nil, &VersionNotFoundError{ID: requested}
}
