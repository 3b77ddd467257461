package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/oshokin/minecraft-server-setup/internal/version"
)

// jarFileMode is the permission set on the downloaded artifact.
const jarFileMode os.FileMode = 0o644

// errBadHTTPStatus is returned when the artifact endpoint answers with a non-200 status.
var errBadHTTPStatus = errors.New("unexpected http status")

// File streams url into dest. The transfer goes through a temporary sibling
// file that is atomically renamed over dest on completion, so dest is never
// observed in a partially written state. Progress lines go to progressOut;
// pass nil to disable reporting.
func File(ctx context.Context, httpClient *http.Client, url, dest string, progressOut io.Writer) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil { //nolint:mnd // Standard directory permissions.
		return fmt.Errorf("create destination directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "mc-server-setup/"+version.Short())

	response, err := httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%s, %s: %w", url, response.Status, errBadHTTPStatus)
	}

	progress := newProgressReader(response.Body, filepath.Base(dest), response.ContentLength, progressOut)

	// The transfer lands in a temporary sibling. Only the final rename
	// touches dest, so dest never holds a partial write, even when the
	// transfer fails or the process dies mid-download.
	tempPath := dest + ".tmp"

	tempFile, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	_ = tempFile.Close()

	// Apply leaves the swapped-aside copy under a .old suffix, and may leave
	// a .new file behind on failure. After the rename the removes are no-ops.
	defer func() {
		_ = os.Remove(tempPath)
		_ = os.Remove(tempPath + ".old")
		_ = os.Remove(tempPath + ".new")
	}()

	options := goupdate.Options{
		TargetPath: tempPath,
		TargetMode: jarFileMode,
	}

	if err = goupdate.Apply(progress, options); err != nil {
		return fmt.Errorf("apply download: %w", err)
	}

	progress.Finish()

	if err = os.Rename(tempPath, dest); err != nil {
		return fmt.Errorf("move download into place: %w", err)
	}

	return nil
}
