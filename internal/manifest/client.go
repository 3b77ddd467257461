package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/oshokin/minecraft-server-setup/internal/logger"
	"github.com/oshokin/minecraft-server-setup/internal/version"
)

// errBadHTTPStatus is returned when a manifest endpoint answers with a non-200 status.
var errBadHTTPStatus = errors.New("unexpected http status")

// Client fetches the version manifest and per-version metadata.
// The mirror list is injected so tests can point it at fake endpoints.
type Client struct {
	// mirrors is the ordered list of manifest URLs to try.
	mirrors []string
	// httpClient carries the configured request timeout.
	httpClient *http.Client
}

// NewClient creates a manifest client for the provided mirrors and timeout.
func NewClient(mirrors []string, timeout time.Duration) *Client {
	return &Client{
		mirrors: mirrors,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the version manifest, trying each mirror in order.
// Only when every mirror fails is the last error surfaced, wrapped in ErrUnreachable.
func (c *Client) Fetch(ctx context.Context) (*Manifest, error) {
	if len(c.mirrors) == 0 {
		return nil, fmt.Errorf("%w: no manifest mirrors configured", ErrUnreachable)
	}

	var lastErr error

	for _, mirror := range c.mirrors {
		var m Manifest
		if err := c.getJSON(ctx, mirror, &m); err != nil {
			logger.WarnKV(ctx, "Manifest mirror failed", "url", mirror, "error", err)
			lastErr = err

			continue
		}

		return &m, nil
	}

	return nil, fmt.Errorf("%w, last error: %w", ErrUnreachable, lastErr)
}

// ServerDownloadURL fetches version metadata and returns the server jar URL.
func (c *Client) ServerDownloadURL(ctx context.Context, metadataURL string) (string, error) {
	var meta versionMetadata
	if err := c.getJSON(ctx, metadataURL, &meta); err != nil {
		return "", fmt.Errorf("fetch version metadata: %w", err)
	}

	downloadURL := meta.Downloads.Server.URL
	if downloadURL == "" {
		return "", ErrNoServerDownload
	}

	return downloadURL, nil
}

// versionMetadata is the slice of the per-version document this tool reads.
type versionMetadata struct {
	Downloads struct {
		Server struct {
			URL string `json:"url"`
		} `json:"server"`
	} `json:"downloads"`
}

// getJSON performs a GET request and decodes the JSON response body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "mc-server-setup/"+version.Short())

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%s, %s: %w", url, response.Status, errBadHTTPStatus)
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	return nil
}
