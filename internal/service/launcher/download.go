package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/bhxch/jlens-launcher/internal/logger"
	"github.com/bhxch/jlens-launcher/internal/paths"
	"github.com/bhxch/jlens-launcher/internal/version"
)

// Downloader fetches release JARs over HTTP.
type Downloader struct {
	client  *http.Client
	baseURL string
}

// NewDownloader returns a Downloader for the given release host.
// A non-positive timeout means no timeout.
func NewDownloader(baseURL string, timeout time.Duration) *Downloader {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}

	return &Downloader{
		client:  client,
		baseURL: baseURL,
	}
}

// Download fetches the JAR for ver and places it at dest. On failure no file
// is left at dest unless one was already there.
func (d *Downloader) Download(ctx context.Context, ver, dest string) error {
	assetURL, err := DownloadURL(d.baseURL, ver)
	if err != nil {
		return fmt.Errorf("%w: jlens-mcp-server %s: %w", ErrDownloadFailed, ver, err)
	}

	if err = d.fetch(ctx, assetURL, dest); err != nil {
		return fmt.Errorf("%w: jlens-mcp-server %s from %s: %w", ErrDownloadFailed, ver, assetURL, err)
	}

	logger.InfoKV(ctx, "Downloaded file", "url", assetURL, "path", dest)

	return nil
}

func (d *Downloader) fetch(ctx context.Context, assetURL, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, http.NoBody)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", version.UserAgent())

	response, err := d.client.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w", response.Status, errBadHTTPStatus)
	}

	return place(response.Body, dest)
}

// place swaps body into dest with go-update, which stages the data next to
// dest and renames it into place. go-update expects dest to exist, so a
// placeholder is created first and removed again if the swap fails.
func place(body io.Reader, dest string) error {
	created := false

	if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
		placeholder, err := os.OpenFile(filepath.Clean(dest), os.O_CREATE|os.O_WRONLY, paths.DefaultFileMode)
		if err != nil {
			return err
		}

		if err = placeholder.Close(); err != nil {
			return err
		}

		created = true
	}

	options := goupdate.Options{
		TargetPath: dest,
		TargetMode: paths.DefaultFileMode,
	}

	if err := goupdate.Apply(body, options); err != nil {
		if created {
			_ = os.Remove(dest)
		}

		_ = os.Remove(filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)+".new"))

		return err
	}

	return nil
}
