// Package ota implements the update channel over HTTP: a JSON manifest
// names the latest version and where to download it.
package ota

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

const (
	projectKeyHeader = "X-Project-Key"
	imageName        = "firmware.bin"
	requestTimeout   = 30 * time.Second
)

// Manifest describes the latest available release
type Manifest struct {
	SHA256  string `json:"sha256"`
	URL     string `json:"url"`
	Version string `json:"version"`
}

// Config configures the HTTP channel
type Config struct {
	// CurrentVersion is compared against the manifest version
	CurrentVersion string
	// InstallPath receives the verified image; empty keeps it staged
	InstallPath string
	ManifestURL string
	ProjectKey  string
	StagingDir  string
}

// HTTPChannel implements ports.UpdateChannel
type HTTPChannel struct {
	client *http.Client
	config Config
}

var _ ports.UpdateChannel = (*HTTPChannel)(nil)

// NewHTTPChannel creates a channel. client may be nil.
func NewHTTPChannel(config Config, client *http.Client) *HTTPChannel {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &HTTPChannel{client: client, config: config}
}

// CheckForUpdate fetches the manifest and, when it names a different
// version, downloads, verifies and installs the image, reporting each step
// to handler.
func (c *HTTPChannel) CheckForUpdate(ctx context.Context, handler ports.UpdateHandler) (domain.UpdateStatus, error) {
	if c.config.ManifestURL == "" {
		return domain.UpdateUpToDate, &domain.UpdateError{
			Code: int(domain.ExitInvalidState),
			Err:  errors.New("no update manifest URL configured"),
		}
	}

	manifest, err := c.fetchManifest(ctx)
	if err != nil {
		return domain.UpdateUpToDate, err
	}
	if manifest.Version == "" || manifest.Version == c.config.CurrentVersion {
		logging.Logger.Debug("No newer release", "current", c.config.CurrentVersion, "latest", manifest.Version)
		return domain.UpdateUpToDate, nil
	}

	logging.Logger.Info("Release available", "current", c.config.CurrentVersion, "latest", manifest.Version)
	if !handler.UpdateAvailable(ctx) {
		return domain.UpdateAvailable, &domain.UpdateError{
			Code: int(domain.ExitInvalidState),
			Err:  errors.New("update rejected, another session is in progress"),
		}
	}

	if err := c.download(ctx, manifest); err != nil {
		code := domain.UpdateErrorCode(err)
		handler.DownloadFailed(ctx, code)
		return domain.UpdateAvailable, err
	}

	if !handler.DownloadComplete(ctx) {
		return domain.UpdateAvailable, &domain.UpdateError{
			Code: int(domain.ExitFail),
			Err:  errors.New("installed update was not applied"),
		}
	}
	return domain.UpdateAvailable, nil
}

func (c *HTTPChannel) fetchManifest(ctx context.Context) (Manifest, error) {
	var manifest Manifest

	resp, err := c.get(ctx, c.config.ManifestURL)
	if err != nil {
		return manifest, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return manifest, &domain.UpdateError{
			Code: int(domain.ExitInvalidResp),
			Err:  fmt.Errorf("failed to decode manifest: %w", err),
		}
	}
	return manifest, nil
}

func (c *HTTPChannel) download(ctx context.Context, manifest Manifest) error {
	if manifest.URL == "" {
		return &domain.UpdateError{Code: int(domain.ExitInvalidResp), Err: errors.New("manifest has no download URL")}
	}

	resp, err := c.get(ctx, manifest.URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(c.config.StagingDir, 0755); err != nil {
		return storageError(fmt.Errorf("failed to create staging directory: %w", err))
	}
	staged, err := os.CreateTemp(c.config.StagingDir, imageName+".*")
	if err != nil {
		return storageError(fmt.Errorf("failed to create staging file: %w", err))
	}
	defer os.Remove(staged.Name())

	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(staged, hash), resp.Body)
	if closeErr := staged.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return storageError(fmt.Errorf("failed to write image: %w", err))
	}

	if manifest.SHA256 != "" {
		if sum := hex.EncodeToString(hash.Sum(nil)); sum != manifest.SHA256 {
			return &domain.UpdateError{
				Code: int(domain.ExitInvalidSize),
				Err:  fmt.Errorf("image checksum mismatch: got %s, want %s", sum, manifest.SHA256),
			}
		}
	}
	logging.Logger.Info("Image downloaded", "version", manifest.Version, "bytes", written)

	target := c.config.InstallPath
	if target == "" {
		target = filepath.Join(c.config.StagingDir, imageName)
	}
	if err := os.Chmod(staged.Name(), 0755); err != nil {
		return storageError(fmt.Errorf("failed to mark image executable: %w", err))
	}
	if err := os.Rename(staged.Name(), target); err != nil {
		return storageError(fmt.Errorf("failed to install image: %w", err))
	}
	logging.Logger.Info("Image installed", "path", target)
	return nil
}

func (c *HTTPChannel) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.UpdateError{Code: int(domain.ExitInvalidArg), Err: err}
	}
	if c.config.ProjectKey != "" {
		req.Header.Set(projectKeyHeader, c.config.ProjectKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.UpdateError{Code: int(domain.ExitFail), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &domain.UpdateError{
			Code: resp.StatusCode,
			Err:  fmt.Errorf("GET %s: %s", url, resp.Status),
		}
	}
	return resp, nil
}

func storageError(err error) error {
	return &domain.UpdateError{Code: int(domain.ExitStorageFailed), Err: err}
}
