package ota

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

type release struct {
	image    []byte
	manifest Manifest
	status   int
}

func newReleaseServer(t *testing.T, r *release) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "key-123", req.Header.Get(projectKeyHeader))
		if r.status != 0 {
			w.WriteHeader(r.status)
			return
		}
		m := r.manifest
		if m.URL == "" && r.image != nil {
			m.URL = server.URL + "/image"
		}
		_ = json.NewEncoder(w).Encode(m)
	})
	mux.HandleFunc("/image", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write(r.image)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestChannel(t *testing.T, server *httptest.Server) (*HTTPChannel, string) {
	t.Helper()
	dir := t.TempDir()
	return NewHTTPChannel(Config{
		CurrentVersion: "1.0.0",
		ManifestURL:    server.URL + "/manifest.json",
		ProjectKey:     "key-123",
		StagingDir:     dir,
	}, server.Client()), dir
}

func checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func TestCheckForUpdate_UpToDate(t *testing.T) {
	server := newReleaseServer(t, &release{manifest: Manifest{Version: "1.0.0"}})
	channel, _ := newTestChannel(t, server)
	handler := portsmocks.NewMockUpdateHandler(t)

	status, err := channel.CheckForUpdate(context.Background(), handler)

	require.NoError(t, err)
	assert.Equal(t, domain.UpdateUpToDate, status)
}

func TestCheckForUpdate_DownloadsAndCompletes(t *testing.T) {
	image := []byte("#!/bin/sh\necho new\n")
	server := newReleaseServer(t, &release{
		image:    image,
		manifest: Manifest{Version: "1.1.0", SHA256: checksum(image)},
	})
	channel, dir := newTestChannel(t, server)
	handler := portsmocks.NewMockUpdateHandler(t)

	handler.EXPECT().UpdateAvailable(mock.Anything).Return(true).Once()
	handler.EXPECT().DownloadComplete(mock.Anything).Return(true).Once()

	status, err := channel.CheckForUpdate(context.Background(), handler)

	require.NoError(t, err)
	assert.Equal(t, domain.UpdateAvailable, status)

	installed, err := os.ReadFile(filepath.Join(dir, imageName))
	require.NoError(t, err)
	assert.Equal(t, image, installed)
}

func TestCheckForUpdate_InstalledButNotApplied(t *testing.T) {
	image := []byte("#!/bin/sh\necho new\n")
	server := newReleaseServer(t, &release{
		image:    image,
		manifest: Manifest{Version: "1.1.0", SHA256: checksum(image)},
	})
	channel, _ := newTestChannel(t, server)
	handler := portsmocks.NewMockUpdateHandler(t)

	handler.EXPECT().UpdateAvailable(mock.Anything).Return(true).Once()
	handler.EXPECT().DownloadComplete(mock.Anything).Return(false).Once()

	status, err := channel.CheckForUpdate(context.Background(), handler)

	require.Error(t, err)
	assert.Equal(t, domain.UpdateAvailable, status)
	assert.Equal(t, int(domain.ExitFail), domain.UpdateErrorCode(err))
}

func TestCheckForUpdate_ChecksumMismatch(t *testing.T) {
	server := newReleaseServer(t, &release{
		image:    []byte("tampered"),
		manifest: Manifest{Version: "1.1.0", SHA256: checksum([]byte("original"))},
	})
	channel, dir := newTestChannel(t, server)
	handler := portsmocks.NewMockUpdateHandler(t)

	handler.EXPECT().UpdateAvailable(mock.Anything).Return(true).Once()
	handler.EXPECT().DownloadFailed(mock.Anything, int(domain.ExitInvalidSize)).Return().Once()

	_, err := channel.CheckForUpdate(context.Background(), handler)

	assert.Equal(t, int(domain.ExitInvalidSize), domain.UpdateErrorCode(err))
	_, statErr := os.Stat(filepath.Join(dir, imageName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheckForUpdate_ManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode int
	}{
		{"not found", http.StatusNotFound, 404},
		{"server error", http.StatusInternalServerError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newReleaseServer(t, &release{status: tt.status})
			channel, _ := newTestChannel(t, server)

			_, err := channel.CheckForUpdate(context.Background(), portsmocks.NewMockUpdateHandler(t))

			assert.Equal(t, tt.wantCode, domain.UpdateErrorCode(err))
		})
	}
}

func TestCheckForUpdate_NotConfigured(t *testing.T) {
	channel := NewHTTPChannel(Config{}, nil)

	_, err := channel.CheckForUpdate(context.Background(), portsmocks.NewMockUpdateHandler(t))

	assert.Equal(t, int(domain.ExitInvalidState), domain.UpdateErrorCode(err))
}
