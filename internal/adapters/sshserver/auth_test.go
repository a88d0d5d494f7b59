package sshserver

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := strings.Join([]string{
		"# operators",
		"",
		"not-a-key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed))) + " ops@bench",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
	assert.False(t, isKeyAuthorized(allowed, filepath.Join(t.TempDir(), "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	fingerprint := getKeyFingerprint(newPublicKey(t))

	assert.True(t, strings.HasPrefix(fingerprint, "MD5:"))
	assert.Len(t, strings.Split(strings.TrimPrefix(fingerprint, "MD5:"), ":"), 16)
}

func TestNewServer_CreatesSSHDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ssh")

	srv, err := NewServer("127.0.0.1:0", dir, nil)
	require.NoError(t, err)
	assert.NotNil(t, srv)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
