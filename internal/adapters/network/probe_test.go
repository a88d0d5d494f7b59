package network

import (
	"context"
	"errors"
	"net"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_IsConnected(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	assert.True(t, NewProbe(listener.Addr().String(), "").IsConnected(context.Background()))
}

type failingDialer struct{}

func (failingDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	return nil, errors.New("network is unreachable")
}

func TestProbe_IsConnectedFails(t *testing.T) {
	p := NewProbe("", "")
	p.dialer = failingDialer{}

	assert.Equal(t, DefaultTarget, p.Target())
	assert.False(t, p.IsConnected(context.Background()))
}

func TestProbe_Autojoin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("join commands use a POSIX shell")
	}

	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"no command", "", false},
		{"command succeeds", `sh -c 'test "$DEVCON_SSID" = home && test "$DEVCON_PASSWORD" = secret'`, true},
		{"command fails", "sh -c 'exit 1'", false},
		{"unterminated quote", `sh -c 'exit 0`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProbe("", tt.command)
			assert.Equal(t, tt.want, p.Autojoin(context.Background(), "home", "secret"))
		})
	}
}

func TestProbe_JoinTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("join commands use a POSIX shell")
	}

	p := NewProbe("", "sleep 5")
	start := time.Now()

	err := p.Join(context.Background(), "home", "secret", 50*time.Millisecond)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}
