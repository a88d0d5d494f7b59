package shell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
)

type joinArgs struct {
	SSID     string `arg:"" name:"ssid" help:"Network name"`
	Password string `arg:"" name:"password" optional:"" help:"Network password"`
	Timeout  int    `help:"Join timeout in milliseconds" default:"10000"`
}

func newTestRegistry(t *testing.T, calls *int) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(NewCommand("version", "Print the version",
		func(ctx context.Context, out io.Writer, args *struct{}) (domain.ExitCode, string) {
			*calls++
			return domain.ExitOK, "devcon dev"
		})))
	require.NoError(t, r.Register(NewCommand("join", "Join a network",
		func(ctx context.Context, out io.Writer, args *joinArgs) (domain.ExitCode, string) {
			*calls++
			if args.SSID == "fail" {
				return domain.ExitWifiNotConn, "join failed"
			}
			return domain.ExitOK, args.SSID + "/" + args.Password
		})))
	return r
}

func TestRegister(t *testing.T) {
	noop := func(ctx context.Context, out io.Writer, args *struct{}) (domain.ExitCode, string) {
		return domain.ExitOK, ""
	}

	tests := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{"duplicate verb", NewCommand("help", "", noop), domain.ErrDuplicateVerb},
		{"empty verb", NewCommand("", "", noop), domain.ErrInvalidCommand},
		{"verb with space", NewCommand("a b", "", noop), domain.ErrInvalidCommand},
		{"nil handler", NewCommand[struct{}]("nothing", "", nil), domain.ErrInvalidCommand},
		{"valid", NewCommand("free", "", noop), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.cmd)
			if tt.wantErr == nil {
				require.NoError(t, err)
				_, ok := r.Lookup(tt.cmd.Verb)
				assert.True(t, ok)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantStatus Status
		wantCode   domain.ExitCode
		wantMsg    string
		wantCalls  int
	}{
		{"empty line", "", StatusEmpty, domain.ExitOK, "", 0},
		{"whitespace only", "   \t ", StatusEmpty, domain.ExitOK, "", 0},
		{"unknown verb", "unknown_cmd x", StatusNotFound, domain.ExitOK, "", 0},
		{"no args", "version", StatusOK, domain.ExitOK, "devcon dev", 1},
		{"quoted argument", `join "my net" 's3cr3t pw'`, StatusOK, domain.ExitOK, "my net/s3cr3t pw", 1},
		{"optional argument omitted", "join home", StatusOK, domain.ExitOK, "home/", 1},
		{"handler failure is verbatim", "join fail", StatusOK, domain.ExitWifiNotConn, "join failed", 1},
		{"unexpected argument", "version now", StatusInvalidArgs, domain.ExitOK, "", 0},
		{"missing argument", "join", StatusInvalidArgs, domain.ExitOK, "", 0},
		{"unterminated quote", `join "home`, StatusInvalidArgs, domain.ExitOK, "", 0},
		{"too many tokens", "join a b c d e f g h", StatusInvalidArgs, domain.ExitOK, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := newTestRegistry(t, &calls)

			result := r.Dispatch(context.Background(), tt.line, io.Discard)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantCode, result.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, result.Message)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestDispatch_InvalidArgsIncludesUsage(t *testing.T) {
	calls := 0
	r := newTestRegistry(t, &calls)

	result := r.Dispatch(context.Background(), "join", io.Discard)

	require.Equal(t, StatusInvalidArgs, result.Status)
	assert.Contains(t, result.Message, "join: ")
	assert.Contains(t, result.Message, "<ssid>")
	assert.Zero(t, calls)
}

func TestDispatch_UnregisteredVerbRunsNoHandler(t *testing.T) {
	calls := 0
	r := newTestRegistry(t, &calls)

	for _, verb := range []string{"versio", "JOIN", "ota", "helpme"} {
		result := r.Dispatch(context.Background(), verb, io.Discard)
		assert.Equal(t, StatusNotFound, result.Status, verb)
		assert.Equal(t, verb, result.Verb)
	}
	assert.Zero(t, calls)
}

func TestDispatch_ReadOnlyCommandIsIdempotent(t *testing.T) {
	calls := 0
	r := newTestRegistry(t, &calls)

	first := r.Dispatch(context.Background(), "version", io.Discard)
	second := r.Dispatch(context.Background(), "version", io.Discard)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestDispatch_PanicBecomesInternal(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewCommand("boom", "",
		func(ctx context.Context, out io.Writer, args *struct{}) (domain.ExitCode, string) {
			panic("kaboom")
		})))

	var result Result
	require.NotPanics(t, func() {
		result = r.Dispatch(context.Background(), "boom", io.Discard)
	})

	assert.Equal(t, StatusInternal, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrInternal)
}

func TestHelp(t *testing.T) {
	calls := 0
	r := newTestRegistry(t, &calls)

	t.Run("lists all commands sorted", func(t *testing.T) {
		var out bytes.Buffer
		result := r.Dispatch(context.Background(), "help", &out)

		require.Equal(t, StatusOK, result.Status)
		assert.Equal(t, domain.ExitOK, result.Code)

		text := out.String()
		assert.Contains(t, text, "join <ssid> [<password>]")
		assert.Contains(t, text, "Print the version")
		assert.Less(t, bytes.Index(out.Bytes(), []byte("help")), bytes.Index(out.Bytes(), []byte("join")))
		assert.Less(t, bytes.Index(out.Bytes(), []byte("join")), bytes.Index(out.Bytes(), []byte("version")))
	})

	t.Run("single command", func(t *testing.T) {
		var out bytes.Buffer
		result := r.Dispatch(context.Background(), "help join", &out)

		assert.Equal(t, domain.ExitOK, result.Code)
		assert.Contains(t, out.String(), "Join a network")
		assert.NotContains(t, out.String(), "Print the version")
	})

	t.Run("unknown command", func(t *testing.T) {
		result := r.Dispatch(context.Background(), "help nope", io.Discard)

		assert.Equal(t, StatusOK, result.Status)
		assert.Equal(t, domain.ExitNotFound, result.Code)
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line    string
		want    []string
		wantErr bool
	}{
		{"", nil, false},
		{"  led  red ", []string{"led", "red"}, false},
		{`trace "ota failed" 'code 5'`, []string{"trace", "ota failed", "code 5"}, false},
		{`join my\ net`, []string{"join", "my net"}, false},
		{`join "open`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
