package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

// scriptedConsole replays fixed input lines and then reports EOF
type scriptedConsole struct {
	bytes.Buffer
	lines []string
}

func (c *scriptedConsole) ReadLine() (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptedConsole) Close() error { return nil }

func newLoopRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(NewCommand("fail", "",
		func(ctx context.Context, out io.Writer, args *struct{}) (domain.ExitCode, string) {
			return domain.ExitTimeout, "timed out"
		})))
	require.NoError(t, r.Register(NewCommand("boom", "",
		func(ctx context.Context, out io.Writer, args *struct{}) (domain.ExitCode, string) {
			panic("boom")
		})))
	return r
}

func TestLoopExecute(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		status Status
		output string
	}{
		{"whitespace prints nothing", "  ", StatusEmpty, ""},
		{"unknown verb", "unknown_cmd x", StatusNotFound, "Unrecognized command\n"},
		{"non-zero code", "fail", StatusOK, "timed out\nCommand returned non-zero error code: 0x107 (ESP_ERR_TIMEOUT)\n"},
		{"internal error", "boom", StatusInternal, "Internal error: internal dispatch error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &scriptedConsole{}
			store := portsmocks.NewMockHistoryStore(t)
			if tt.status != StatusEmpty {
				store.EXPECT().Append(tt.line).Return(nil)
			}
			loop := NewLoop(newLoopRegistry(t), console, NewHistory(10), store)

			result := loop.Execute(context.Background(), tt.line)

			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.output, console.String())
		})
	}
}

func TestLoopExecute_HelpSucceeds(t *testing.T) {
	console := &scriptedConsole{}
	loop := NewLoop(newLoopRegistry(t), console, nil, nil)

	result := loop.Execute(context.Background(), "help")

	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, domain.ExitOK, result.Code)
	assert.Contains(t, console.String(), "fail")
	assert.NotContains(t, console.String(), "non-zero")
}

func TestLoopExecute_InvalidArgsPrintsUsageOnly(t *testing.T) {
	console := &scriptedConsole{}
	loop := NewLoop(newLoopRegistry(t), console, nil, nil)

	result := loop.Execute(context.Background(), "fail now")

	assert.Equal(t, StatusInvalidArgs, result.Status)
	assert.Contains(t, console.String(), "fail: ")
	assert.NotContains(t, console.String(), "Unrecognized")
	assert.NotContains(t, console.String(), "non-zero")
}

func TestLoopRun_EndsOnEOF(t *testing.T) {
	console := &scriptedConsole{lines: []string{"", "help", "  ", "unknown_cmd"}}
	history := NewHistory(10)
	store := portsmocks.NewMockHistoryStore(t)
	store.EXPECT().Append("help").Return(nil).Once()
	store.EXPECT().Append("unknown_cmd").Return(errors.New("disk full")).Once()

	loop := NewLoop(newLoopRegistry(t), console, history, store)

	err := loop.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"help", "unknown_cmd"}, history.Lines())
	assert.Contains(t, console.String(), "Unrecognized command")
}

func TestLoopRun_StopsWhenContextCancelled(t *testing.T) {
	console := &scriptedConsole{lines: []string{"help"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(newLoopRegistry(t), console, nil, nil).Run(ctx)

	require.NoError(t, err)
	assert.Empty(t, console.String())
}

func TestLoopLoadHistory(t *testing.T) {
	history := NewHistory(2)
	store := portsmocks.NewMockHistoryStore(t)
	store.EXPECT().Load().Return([]string{"a", "b", "c"}, nil)

	NewLoop(NewRegistry(), &scriptedConsole{}, history, store).LoadHistory()

	assert.Equal(t, []string{"b", "c"}, history.Lines())
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	for _, line := range []string{"a", "", "b", "b", "c", "d"} {
		h.Add(line)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "d", h.At(0))
	assert.Equal(t, "b", h.At(2))
	assert.Equal(t, []string{"b", "c", "d"}, h.Lines())
	assert.Panics(t, func() { h.At(3) })
}
