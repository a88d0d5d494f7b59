package console

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedHistory []string

func (h fixedHistory) Len() int          { return len(h) }
func (h fixedHistory) At(idx int) string { return h[len(h)-1-idx] }

func TestPlainConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewPlain(strings.NewReader("help\r\n\nled red"), &out, "devcon> ")

	assert.Equal(t, ModePlain, c.Mode())
	assert.Contains(t, out.String(), "does not support escape sequences")

	for _, want := range []string{"help", "", "led red"} {
		line, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, strings.Count(out.String(), "devcon> "))
	assert.NoError(t, c.Close())
}

func TestOpen_PipeFallsBackToPlain(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	c := Open(r, &out, "devcon> ", nil)

	assert.Equal(t, ModePlain, c.Mode())
}

func TestOpen_DumbTerminalFallsBackToPlain(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	t.Setenv("TERM", "dumb")
	var out bytes.Buffer
	c := Open(tty, &out, "devcon> ", nil)

	assert.Equal(t, ModePlain, c.Mode())
	assert.Contains(t, out.String(), DumbTerminalNotice)
}

func TestOpen_TerminalUsesLineEditor(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	// drain the echo so writes to the pty never block
	go func() { _, _ = io.Copy(io.Discard, ptmx) }()

	t.Setenv("TERM", "xterm-256color")
	c := Open(tty, tty, "devcon> ", fixedHistory{"free", "led blue"})
	defer c.Close()
	require.Equal(t, ModeEditor, c.Mode())

	lines := make(chan string, 2)
	go func() {
		for i := 0; i < 2; i++ {
			line, err := c.ReadLine()
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

	// a typed line, then "up arrow" recalls the newest history entry
	_, err = ptmx.Write([]byte("version\r"))
	require.NoError(t, err)
	assert.Equal(t, "version", receive(t, lines))

	_, err = ptmx.Write([]byte("\x1b[A\r"))
	require.NoError(t, err)
	assert.Equal(t, "led blue", receive(t, lines))
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case line := <-ch:
		return line
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a line")
		return ""
	}
}
