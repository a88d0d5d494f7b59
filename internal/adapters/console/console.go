// Package console negotiates the terminal capabilities once at startup and
// exposes a line reader: a raw-mode line editor with history when the
// terminal supports escape sequences, a plain buffered reader otherwise.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
	"github.com/renato0307/devcon/internal/theme"
)

// DumbTerminalNotice is printed when line editing is unavailable
const DumbTerminalNotice = "Your terminal application does not support escape sequences.\n" +
	"Line editing and history features are disabled."

// Mode is the negotiated console capability
type Mode int

const (
	// ModeEditor is the raw-mode line editor with history navigation
	ModeEditor Mode = iota
	// ModePlain reads whole lines without editing
	ModePlain
)

func (m Mode) String() string {
	if m == ModeEditor {
		return "editor"
	}
	return "plain"
}

// LineHistory is the read side of the shell history ring
type LineHistory interface {
	At(idx int) string
	Len() int
}

// readOnlyHistory lets the editor browse the ring while the shell loop
// stays its only writer
type readOnlyHistory struct {
	src LineHistory
}

func (h readOnlyHistory) Add(string)        {}
func (h readOnlyHistory) Len() int          { return h.src.Len() }
func (h readOnlyHistory) At(idx int) string { return h.src.At(idx) }

// Console implements ports.Console
type Console struct {
	mode    Mode
	mu      sync.Mutex
	out     io.Writer
	prompt  string
	reader  *bufio.Reader
	restore func() error
	term    *term.Terminal
}

var _ ports.Console = (*Console)(nil)

// Open negotiates the console on the process terminal. in is switched to
// raw mode when it is a terminal and TERM is not "dumb"; Close restores it.
func Open(in *os.File, out io.Writer, prompt string, history LineHistory) *Console {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) || os.Getenv("TERM") == "dumb" {
		return NewPlain(in, out, prompt)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		logging.Logger.Warn("Failed to enable raw mode", "error", err)
		return NewPlain(in, out, prompt)
	}

	c := NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt, history)
	c.restore = func() error { return term.Restore(fd, state) }

	if f, ok := out.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			_ = c.term.SetSize(width, height)
		}
	}
	logging.Logger.Debug("Console opened", "mode", c.mode)
	return c
}

// NewTerminal creates a line editor over rw, which must already deliver raw
// keystrokes (an SSH session with a pty, or a terminal in raw mode)
func NewTerminal(rw io.ReadWriter, prompt string, history LineHistory) *Console {
	t := term.NewTerminal(rw, theme.PromptStyle.Render(prompt))
	if history != nil {
		t.History = readOnlyHistory{src: history}
	}
	return &Console{
		mode:   ModeEditor,
		out:    rw,
		prompt: prompt,
		term:   t,
	}
}

// NewPlain creates a console without line editing and prints the notice
func NewPlain(in io.Reader, out io.Writer, prompt string) *Console {
	fmt.Fprintln(out, DumbTerminalNotice)
	logging.Logger.Info("Console opened without line editing")
	return &Console{
		mode:   ModePlain,
		out:    out,
		prompt: prompt,
		reader: bufio.NewReader(in),
	}
}

// Mode returns the negotiated mode
func (c *Console) Mode() Mode {
	return c.mode
}

// ReadLine blocks until a line is entered. It returns io.EOF when the
// input ends or the user presses Ctrl-D on an empty line.
func (c *Console) ReadLine() (string, error) {
	if c.mode == ModeEditor {
		return c.term.ReadLine()
	}

	if _, err := io.WriteString(c.out, c.prompt); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Write prints output, translating newlines for raw terminals
func (c *Console) Write(p []byte) (int, error) {
	if c.mode == ModeEditor {
		return c.term.Write(p)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// SetSize updates the width used for line wrapping in editor mode
func (c *Console) SetSize(width, height int) error {
	if c.term == nil {
		return nil
	}
	return c.term.SetSize(width, height)
}

// Close restores the terminal state. It is safe to call more than once and
// from another goroutine than the reader.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restore == nil {
		return nil
	}
	restore := c.restore
	c.restore = nil
	return restore()
}
