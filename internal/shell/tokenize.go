package shell

import (
	"errors"
	"fmt"

	"github.com/anmitsu/go-shlex"
)

// ErrTooManyArgs is returned when a line has more than MaxArgs tokens
var ErrTooManyArgs = errors.New("too many arguments")

// Tokenize splits a command line on whitespace, honoring POSIX quoting and
// backslash escapes. A blank line yields no tokens.
func Tokenize(line string) ([]string, error) {
	argv, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	return argv, nil
}
