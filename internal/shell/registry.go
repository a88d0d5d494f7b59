// Package shell implements the interactive command shell: a registry of
// verbs with kong argument grammars, a dispatcher that turns a raw line into
// a typed result, and the read-dispatch loop that runs on the main goroutine.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
)

// MaxArgs is the maximum number of tokens in one command line, verb included
const MaxArgs = 8

// Status classifies the outcome of a dispatch
type Status int

const (
	// StatusOK means the handler ran; Code carries its exit code
	StatusOK Status = iota
	// StatusEmpty means the line had no tokens
	StatusEmpty
	// StatusNotFound means the verb is not registered
	StatusNotFound
	// StatusInvalidArgs means the arguments did not match the grammar
	StatusInvalidArgs
	// StatusInternal means dispatch itself failed
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusNotFound:
		return "not_found"
	case StatusInvalidArgs:
		return "invalid_args"
	case StatusInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Result is the typed outcome of Dispatch
type Result struct {
	Code    domain.ExitCode
	Err     error
	Message string
	Status  Status
	Verb    string
}

// HandlerFunc runs a command. args points to a freshly parsed value of the
// command's grammar type. Output that should reach the user as it happens
// is written to out; the returned message is printed after the handler
// returns.
type HandlerFunc func(ctx context.Context, out io.Writer, args any) (domain.ExitCode, string)

// Command is one registered verb
type Command struct {
	Handler HandlerFunc
	Help    string
	Verb    string

	grammar reflect.Type
}

// NewCommand builds a command whose arguments are parsed into a fresh T on
// every dispatch. T is a kong grammar struct; use struct{} for commands that
// take no arguments.
func NewCommand[T any](verb, help string, fn func(ctx context.Context, out io.Writer, args *T) (domain.ExitCode, string)) Command {
	var handler HandlerFunc
	if fn != nil {
		handler = func(ctx context.Context, out io.Writer, args any) (domain.ExitCode, string) {
			return fn(ctx, out, args.(*T))
		}
	}
	return Command{
		Handler: handler,
		Help:    help,
		Verb:    verb,
		grammar: reflect.TypeOf((*T)(nil)).Elem(),
	}
}

// Hint returns the usage summary of the command, for example
// "join <ssid> [<password>] [flags]"
func (c Command) Hint() string {
	parser, err := c.parser(io.Discard, c.newArgs())
	if err != nil {
		return c.Verb
	}
	summary := strings.TrimSpace(parser.Model.Summary())
	if summary == "" {
		return c.Verb
	}
	return c.Verb + " " + summary
}

func (c Command) newArgs() any {
	if c.grammar == nil {
		return &struct{}{}
	}
	return reflect.New(c.grammar).Interface()
}

func (c Command) parser(out io.Writer, args any) (*kong.Kong, error) {
	return kong.New(args,
		kong.Name(c.Verb),
		kong.Description(c.Help),
		kong.NoDefaultHelp(),
		kong.Writers(out, out),
		kong.Exit(func(int) {}),
	)
}

// Registry maps verbs to commands. It is written during startup and read-only
// afterwards, so dispatch needs no locking.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a registry with the built-in help command registered
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]Command)}
	// help cannot collide in an empty registry
	_ = r.Register(NewCommand("help", "Print the list of registered commands", r.help))
	return r
}

// Register adds a command. It fails with domain.ErrDuplicateVerb when the
// verb already exists.
func (r *Registry) Register(cmd Command) error {
	if cmd.Verb == "" || strings.ContainsAny(cmd.Verb, " \t\n") {
		return fmt.Errorf("%w: verb %q", domain.ErrInvalidCommand, cmd.Verb)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", domain.ErrInvalidCommand, cmd.Verb)
	}
	if _, exists := r.commands[cmd.Verb]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateVerb, cmd.Verb)
	}
	if _, err := cmd.parser(io.Discard, cmd.newArgs()); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidCommand, cmd.Verb, err)
	}

	r.commands[cmd.Verb] = cmd
	logging.Logger.Debug("Registered shell command", "verb", cmd.Verb)
	return nil
}

// Lookup returns the command registered for verb
func (r *Registry) Lookup(verb string) (Command, bool) {
	cmd, ok := r.commands[verb]
	return cmd, ok
}

// Commands returns all commands sorted by verb
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Verb < cmds[j].Verb
	})
	return cmds
}

// Dispatch tokenizes line and runs the matching command. Every failure is
// reported through the returned Result; Dispatch never panics.
func (r *Registry) Dispatch(ctx context.Context, line string, out io.Writer) (result Result) {
	argv, err := Tokenize(line)
	if err != nil {
		return Result{Status: StatusInvalidArgs, Err: err, Message: err.Error()}
	}
	if len(argv) == 0 {
		return Result{Status: StatusEmpty}
	}
	if len(argv) > MaxArgs {
		return Result{
			Status:  StatusInvalidArgs,
			Err:     ErrTooManyArgs,
			Message: fmt.Sprintf("%s: too many arguments (max %d)", argv[0], MaxArgs-1),
			Verb:    argv[0],
		}
	}

	verb := argv[0]
	cmd, ok := r.commands[verb]
	if !ok {
		return Result{Status: StatusNotFound, Verb: verb}
	}

	defer func() {
		if rec := recover(); rec != nil {
			logging.Logger.Error("Shell command panicked", "verb", verb, "panic", rec)
			result = Result{
				Status: StatusInternal,
				Err:    fmt.Errorf("%w: %v", domain.ErrInternal, rec),
				Verb:   verb,
			}
		}
	}()

	args := cmd.newArgs()
	var usage bytes.Buffer
	parser, err := cmd.parser(&usage, args)
	if err != nil {
		return Result{Status: StatusInternal, Err: fmt.Errorf("%w: %v", domain.ErrInternal, err), Verb: verb}
	}
	if _, err := parser.Parse(argv[1:]); err != nil {
		return Result{
			Status:  StatusInvalidArgs,
			Err:     err,
			Message: formatUsage(cmd, err, &usage),
			Verb:    verb,
		}
	}

	code, msg := cmd.Handler(ctx, out, args)
	logging.Logger.Debug("Shell command finished", "verb", verb, "code", int(code))
	return Result{Status: StatusOK, Code: code, Message: msg, Verb: verb}
}

// formatUsage renders the parse error followed by the command's usage
func formatUsage(cmd Command, err error, usage *bytes.Buffer) string {
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) && parseErr.Context != nil {
		usage.Reset()
		_ = parseErr.Context.PrintUsage(true)
	}
	msg := fmt.Sprintf("%s: %v", cmd.Verb, err)
	if text := strings.TrimSpace(usage.String()); text != "" {
		msg += "\n" + text
	}
	return msg
}

type helpArgs struct {
	Verb string `arg:"" optional:"" help:"Show help for a single command"`
}

func (r *Registry) help(ctx context.Context, out io.Writer, args *helpArgs) (domain.ExitCode, string) {
	if args.Verb != "" {
		cmd, ok := r.commands[args.Verb]
		if !ok {
			return domain.ExitNotFound, fmt.Sprintf("help: no command %q", args.Verb)
		}
		writeHelp(out, cmd)
		return domain.ExitOK, ""
	}

	for _, cmd := range r.Commands() {
		writeHelp(out, cmd)
	}
	return domain.ExitOK, ""
}

func writeHelp(out io.Writer, cmd Command) {
	fmt.Fprintf(out, "%s\n", cmd.Hint())
	if cmd.Help != "" {
		fmt.Fprintf(out, "  %s\n", cmd.Help)
	}
	fmt.Fprintln(out)
}
