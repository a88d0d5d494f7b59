package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

const (
	msgUnrecognized = "Unrecognized command"
	msgNonZero      = "Command returned non-zero error code: %s (%s)"
	msgInternal     = "Internal error: %s"
)

// Loop reads lines from a console and dispatches them through a registry
type Loop struct {
	console  ports.Console
	history  *History
	registry *Registry
	store    ports.HistoryStore
}

// NewLoop wires a shell loop. store may be nil, in which case history is
// kept in memory only.
func NewLoop(registry *Registry, console ports.Console, history *History, store ports.HistoryStore) *Loop {
	if history == nil {
		history = NewHistory(DefaultHistoryMax)
	}
	return &Loop{
		console:  console,
		history:  history,
		registry: registry,
		store:    store,
	}
}

// LoadHistory fills the in-memory ring from the persistent store
func (l *Loop) LoadHistory() {
	if l.store == nil {
		return
	}
	lines, err := l.store.Load()
	if err != nil {
		logging.Logger.Warn("Failed to load shell history", "error", err)
		return
	}
	for _, line := range lines {
		l.history.Add(line)
	}
	logging.Logger.Debug("Loaded shell history", "entries", l.history.Len())
}

// Run blocks until the console reaches EOF or ctx is cancelled. Errors from
// individual commands never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := l.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logging.Logger.Info("Console closed, leaving shell loop")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read console line: %w", err)
		}

		l.Execute(ctx, line)
	}
}

// Execute handles one line as if it had been typed at the prompt
func (l *Loop) Execute(ctx context.Context, line string) Result {
	if strings.TrimSpace(line) == "" {
		return Result{Status: StatusEmpty}
	}

	l.remember(line)

	result := l.registry.Dispatch(ctx, line, l.console)
	l.report(result)
	return result
}

func (l *Loop) remember(line string) {
	l.history.Add(line)
	if l.store == nil {
		return
	}
	if err := l.store.Append(line); err != nil {
		logging.Logger.Warn("Failed to persist shell history", "error", err)
	}
}

func (l *Loop) report(result Result) {
	switch result.Status {
	case StatusEmpty:
	case StatusNotFound:
		l.println(msgUnrecognized)
	case StatusInvalidArgs:
		l.println(result.Message)
	case StatusInternal:
		logging.Logger.Error("Shell dispatch failed", "verb", result.Verb, "error", result.Err)
		l.println(fmt.Sprintf(msgInternal, internalName(result.Err)))
	case StatusOK:
		if result.Message != "" {
			l.println(result.Message)
		}
		if result.Code != domain.ExitOK {
			l.println(fmt.Sprintf(msgNonZero, result.Code.Hex(), result.Code.Name()))
		}
	}
}

func (l *Loop) println(msg string) {
	if _, err := fmt.Fprintln(l.console, msg); err != nil {
		logging.Logger.Warn("Failed to write to console", "error", err)
	}
}

func internalName(err error) string {
	if err == nil {
		return domain.ErrInternal.Error()
	}
	return err.Error()
}
