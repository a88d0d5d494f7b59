package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// TraceCmd inspects trace events and log collections
type TraceCmd struct {
	List   TraceListCmd   `cmd:"list" help:"List recorded trace events" default:"1"`
	Upload TraceUploadCmd `cmd:"upload" help:"Upload pending log collections"`
}

// TraceListCmd lists trace events
type TraceListCmd struct {
	Limit int           `help:"Maximum number of events to show" default:"50"`
	Since time.Duration `help:"Only show events newer than this (0 shows all)" default:"0s"`
}

// Run executes the list command
func (t *TraceListCmd) Run(cli *CLI) error {
	var since time.Time
	if t.Since > 0 {
		since = time.Now().Add(-t.Since)
	}

	events, err := cli.Container.DiagnosticsService.Events(context.Background(), since, t.Limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No trace events recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tREASON\tMESSAGE")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, humanize.Time(e.CreatedAt), e.Reason, e.Message)
	}
	return w.Flush()
}

// TraceUploadCmd publishes pending log collections
type TraceUploadCmd struct{}

// Run executes the upload command
func (t *TraceUploadCmd) Run(cli *CLI) error {
	uploaded, err := cli.Container.DiagnosticsService.UploadPending(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %d log collection(s)\n", uploaded)
	return nil
}
