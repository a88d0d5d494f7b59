package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// OtaCmd inspects recorded update sessions
type OtaCmd struct {
	History OtaHistoryCmd `cmd:"history" help:"List recent update sessions and counters" default:"1"`
}

// OtaHistoryCmd lists session records
type OtaHistoryCmd struct {
	Limit int `help:"Maximum number of sessions to show" default:"20"`
}

// Run executes the history command
func (o *OtaHistoryCmd) Run(cli *CLI) error {
	ctx := context.Background()
	metrics := cli.Container.MetricsService

	records, err := metrics.History(ctx, o.Limit)
	if err != nil {
		return err
	}
	counters, err := metrics.Counters(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No update sessions recorded")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tRESULT")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.ID, humanize.Time(r.StartedAt), r.Duration, r.ResultCode)
		}
		w.Flush()
	}

	if len(counters) == 0 {
		return nil
	}
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTER\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, counters[name])
	}
	return w.Flush()
}
