package cmd

import (
	"fmt"
)

// HistoryCmd manages the persisted console history
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"list" help:"Show persisted command history" default:"1"`
	Clear HistoryClearCmd `cmd:"clear" help:"Remove persisted command history"`
}

// HistoryListCmd prints history lines, oldest first
type HistoryListCmd struct{}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	lines, err := cli.Container.HistoryStore.Load()
	if err != nil {
		return err
	}
	for i, line := range lines {
		fmt.Printf("%3d  %s\n", i+1, line)
	}
	return nil
}

// HistoryClearCmd empties the history file
type HistoryClearCmd struct{}

// Run executes the clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	if err := cli.Container.HistoryStore.Clear(); err != nil {
		return err
	}
	fmt.Println("History cleared")
	return nil
}
