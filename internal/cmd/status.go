package cmd

import (
	"fmt"

	"github.com/renato0307/devcon/internal/theme"
)

// StatusCmd prints the indicator for a tmux status bar
type StatusCmd struct {
	Plain bool `help:"Print the color name instead of a colored dot"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	color := cli.Container.StatusService.Indicator()
	if s.Plain {
		fmt.Print(color)
		return nil
	}
	fmt.Print(theme.RenderIndicator(color))
	return nil
}
