package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/devcon/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Get  SettingsGetCmd  `cmd:"get" help:"Show a device setting"`
	Set  SettingsSetCmd  `cmd:"set" help:"Store a device setting (empty value clears it)"`
	List SettingsListCmd `cmd:"list" help:"List device settings"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Device settings (network credentials, project key, service URLs)")
	fmt.Println("live in the database; use 'devcon settings list' or 'devcon setup'.")
	return nil
}

// SettingsGetCmd shows one device setting
type SettingsGetCmd struct {
	Key    string `arg:"" help:"Setting key"`
	Reveal bool   `help:"Show secret values"`
}

// Run executes the get command
func (s *SettingsGetCmd) Run(cli *CLI) error {
	value, err := cli.Container.SettingsService.Get(context.Background(), s.Key)
	if err != nil {
		return err
	}
	if s.Reveal && value.Set {
		fmt.Println(value.Value)
		return nil
	}
	fmt.Println(value.Masked())
	return nil
}

// SettingsSetCmd stores one device setting
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key"`
	Value string `arg:"" optional:"" help:"New value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.Set(context.Background(), s.Key, s.Value)
}

// SettingsListCmd lists device settings
type SettingsListCmd struct{}

// Run executes the list command
func (s *SettingsListCmd) Run(cli *CLI) error {
	values, err := cli.Container.SettingsService.List(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%s\n", v.Key, v.Masked())
	}
	return w.Flush()
}
