// Package cli holds the cobra command tree for the binminder binary.
package cli

import (
	"fmt"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"binminder/internal/config"
	"binminder/internal/ui/commands"
	"binminder/internal/ui/input"
)

// Set at build time with -ldflags "-X binminder/internal/cli.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions are shared by every subcommand
type rootOptions struct {
	ConfigPath string
}

// selectionOptions seed the controller before anything runs
type selectionOptions struct {
	Date string
	Bin  string
	Edit bool
}

func (o *selectionOptions) addFlags(cmd *cobra.Command, withEdit bool) {
	cmd.Flags().StringVar(&o.Date, "date", "", "Select this date (YYYY-MM-DD) on start.")
	cmd.Flags().StringVar(&o.Bin, "bin", "", "Select this bin index (0-2) on start.")
	if withEdit {
		cmd.Flags().BoolVar(&o.Edit, "edit", false, "Start in edit mode.")
	}
}

// Commands validates the flags and turns them into controller commands
func (o *selectionOptions) Commands() ([]commands.Command, error) {
	var cmds []commands.Command
	if o.Edit {
		cmds = append(cmds, commands.StartEdit{})
	}
	if o.Date != "" {
		c, err := input.ParseSelectDate(o.Date)
		if err != nil {
			return nil, fmt.Errorf("--date: %w", err)
		}
		cmds = append(cmds, c)
	}
	if o.Bin != "" {
		c, err := input.ParseSelectBin(o.Bin)
		if err != nil {
			return nil, fmt.Errorf("--bin: %w", err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// New builds the root command. Without a subcommand it runs the UI.
func New() *cobra.Command {
	ro := &rootOptions{}
	run := &runOptions{}

	cmd := &cobra.Command{
		Use:          "binminder",
		Short:        base.Wrap80("Pick a bin and a collection day, and note a reminder for it."),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), ro, run)
		},
	}
	cmd.PersistentFlags().StringVarP(&ro.ConfigPath, "config", "c", "", "Config file (default "+config.DefaultPath()+").")
	run.addFlags(cmd)

	AddCommands(cmd, ro)
	return cmd
}

// AddCommands registers the subcommands on topLevel
func AddCommands(topLevel *cobra.Command, ro *rootOptions) {
	addRun(topLevel, ro)
	addCatalog(topLevel, ro)
	addSnapshot(topLevel, ro)
	addConfig(topLevel, ro)
	addVersion(topLevel)
}

// loadConfig reads the config named by the --config flag
func loadConfig(ro *rootOptions) (*config.Config, config.ConfigService, error) {
	svc, err := config.NewConfigService(ro.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, svc, nil
}
