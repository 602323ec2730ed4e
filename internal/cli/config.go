package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"binminder/internal/config"
	"binminder/internal/domain"
	"binminder/internal/eventbus"
	"binminder/internal/logging"
)

func addConfig(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file.",
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := config.NewConfigService(ro.ConfigPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
			return nil
		},
	}

	force := false
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults and the built-in bins.",
		Example: `
binminder config init
binminder --config ./binminder.toml config init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, ro, force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file.")

	cmd.AddCommand(path, initCmd)
	topLevel.AddCommand(cmd)
}

func initConfig(cmd *cobra.Command, ro *rootOptions, force bool) error {
	bus := eventbus.New()
	stop := logging.Subscribe(bus, log.New(cmd.OutOrStdout(), "", 0))
	defer func() {
		bus.Close()
		stop()
	}()

	svc, err := config.NewConfigServiceWithBus(ro.ConfigPath, bus)
	if err != nil {
		return err
	}

	if _, err := os.Stat(svc.Path()); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
	}

	cfg := config.DefaultConfig()
	cfg.Bins = domain.DefaultBinCatalog().All()
	return svc.Save(cfg)
}
