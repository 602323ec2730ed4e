package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"binminder/internal/domain"
	"binminder/internal/ui/controller"
	"binminder/internal/ui/state"
)

func addSnapshot(topLevel *cobra.Command, ro *rootOptions) {
	o := &selectionOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Apply the selection flags to a fresh widget and print the resulting state as JSON.",
		Example: `
binminder snapshot --edit --date 2024-05-15 --bin 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(ro)
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			cmds, err := o.Commands()
			if err != nil {
				return err
			}

			ctrl := controller.New(state.NewAppState(domain.Today()), catalog, nil)
			snap := ctrl.Dispatch(cmds...)

			b, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	o.addFlags(cmd, true)

	topLevel.AddCommand(cmd)
}
