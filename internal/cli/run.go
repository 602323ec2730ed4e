package cli

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"binminder/internal/domain"
	"binminder/internal/eventbus"
	"binminder/internal/logging"
	"binminder/internal/ui"
	"binminder/internal/ui/controller"
	"binminder/internal/ui/state"
)

type runOptions struct {
	selectionOptions
	LogFile string
}

func (o *runOptions) addFlags(cmd *cobra.Command) {
	o.selectionOptions.addFlags(cmd, false)
	cmd.Flags().StringVar(&o.LogFile, "log-file", "", "Write the log here instead of the configured log_file.")
}

func addRun(topLevel *cobra.Command, ro *rootOptions) {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the reminder widget (the default command).",
		Example: `
binminder run
binminder run --date 2024-05-15 --bin 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), ro, o)
		},
	}
	o.addFlags(cmd)

	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context, ro *rootOptions, o *runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, svc, err := loadConfig(ro)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	// Bad flags are rejected before the terminal is taken over
	startup, err := o.Commands()
	if err != nil {
		return err
	}

	logFile := cfg.LogFile
	if o.LogFile != "" {
		logFile = o.LogFile
	}
	closer, err := logging.Setup(logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	bus := eventbus.New()
	stopLogging := logging.Subscribe(bus, nil)
	defer func() {
		bus.Close()
		stopLogging()
	}()
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path(), Bins: len(cfg.Bins)})

	ctrl := controller.New(state.NewAppState(domain.Today()), catalog, bus)
	ctrl.Dispatch(startup...)

	model := ui.NewModel(bus, cfg, ctrl)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Acknowledge submitted reminders in the UI
	unsubscribe := bus.Subscribe(eventbus.EventReminderSubmitted, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	log.Printf("Starting UI at %s", ctrl.Snapshot().Date)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
