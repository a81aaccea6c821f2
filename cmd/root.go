package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VZ1308/EventManagementSystem/internal/config"
	"github.com/VZ1308/EventManagementSystem/internal/logging"
	"github.com/VZ1308/EventManagementSystem/internal/model"
	"github.com/VZ1308/EventManagementSystem/internal/notify"
	"github.com/VZ1308/EventManagementSystem/internal/service"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

// NewRootCmd builds the command tree. Without a subcommand it runs the menu.
func NewRootCmd() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:   "eventreg",
		Short: "Register events and their participants",
		Long: `eventreg keeps a registry of events and participants for the lifetime of
the process. Run it without arguments for the interactive menu, or use
"serve" to expose the same registry over HTTP.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(newMenuCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eventreg version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}

// newRegistry wires the notifier and the console observer into a Registry.
// Notices and observer output go to out.
func newRegistry(cfg config.Config, out io.Writer) *service.Registry {
	var notifier notify.Notifier = notify.Nop
	if cfg.NotifyEnabled {
		notifier = notify.NewEmailNotifier(out, cfg.NotifySender, logging.GetLogger("notify"))
	}

	registry := service.NewRegistry(notifier, service.WithLogger(logging.GetLogger("registry")))
	registry.OnParticipantAdded(func(_ context.Context, _ *service.Registry, p *model.Participant) error {
		log.Info().Int("participant_id", p.ID()).Str("participant", p.Name()).Msg("new registration")
		_, err := fmt.Fprintf(out, "New notification: %s was registered.\n", p.Name())
		return err
	})
	return registry
}
