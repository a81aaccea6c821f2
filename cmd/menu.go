package main

import (
	"github.com/spf13/cobra"

	"github.com/VZ1308/EventManagementSystem/internal/config"
	"github.com/VZ1308/EventManagementSystem/internal/menu"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive console menu (default)",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	registry := newRegistry(cfg, out)
	return menu.New(registry, cmd.InOrStdin(), out).Run(cmd.Context())
}
