package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/engine"
	"github.com/KirkDiggler/mercdex/internal/render"
)

func (a *app) newRangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Print the selectable levels and reboots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.Ranges(cmd.OutOrStdout(),
				engine.LevelRange(a.cfg.MaxLevel),
				engine.RebootRange(a.cfg.MaxReboot))
		},
	}
}
