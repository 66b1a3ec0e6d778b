package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/mercdex/internal/render"
)

// progressionFlags binds --level and --reboot onto cmd
func progressionFlags(cmd *cobra.Command, p *entities.Progression) {
	def := entities.DefaultProgression()
	cmd.Flags().IntVar(&p.Level, "level", def.Level, "level, starting at 1")
	cmd.Flags().IntVar(&p.Reboot, "reboot", def.Reboot, "reboot count, starting at 0")
}

func (a *app) newShowCmd() *cobra.Command {
	var progression entities.Progression

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a mercenary's stats and skills",
		Long:  `Show one mercenary with stats and skill values derived at the chosen level and reboot.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, sess, cleanup, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			output, err := svc.GetMercenaryDetail(ctx, &catalog.GetMercenaryDetailInput{
				Session:     sess,
				Name:        args[0],
				Progression: &progression,
			})
			if err != nil {
				return err
			}

			return render.Detail(cmd.OutOrStdout(), output.Detail)
		},
	}

	progressionFlags(cmd, &progression)
	return cmd
}
