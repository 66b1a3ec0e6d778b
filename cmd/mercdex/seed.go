package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
	"github.com/KirkDiggler/mercdex/internal/roster"
)

func (a *app) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the file dataset into the redis cache",
		Long: `Read mercs.json and filters.json from the data directory and replace the
dataset stored in redis with them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			files, err := mercenary.NewFile(a.cfg.FileConfig())
			if err != nil {
				return err
			}

			listed, err := files.ListMercenaries(ctx, &mercenary.ListMercenariesInput{})
			if err != nil {
				return err
			}

			if _, err := roster.Load(listed.Mercenaries); err != nil {
				return errors.Wrap(err, "refusing to seed an invalid roster")
			}

			options, err := files.GetFilterOptions(ctx, &mercenary.GetFilterOptionsInput{})
			if err != nil && !errors.IsNotFound(err) {
				return err
			}

			client, cleanup, err := a.openRedis(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cache, err := mercenary.NewRedis(&mercenary.RedisConfig{Client: client})
			if err != nil {
				return err
			}

			input := &mercenary.SaveInput{Mercenaries: listed.Mercenaries}
			if options != nil {
				input.Options = options.Options
			}

			saved, err := cache.Save(ctx, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d mercenaries into %s\n", saved.Saved, a.cfg.RedisAddr)
			return nil
		},
	}
}
