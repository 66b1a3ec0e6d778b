package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/mercdex/internal/render"
)

func (a *app) newRosterCmd() *cobra.Command {
	var attackType, faction, subclass string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the roster grouped by faction",
		Long: `List every mercenary under its faction heading. When filters are given,
mercenaries that do not match are dimmed rather than hidden.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, sess, cleanup, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			filtered, err := svc.ApplyFilters(ctx, &catalog.ApplyFiltersInput{
				Session: sess,
				Filters: map[string]string{
					string(entities.FilterKeyAttackType): attackType,
					string(entities.FilterKeyFaction):    faction,
					string(entities.FilterKeySubclass):   subclass,
				},
			})
			if err != nil {
				return err
			}

			listed, err := svc.ListRoster(ctx, &catalog.ListRosterInput{Session: filtered.Session})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := render.Roster(out, listed.Groups, listed.Factions, listed.Matches); err != nil {
				return err
			}

			if !listed.Filters.IsZero() {
				matching := 0
				for _, ok := range listed.Matches {
					if ok {
						matching++
					}
				}
				fmt.Fprintf(out, "\n%d of %d match\n", matching, len(listed.Matches))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&attackType, "attack-type", "", "only highlight this attack type")
	cmd.Flags().StringVar(&faction, "faction", "", "only highlight this faction")
	cmd.Flags().StringVar(&subclass, "subclass", "", "only highlight this subclass")

	return cmd
}
