package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/orchestrators/catalog"
)

func (a *app) newExportCmd() *cobra.Command {
	var (
		outPath     string
		progression entities.Progression
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export derived stats for the whole roster as xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, sess, cleanup, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err = sess.Select(progression)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return errors.Wrapf(err, "failed to create %s", outPath)
			}
			defer func() { _ = f.Close() }()

			output, err := svc.ExportRoster(ctx, &catalog.ExportRosterInput{Session: sess, Writer: f})
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, "failed to close %s", outPath)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d mercenaries to %s\n", output.Rows, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "xlsx file to write (required)")
	_ = cmd.MarkFlagRequired("out") // nolint:errcheck // safe to ignore in init
	progressionFlags(cmd, &progression)

	return cmd
}
