package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				// Fall back to the cached record so identity still shows
				// when the backend is unreachable.
				record, loadErr := app.records.Load(cmd.Context())
				if loadErr != nil || record.Profile.Email == "" {
					return err
				}
				_, printErr := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s plan, cached)\n",
					record.Profile.Email, planName(record.Profile.IsPremium))
				return printErr
			}

			snapshot := app.session.Snapshot()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s plan)\n",
				snapshot.Profile.Email, planName(snapshot.Profile.IsPremium))
			return err
		},
	}
}
