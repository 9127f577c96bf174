package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show this week's generation quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			app.session.RefreshUsage(cmd.Context())
			snapshot := app.session.Snapshot()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot.Usage)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), snapshot.Usage.QuotaLine(snapshot.Profile.IsPremium))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
