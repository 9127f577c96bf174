package cmd

import (
	sessionrender "github.com/funanimation/fa-cli/internal/adapters/render/session"
	"github.com/funanimation/fa-cli/internal/adapters/render/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch job progress and quota live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			return watch.Run(app.session, sessionrender.RenderOptions{MaxJobs: limit})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Show at most this many jobs (0 = all)")

	return cmd
}
