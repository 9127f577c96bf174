package cmd

import (
	"encoding/json"
	"fmt"

	sessionrender "github.com/funanimation/fa-cli/internal/adapters/render/session"
	"github.com/spf13/cobra"
)

func newJobsCmd(app *app) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List your generation jobs and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			app.session.RefreshJobs(cmd.Context())
			app.session.RefreshUsage(cmd.Context())
			snapshot := app.session.Snapshot()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot.Jobs)
			}

			rendered, err := app.renderSnapshot(snapshot, sessionrender.RenderOptions{MaxJobs: limit})
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many jobs (0 = all)")

	return cmd
}

func newProjectsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects derived from your job history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			app.session.RefreshJobs(cmd.Context())
			snapshot := app.session.Snapshot()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot.Projects)
			}

			if len(snapshot.Projects) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No projects yet")
				return err
			}

			for _, project := range snapshot.Projects {
				marker := " "
				if project.ID == snapshot.SelectedProjectID {
					marker = ">"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", marker, project.Title, project.ID); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
