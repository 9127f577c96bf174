package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *app) *cobra.Command {
	var prompt string
	var style string
	var camera string
	var duration string
	var voice string
	var continueProject bool
	var projectID string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Submit a new text-to-video generation job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			durationSeconds, err := strconv.Atoi(duration)
			if err != nil {
				return domain.NewValidationError("duration", fmt.Sprintf("duration %q is not a number", duration))
			}

			scene := domain.Scene{
				Prompt:          prompt,
				Style:           style,
				CameraPreset:    camera,
				DurationSeconds: durationSeconds,
				VoiceID:         voice,
			}

			// Continuation needs the current project index before a project
			// can be selected.
			if continueProject {
				app.session.RefreshJobs(cmd.Context())
				if projectID != "" {
					app.session.SelectProject(projectID)
				}
			}

			submit := func(ctx context.Context) error {
				return app.session.Submit(ctx, scene, continueProject)
			}
			if err := runSubmitSpinner(cmd.Context(), cmd.ErrOrStderr(), submit); err != nil {
				return err
			}

			snapshot := app.session.Snapshot()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Job submitted. %s\n",
				snapshot.Usage.QuotaLine(snapshot.Profile.IsPremium))
			return err
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Scene description")
	cmd.Flags().StringVar(&style, "style", "isometric-pixel", "Visual style")
	cmd.Flags().StringVar(&camera, "camera", "static", "Camera preset")
	cmd.Flags().StringVar(&duration, "duration", "10", "Clip length in seconds (5-120)")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice ID for narration (optional)")
	cmd.Flags().BoolVar(&continueProject, "continue", false, "Continue the selected project instead of starting a new one")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID to continue (with --continue)")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
