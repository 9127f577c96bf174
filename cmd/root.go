package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fa",
		Short:         "Funanimation CLI (fa): generate text-to-video jobs from the terminal",
		Long:          "fa (Funanimation CLI) manages your Funanimation session, submits text-to-video generation jobs, tracks the weekly quota, and watches job progress from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newGenerateCmd(app),
		newJobsCmd(app),
		newProjectsCmd(app),
		newUsageCmd(app),
		newPlanCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}
