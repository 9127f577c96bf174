package cmd

import (
	"fmt"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing Funanimation account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := app.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			return printSignedIn(cmd, app)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Funanimation account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.session.Close()

			if err := app.session.Register(cmd.Context(), email, password); err != nil {
				return err
			}

			return printSignedIn(cmd, app)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (6 characters minimum)")

	return cmd
}

func printSignedIn(cmd *cobra.Command, app *app) error {
	snapshot := app.session.Snapshot()
	if snapshot.State != domain.StateAuthenticated {
		return domain.ErrNotAuthenticated
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s plan)\n",
		snapshot.Profile.Email, planName(snapshot.Profile.IsPremium))
	return err
}

func planName(premium bool) string {
	return string(domain.PlanFor(premium))
}
