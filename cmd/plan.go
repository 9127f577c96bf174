package cmd

import (
	"fmt"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "plan <free|premium>",
		Short:     "Switch between the free and premium plan",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.PlanFree), string(domain.PlanPremium)},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.session.Close()

			plan := domain.Plan(args[0])
			if plan != domain.PlanFree && plan != domain.PlanPremium {
				return fmt.Errorf("unknown plan %q (expected free or premium)", args[0])
			}

			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			if err := app.session.SetPlan(cmd.Context(), plan == domain.PlanPremium); err != nil {
				return fmt.Errorf("change plan: %w", err)
			}

			snapshot := app.session.Snapshot()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Plan is now %s. %s\n",
				planName(snapshot.Profile.IsPremium),
				snapshot.Usage.QuotaLine(snapshot.Profile.IsPremium))
			return err
		},
	}

	return cmd
}
