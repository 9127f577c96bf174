package cmd

import (
	"errors"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in, run `fa login` or `fa register`")

// restoreSession revalidates the persisted credential and fails with a
// friendly message when no usable session exists. Callers are responsible
// for closing the session when the command finishes.
func restoreSession(cmd *cobra.Command, app *app) error {
	if err := app.session.Restore(cmd.Context()); err != nil {
		return err
	}

	if app.session.Snapshot().State != domain.StateAuthenticated {
		return errNotLoggedIn
	}

	return nil
}
