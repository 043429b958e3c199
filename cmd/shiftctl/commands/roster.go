package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RosterCmd creates the roster command
func RosterCmd(app *AppContext) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the shifts assigned to a staff member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actorFor(email)
			if err != nil {
				return err
			}

			roster, err := app.Shifts.GetMyRoster(app.Ctx, actor)
			if err != nil {
				return fmt.Errorf("failed to list roster: %w", err)
			}

			fmt.Fprintf(app.Out, "Roster of %s: %d shifts\n", email, roster.Total)
			app.printShifts(roster.Shifts)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "staff", "", "Staff member email")
	_ = cmd.MarkFlagRequired("staff")
	return cmd
}
