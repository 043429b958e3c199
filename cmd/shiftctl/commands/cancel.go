package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CancelCmd creates the cancel command
func CancelCmd(app *AppContext) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "cancel <shift-id>",
		Short: "Cancel a shift (planner or admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid shift id %q: %w", args[0], err)
			}
			actor, err := app.actorFor(email)
			if err != nil {
				return err
			}

			shift, err := app.Shifts.Cancel(app.Ctx, actor, shiftID)
			if err != nil {
				return fmt.Errorf("failed to cancel shift: %w", err)
			}

			fmt.Fprintf(app.Out, "Cancelled shift %s (v%d)\n", shift.ID, shift.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "as", "", "Email of the acting planner")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}
