package commands

import (
	"fmt"

	"shift-marketplace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ReleaseCmd creates the release command
func ReleaseCmd(app *AppContext) *cobra.Command {
	var (
		email   string
		version int64
	)

	cmd := &cobra.Command{
		Use:   "release <shift-id>",
		Short: "Return an assigned shift to the marketplace",
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

			req := &service.ReleaseRequest{}
			if cmd.Flags().Changed("version") {
				req.Version = &version
			}

			shift, err := app.Shifts.Release(app.Ctx, actor, shiftID, req)
			if err != nil {
				return fmt.Errorf("failed to release shift: %w", err)
			}

			fmt.Fprintf(app.Out, "Released shift %s (now %s, v%d)\n", shift.ID, shift.Status, shift.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "as", "", "Email of the acting staff member or planner")
	cmd.Flags().Int64Var(&version, "version", 0, "Only release if the shift is still at this version")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}
