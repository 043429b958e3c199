package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TokenCmd creates the token command
func TokenCmd(app *AppContext) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token for a staff member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.Store.Staff.GetByEmail(app.Ctx, email)
			if err != nil {
				return fmt.Errorf("failed to find staff member %s: %w", email, err)
			}

			token, err := app.Tokens.GenerateJWT(staff)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			fmt.Fprintln(app.Out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "staff", "", "Staff member email")
	_ = cmd.MarkFlagRequired("staff")
	return cmd
}
