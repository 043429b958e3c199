package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MarketplaceCmd creates the marketplace command
func MarketplaceCmd(app *AppContext) *cobra.Command {
	var byDate bool

	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "List open shifts that can be claimed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !byDate {
				market, err := app.Shifts.GetMarketplace(app.Ctx)
				if err != nil {
					return fmt.Errorf("failed to list marketplace: %w", err)
				}
				fmt.Fprintf(app.Out, "Marketplace: %d open shifts\n", market.Total)
				app.printShifts(market.Shifts)
				return nil
			}

			groups, err := app.Shifts.GetMarketplaceByDate(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list marketplace: %w", err)
			}
			for _, g := range groups {
				fmt.Fprintf(app.Out, "%s: %d confirmed, %d provisional\n", g.Date, len(g.Confirmed), len(g.Provisional))
				app.printShifts(g.Confirmed)
				app.printShifts(g.Provisional)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byDate, "by-date", false, "Group shifts per date into confirmed and provisional")
	return cmd
}
