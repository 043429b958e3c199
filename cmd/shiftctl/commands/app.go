package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"shift-marketplace-backend/internal/auth"
	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/service"

	"github.com/spf13/cobra"
)

// DefaultTokenTTL is the lifetime of tokens minted by the token command
const DefaultTokenTTL = 8 * time.Hour

// AppContext holds the dependencies shared by all commands
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Store  *repository.Store
	Shifts service.ShiftServiceInterface
	Tokens *auth.AuthService
	Out    io.Writer
}

// Register adds every command to root
func Register(root *cobra.Command, app *AppContext) {
	root.AddCommand(TokenCmd(app))
	root.AddCommand(RosterCmd(app))
	root.AddCommand(MarketplaceCmd(app))
	root.AddCommand(ReleaseCmd(app))
	root.AddCommand(CancelCmd(app))
}

// actorFor resolves a staff email to the actor used for service calls
func (app *AppContext) actorFor(email string) (service.Actor, error) {
	staff, err := app.Store.Staff.GetByEmail(app.Ctx, email)
	if err != nil {
		return service.Actor{}, fmt.Errorf("failed to find staff member %s: %w", email, err)
	}
	return service.Actor{StaffID: staff.ID, Role: staff.Role}, nil
}

func (app *AppContext) printShifts(shifts []service.ShiftResponse) {
	for _, s := range shifts {
		staff := "-"
		if s.StaffID != nil {
			staff = s.StaffID.String()
		}
		flags := ""
		if s.Context.IsProvisional {
			flags = " [provisional]"
		}
		fmt.Fprintf(app.Out, "- %s %s-%s %-12s %-30s %-11s v%d staff=%s id=%s%s\n",
			s.Date, s.StartTime, s.EndTime, s.Role, s.Context.Title, s.Status, s.Version, staff, s.ID, flags)
	}
}
