package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"shift-marketplace-backend/internal/auth"
	"shift-marketplace-backend/internal/database/models"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*AppContext
	out     *bytes.Buffer
	worker  *models.Staff
	planner *models.Staff
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	tokens, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "cli-secret", Issuer: "shift-identity", TokenTTL: DefaultTokenTTL})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := &testApp{
		AppContext: &AppContext{
			Ctx:    ctx,
			Store:  store,
			Tokens: tokens,
			Shifts: service.NewShiftService(store, service.ShiftServiceConfig{ClaimMaxAttempts: 3, ClaimTimeout: time.Second}, validator.New()),
			Out:    out,
		},
		out: out,
	}

	app.worker = &models.Staff{FullName: "Ada Field", Email: "ada@example.com", Role: models.StaffRoleStaff}
	app.planner = &models.Staff{FullName: "Cleo Planner", Email: "cleo@example.com", Role: models.StaffRolePlanner}
	require.NoError(t, store.Staff.Create(ctx, app.worker))
	require.NoError(t, store.Staff.Create(ctx, app.planner))
	return app
}

func (app *testApp) shift(t *testing.T) *models.Shift {
	t.Helper()
	shift := &models.Shift{
		Date:               time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		EndTime:            "17:00",
		Role:               "steward",
		IsOfficeService:    true,
		OfficeServiceTitle: "Operations desk",
		Status:             models.ShiftStatusOpen,
	}
	require.NoError(t, app.Store.Shifts.Create(app.Ctx, shift))
	return shift
}

func (app *testApp) run(args ...string) error {
	root := &cobra.Command{Use: "shiftctl", SilenceUsage: true, SilenceErrors: true}
	Register(root, app.AppContext)
	root.SetArgs(args)
	root.SetOut(app.out)
	return root.Execute()
}

func TestTokenCommand(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.run("token", "--staff", "ada@example.com"))
	claims, err := app.Tokens.ValidateJWT(string(bytes.TrimSpace(app.out.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, app.worker.ID.String(), claims.StaffID)

	assert.Error(t, app.run("token", "--staff", "nobody@example.com"))
	assert.Error(t, app.run("token"), "staff flag is required")
}

func TestRosterAndMarketplaceCommands(t *testing.T) {
	app := newTestApp(t)
	shift := app.shift(t)

	require.NoError(t, app.run("marketplace"))
	assert.Contains(t, app.out.String(), "Marketplace: 1 open shifts")
	assert.Contains(t, app.out.String(), shift.ID.String())

	_, err := app.Shifts.Claim(app.Ctx, service.Actor{StaffID: app.worker.ID, Role: app.worker.Role}, shift.ID)
	require.NoError(t, err)

	app.out.Reset()
	require.NoError(t, app.run("roster", "--staff", "ada@example.com"))
	assert.Contains(t, app.out.String(), "1 shifts")

	app.out.Reset()
	require.NoError(t, app.run("marketplace", "--by-date"))
	assert.Empty(t, app.out.String())
}

func TestReleaseCommand(t *testing.T) {
	app := newTestApp(t)
	shift := app.shift(t)
	_, err := app.Shifts.Claim(app.Ctx, service.Actor{StaffID: app.worker.ID, Role: app.worker.Role}, shift.ID)
	require.NoError(t, err)

	err = app.run("release", shift.ID.String(), "--as", "cleo@example.com", "--version", "1")
	assert.Error(t, err, "stale version must not release")

	require.NoError(t, app.run("release", shift.ID.String(), "--as", "cleo@example.com", "--version", "2"))
	assert.Contains(t, app.out.String(), "now open")

	assert.Error(t, app.run("release", "not-a-uuid", "--as", "cleo@example.com"))
}

func TestCancelCommand(t *testing.T) {
	app := newTestApp(t)
	shift := app.shift(t)

	assert.Error(t, app.run("cancel", shift.ID.String(), "--as", "ada@example.com"))
	require.NoError(t, app.run("cancel", shift.ID.String(), "--as", "cleo@example.com"))
	assert.Contains(t, app.out.String(), "Cancelled shift")
}
