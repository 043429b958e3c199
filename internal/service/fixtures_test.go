package service_test

import (
	"context"
	"testing"
	"time"

	"shift-marketplace-backend/internal/database/models"
	"shift-marketplace-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture seeds an in-memory store for service tests
type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *repository.Store
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, ctx: context.Background(), store: repository.NewMemoryStore()}
}

func day(date string) time.Time {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return d
}

func (f *fixture) staff(name string, role models.StaffRole) *models.Staff {
	s := &models.Staff{FullName: name, Email: name + "@example.com", Role: role, IsActive: true}
	require.NoError(f.t, f.store.Staff.Create(f.ctx, s))
	return s
}

func (f *fixture) project(name string) *models.Project {
	p := &models.Project{Name: name, Location: name + " grounds", ContactPerson: "Site lead", ContactPhone: "555-0100"}
	require.NoError(f.t, f.store.Projects.Create(f.ctx, p))
	return p
}

func (f *fixture) offer(name string, status models.OfferStatus) *models.Offer {
	o := &models.Offer{Name: name, Location: name + " hall", Status: status}
	require.NoError(f.t, f.store.Offers.Create(f.ctx, o))
	return o
}

func (f *fixture) shift(date, start string, opts ...func(*models.Shift)) *models.Shift {
	s := &models.Shift{Date: day(date), StartTime: start, EndTime: "23:00", Role: "steward"}
	for _, opt := range opts {
		opt(s)
	}
	// unlinked fixtures default to the operations desk
	if s.ProjectID == nil && s.OfferID == nil && !s.IsOfficeService {
		officeService("Operations desk")(s)
	}
	require.NoError(f.t, f.store.Shifts.Create(f.ctx, s))
	return s
}

func forProject(p *models.Project) func(*models.Shift) {
	return func(s *models.Shift) { s.ProjectID = &p.ID }
}

func forOffer(o *models.Offer) func(*models.Shift) {
	return func(s *models.Shift) { s.OfferID = &o.ID; s.IsConcept = true }
}

func officeService(title string) func(*models.Shift) {
	return func(s *models.Shift) { s.IsOfficeService = true; s.OfficeServiceTitle = title }
}

func (f *fixture) reload(id uuid.UUID) *models.Shift {
	s, err := f.store.Shifts.GetByID(f.ctx, id)
	require.NoError(f.t, err)
	return s
}
