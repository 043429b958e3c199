package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MemoryShiftRepositoryTestSuite tests the in-memory shift registry
type MemoryShiftRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *MemoryShiftRepository
}

// SetupTest runs before each test
func (suite *MemoryShiftRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = NewMemoryShiftRepository()
}

func (suite *MemoryShiftRepositoryTestSuite) createShift(date string) *models.Shift {
	day, err := time.Parse(models.DateLayout, date)
	suite.Require().NoError(err)
	projectID := uuid.New()
	shift := &models.Shift{Date: day, StartTime: "09:00", EndTime: "17:00", Role: "host", ProjectID: &projectID}
	suite.Require().NoError(suite.repo.Create(suite.ctx, shift))
	return shift
}

func assigned(shift *models.Shift, staffID uuid.UUID) *models.Shift {
	next := shift.Clone()
	next.Status = models.ShiftStatusAssigned
	next.StaffID = &staffID
	return next
}

// TestCreateDefaults tests that a new shift starts open at version 1
func (suite *MemoryShiftRepositoryTestSuite) TestCreateDefaults() {
	shift := suite.createShift("2025-06-10")

	suite.NotEqual(uuid.Nil, shift.ID)
	suite.Equal(models.ShiftStatusOpen, shift.Status)
	suite.Equal(int64(1), shift.Version)
	suite.NotZero(shift.CreatedAt)
}

// TestCreateRejectsInvalid tests that invariants are enforced on insert
func (suite *MemoryShiftRepositoryTestSuite) TestCreateRejectsInvalid() {
	staffID := uuid.New()
	shift := &models.Shift{
		Date:      time.Now(),
		StartTime: "09:00",
		EndTime:   "17:00",
		StaffID:   &staffID,
	}
	err := suite.repo.Create(suite.ctx, shift)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateRejectsUnclassified tests that a shift must be an office service or carry a project or offer
func (suite *MemoryShiftRepositoryTestSuite) TestCreateRejectsUnclassified() {
	shift := &models.Shift{Date: time.Now(), StartTime: "09:00", EndTime: "17:00", Role: "host"}
	err := suite.repo.Create(suite.ctx, shift)
	suite.ErrorIs(err, apperrors.ErrUnclassifiedShift)
	suite.True(apperrors.IsValidation(err))

	shift.IsOfficeService = true
	shift.OfficeServiceTitle = "Front desk"
	suite.NoError(suite.repo.Create(suite.ctx, shift))
}

// TestGetByIDReturnsCopy tests that callers cannot mutate the registry through reads
func (suite *MemoryShiftRepositoryTestSuite) TestGetByIDReturnsCopy() {
	shift := suite.createShift("2025-06-10")

	got, err := suite.repo.GetByID(suite.ctx, shift.ID)
	suite.Require().NoError(err)
	got.Status = models.ShiftStatusCancelled

	again, err := suite.repo.GetByID(suite.ctx, shift.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ShiftStatusOpen, again.Status)
}

// TestGetByIDNotFound tests lookups of unknown ids
func (suite *MemoryShiftRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

// TestCompareAndSwap tests the version-guarded write
func (suite *MemoryShiftRepositoryTestSuite) TestCompareAndSwap() {
	shift := suite.createShift("2025-06-10")
	staffID := uuid.New()

	updated, err := suite.repo.CompareAndSwap(suite.ctx, shift.ID, 1, assigned(shift, staffID))
	suite.Require().NoError(err)
	suite.Equal(int64(2), updated.Version)
	suite.Equal(models.ShiftStatusAssigned, updated.Status)
	suite.True(updated.IsAssignedTo(staffID))

	_, err = suite.repo.CompareAndSwap(suite.ctx, shift.ID, 1, assigned(shift, uuid.New()))
	suite.ErrorIs(err, apperrors.ErrVersionConflict)

	stored, err := suite.repo.GetByID(suite.ctx, shift.ID)
	suite.Require().NoError(err)
	suite.True(stored.IsAssignedTo(staffID), "stale write must not overwrite the first assignment")
}

// TestCompareAndSwapNotFound tests writes to unknown ids
func (suite *MemoryShiftRepositoryTestSuite) TestCompareAndSwapNotFound() {
	shift := &models.Shift{Date: time.Now(), StartTime: "09:00", EndTime: "17:00", Status: models.ShiftStatusOpen, IsOfficeService: true}
	_, err := suite.repo.CompareAndSwap(suite.ctx, uuid.New(), 1, shift)
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

// TestCompareAndSwapRejectsInvalid tests that a broken next value is never stored
func (suite *MemoryShiftRepositoryTestSuite) TestCompareAndSwapRejectsInvalid() {
	shift := suite.createShift("2025-06-10")
	next := shift.Clone()
	next.Status = models.ShiftStatusAssigned

	_, err := suite.repo.CompareAndSwap(suite.ctx, shift.ID, 1, next)
	suite.True(apperrors.IsValidation(err))
}

// TestConcurrentCompareAndSwap tests that one writer wins per version
func (suite *MemoryShiftRepositoryTestSuite) TestConcurrentCompareAndSwap() {
	shift := suite.createShift("2025-06-10")

	const writers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins, conflicts := 0, 0
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repo.CompareAndSwap(suite.ctx, shift.ID, 1, assigned(shift, uuid.New()))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if errors.Is(err, apperrors.ErrVersionConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, wins)
	suite.Equal(writers-1, conflicts)
}

// TestListFilters tests staff, status and date filtering
func (suite *MemoryShiftRepositoryTestSuite) TestListFilters() {
	staffID := uuid.New()
	first := suite.createShift("2025-06-10")
	suite.createShift("2025-06-11")
	third := suite.createShift("2025-06-12")

	_, err := suite.repo.CompareAndSwap(suite.ctx, first.ID, 1, assigned(first, staffID))
	suite.Require().NoError(err)
	cancelled := third.Clone()
	cancelled.Status = models.ShiftStatusCancelled
	_, err = suite.repo.CompareAndSwap(suite.ctx, third.ID, 1, cancelled)
	suite.Require().NoError(err)

	mine, err := suite.repo.List(suite.ctx, ShiftFilter{StaffID: &staffID})
	suite.Require().NoError(err)
	suite.Len(mine, 1)
	suite.Equal(first.ID, mine[0].ID)

	open, err := suite.repo.List(suite.ctx, ShiftFilter{Statuses: []models.ShiftStatus{models.ShiftStatusOpen}, Unassigned: true})
	suite.Require().NoError(err)
	suite.Len(open, 1)

	notCancelled, err := suite.repo.List(suite.ctx, ShiftFilter{ExcludeStatuses: []models.ShiftStatus{models.ShiftStatusCancelled}})
	suite.Require().NoError(err)
	suite.Len(notCancelled, 2)

	from, _ := time.Parse(models.DateLayout, "2025-06-11")
	to, _ := time.Parse(models.DateLayout, "2025-06-12")
	ranged, err := suite.repo.List(suite.ctx, ShiftFilter{From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Len(ranged, 2)
}

// TestMemoryShiftRepositoryTestSuite runs the test suite
func TestMemoryShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryShiftRepositoryTestSuite))
}

// TestMemoryDirectories tests the in-memory project, offer and staff directories
func TestMemoryDirectories(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	project := &models.Project{Name: "Harbour Festival", Location: "Pier 4"}
	require.NoError(t, store.Projects.Create(ctx, project))
	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.ErrorIs(t, store.Projects.Create(ctx, &models.Project{Name: "Harbour Festival"}), apperrors.ErrProjectExists)

	offer := &models.Offer{Name: "Winter Market", Status: models.OfferStatusSent}
	require.NoError(t, store.Offers.Create(ctx, offer))
	offers, err := store.Offers.GetByIDs(ctx, []uuid.UUID{offer.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	staff := &models.Staff{FullName: "Ada Field", Email: "Ada@Example.com", Skills: []string{"first-aid"}}
	require.NoError(t, store.Staff.Create(ctx, staff))
	found, err := store.Staff.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)
	assert.Equal(t, models.StaffRoleStaff, found.Role)

	_, err = store.Projects.GetByName(ctx, "Unknown")
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
