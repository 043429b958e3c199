package seed

import (
	"context"
	"testing"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"
	"shift-marketplace-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirFillsMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	counts, err := LoadDir(ctx, store, "testdata")
	require.NoError(t, err)
	assert.Equal(t, Counts{Staff: 2, Projects: 1, Offers: 1, Shifts: 4}, *counts)

	ben, err := store.Staff.GetByEmail(ctx, "ben@example.com")
	require.NoError(t, err)
	roster, err := store.Shifts.List(ctx, repository.ShiftFilter{StaffID: &ben.ID})
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, models.ShiftStatusAssigned, roster[0].Status)

	offer, err := store.Offers.GetByName(ctx, "Winter Market")
	require.NoError(t, err)
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	shifts, err := store.Shifts.List(ctx, repository.ShiftFilter{From: &day, To: &day})
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	for _, s := range shifts {
		if s.OfferID != nil {
			assert.Equal(t, offer.ID, *s.OfferID)
			assert.True(t, s.IsConcept)
		} else {
			assert.True(t, s.IsOfficeService)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := LoadDir(ctx, store, "testdata")
	require.NoError(t, err)
	again, err := LoadDir(ctx, store, "testdata")
	require.NoError(t, err)
	assert.Equal(t, Counts{}, *again)

	all, err := store.Shifts.List(ctx, repository.ShiftFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLoadRejectsBadRecords(t *testing.T) {
	testCases := []struct {
		name string
		file File
	}{
		{name: "unknown project", file: File{Shifts: []ShiftData{{Date: "2025-06-10", StartTime: "09:00", EndTime: "17:00", ProjectName: "Nowhere"}}}},
		{name: "bad date", file: File{Shifts: []ShiftData{{Date: "10/06/2025", StartTime: "09:00", EndTime: "17:00", OfficeServiceTitle: "Desk"}}}},
		{name: "unclassified shift", file: File{Shifts: []ShiftData{{Date: "2025-06-10", StartTime: "09:00", EndTime: "17:00"}}}},
		{name: "unknown role", file: File{Staff: []StaffData{{FullName: "Eve", Email: "eve@example.com", Role: "owner"}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), repository.NewMemoryStore(), &tc.file)
			assert.Error(t, err)
		})
	}
}

func TestUnclassifiedSeedShiftIsValidationError(t *testing.T) {
	_, err := buildShift(ShiftData{Date: "2025-06-10", StartTime: "09:00", EndTime: "17:00"}, nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnclassifiedShift)
}

func TestReadDirMissing(t *testing.T) {
	_, err := ReadDir("testdata/absent")
	assert.Error(t, err)
}
