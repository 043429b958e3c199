package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	staff.Email = strings.ToLower(staff.Email)
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrStaffExists
		}
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &staff, nil
}

// GetByEmail retrieves a staff member by email (case-insensitive)
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).First(&staff, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &staff, nil
}

// NewPostgresStore wires the gorm repositories into a Store
func NewPostgresStore(db *gorm.DB) *Store {
	return &Store{
		Shifts:   NewShiftRepository(db),
		Projects: NewProjectRepository(db),
		Offers:   NewOfferRepository(db),
		Staff:    NewStaffRepository(db),
	}
}
