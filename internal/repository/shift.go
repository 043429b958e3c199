package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository is the Postgres-backed shift registry
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a new shift. The model hook validates invariants and sets version 1.
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	if err := r.db.WithContext(ctx).Create(shift).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrShiftExists
		}
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &shift, nil
}

// List retrieves shifts matching the filter
func (r *ShiftRepository) List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error) {
	query := r.db.WithContext(ctx).Model(&models.Shift{})

	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.Unassigned {
		query = query.Where("staff_id IS NULL")
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if len(filter.ExcludeStatuses) > 0 {
		query = query.Where("status NOT IN ?", filter.ExcludeStatuses)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format(models.DateLayout))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format(models.DateLayout))
	}

	var shifts []models.Shift
	if err := query.Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// CompareAndSwap writes the lifecycle fields of next in a single conditional
// UPDATE guarded by the version column. Only status, staff and audit fields are
// written; everything else on the record is owned by the upstream scheduler.
func (r *ShiftRepository) CompareAndSwap(ctx context.Context, id uuid.UUID, expectedVersion int64, next *models.Shift) (*models.Shift, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	updated := next.Clone()
	updated.ID = id
	updated.Version = expectedVersion + 1
	updated.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"status":     updated.Status,
			"staff_id":   updated.StaffID,
			"version":    updated.Version,
			"updated_at": updated.UpdatedAt,
			"updated_by": updated.UpdatedBy,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update shift: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Shift{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check shift: %w", err)
		}
		if count == 0 {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, apperrors.ErrVersionConflict
	}

	return updated, nil
}
