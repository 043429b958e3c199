package repository

import (
	"context"
	"time"

	"shift-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftFilter narrows a shift listing. Zero values mean "no constraint".
type ShiftFilter struct {
	StaffID         *uuid.UUID
	Statuses        []models.ShiftStatus
	ExcludeStatuses []models.ShiftStatus
	Unassigned      bool
	From            *time.Time // inclusive
	To              *time.Time // inclusive
}

// ShiftRepositoryInterface is the shift registry. Existing shifts change only
// through CompareAndSwap; there is no unconditional update.
type ShiftRepositoryInterface interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	// List returns matching shifts in no particular order.
	List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error)
	// CompareAndSwap stores next only if the record still has expectedVersion.
	// It returns apperrors.ErrVersionConflict when the version moved and
	// apperrors.ErrShiftNotFound when the id is unknown.
	CompareAndSwap(ctx context.Context, id uuid.UUID, expectedVersion int64, next *models.Shift) (*models.Shift, error)
}

// ProjectRepositoryInterface defines the read-mostly project directory
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByName(ctx context.Context, name string) (*models.Project, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Project, error)
}

// OfferRepositoryInterface defines the read-mostly offer directory
type OfferRepositoryInterface interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	GetByName(ctx context.Context, name string) (*models.Offer, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Offer, error)
}

// StaffRepositoryInterface defines the staff directory
type StaffRepositoryInterface interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
}

// Store bundles the repositories of one storage backend
type Store struct {
	Shifts   ShiftRepositoryInterface
	Projects ProjectRepositoryInterface
	Offers   OfferRepositoryInterface
	Staff    StaffRepositoryInterface
}
