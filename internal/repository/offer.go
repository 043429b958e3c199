package repository

import (
	"context"
	"errors"
	"fmt"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferRepository handles database operations for offers
type OfferRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Create creates a new offer
func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrOfferExists
		}
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// GetByID retrieves an offer by ID
func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// GetByName retrieves an offer by its unique name
func (r *OfferRepository) GetByName(ctx context.Context, name string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).First(&offer, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// GetByIDs retrieves all offers with the given IDs; unknown IDs are skipped
func (r *OfferRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Offer, error) {
	var offers []models.Offer
	if len(ids) == 0 {
		return offers, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	return offers, nil
}
