package service

import (
	"context"
	"time"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"
	"shift-marketplace-backend/internal/logger"
	"shift-marketplace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Actor is the authenticated staff member performing an operation
type Actor struct {
	StaffID uuid.UUID
	Role    models.StaffRole
}

// ShiftServiceConfig tunes the write path
type ShiftServiceConfig struct {
	ClaimMaxAttempts int
	ClaimTimeout     time.Duration
}

// ShiftService exposes the roster, marketplace and lifecycle operations
type ShiftService struct {
	staffRepo   repository.StaffRepositoryInterface
	coordinator *ClaimCoordinator
	queries     *MarketplaceQueries
	validator   *validator.Validate
	timeout     time.Duration
}

// NewShiftService creates a new shift service on top of a store
func NewShiftService(store *repository.Store, cfg ShiftServiceConfig, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		staffRepo:   store.Staff,
		coordinator: NewClaimCoordinator(store.Shifts, store.Offers, cfg.ClaimMaxAttempts),
		queries:     NewMarketplaceQueries(store.Shifts, store.Projects, store.Offers),
		validator:   validator,
		timeout:     cfg.ClaimTimeout,
	}
}

// ReleaseRequest represents the optional body of a release call
type ReleaseRequest struct {
	Version *int64 `json:"version,omitempty" validate:"omitempty,min=1"`
}

// ShiftResponse represents a shift with its resolved display context
type ShiftResponse struct {
	ID              uuid.UUID          `json:"id"`
	Date            string             `json:"date"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	Role            string             `json:"role"`
	IsOfficeService bool               `json:"is_office_service"`
	ProjectID       *uuid.UUID         `json:"project_id,omitempty"`
	OfferID         *uuid.UUID         `json:"offer_id,omitempty"`
	StaffID         *uuid.UUID         `json:"staff_id,omitempty"`
	IsConcept       bool               `json:"is_concept"`
	Status          models.ShiftStatus `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	Version         int64              `json:"version"`
	Context         DisplayContext     `json:"context"`
	UpdatedAt       string             `json:"updated_at"`
	UpdatedBy       string             `json:"updated_by,omitempty"`
}

// ShiftListResponse represents a list of shifts
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

// DateGroupResponse represents one calendar day of the marketplace
type DateGroupResponse struct {
	Date        string          `json:"date"`
	Confirmed   []ShiftResponse `json:"confirmed"`
	Provisional []ShiftResponse `json:"provisional"`
}

// GetMyRoster returns the caller's own roster
func (s *ShiftService) GetMyRoster(ctx context.Context, actor Actor) (*ShiftListResponse, error) {
	return s.roster(ctx, actor.StaffID)
}

// GetStaffRoster returns another staff member's roster; planners only
func (s *ShiftService) GetStaffRoster(ctx context.Context, actor Actor, staffID uuid.UUID) (*ShiftListResponse, error) {
	if !actor.Role.CanPlan() && actor.StaffID != staffID {
		return nil, apperrors.ErrPlannerRequired
	}
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.roster(ctx, staffID)
}

func (s *ShiftService) roster(ctx context.Context, staffID uuid.UUID) (*ShiftListResponse, error) {
	resolved, err := s.queries.MyRoster(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toListResponse(resolved), nil
}

// GetMarketplace returns every claimable shift
func (s *ShiftService) GetMarketplace(ctx context.Context) (*ShiftListResponse, error) {
	resolved, err := s.queries.OpenMarketplace(ctx)
	if err != nil {
		return nil, err
	}
	return toListResponse(resolved), nil
}

// GetMarketplaceByDate returns the marketplace grouped per day into confirmed and provisional shifts
func (s *ShiftService) GetMarketplaceByDate(ctx context.Context) ([]DateGroupResponse, error) {
	resolved, err := s.queries.OpenMarketplace(ctx)
	if err != nil {
		return nil, err
	}

	contexts := make(map[uuid.UUID]DisplayContext, len(resolved))
	shifts := make([]models.Shift, len(resolved))
	for i, r := range resolved {
		contexts[r.Shift.ID] = r.Context
		shifts[i] = r.Shift
	}

	buckets := GroupByDate(shifts)
	groups := make([]DateGroupResponse, len(buckets))
	for i, bucket := range buckets {
		groups[i] = DateGroupResponse{
			Date:        bucket.Date,
			Confirmed:   make([]ShiftResponse, len(bucket.Confirmed)),
			Provisional: make([]ShiftResponse, len(bucket.Provisional)),
		}
		for j := range bucket.Confirmed {
			groups[i].Confirmed[j] = *toShiftResponse(&bucket.Confirmed[j], contexts[bucket.Confirmed[j].ID])
		}
		for j := range bucket.Provisional {
			groups[i].Provisional[j] = *toShiftResponse(&bucket.Provisional[j], contexts[bucket.Provisional[j].ID])
		}
	}
	return groups, nil
}

// GetShift returns one shift with its display context
func (s *ShiftService) GetShift(ctx context.Context, id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.coordinator.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withContext(ctx, shift)
}

// Claim assigns the caller to an open shift
func (s *ShiftService) Claim(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, actor.StaffID); err != nil {
		return nil, err
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	shift, err := s.coordinator.Claim(ctx, id, actor.StaffID)
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, shift, ShiftEventClaim), nil
}

// Release returns an assigned shift to the marketplace
func (s *ShiftService) Release(ctx context.Context, actor Actor, id uuid.UUID, req *ReleaseRequest) (*ShiftResponse, error) {
	var expected *int64
	if req != nil {
		if err := s.validator.Struct(req); err != nil {
			return nil, apperrors.NewValidationError("version", err.Error())
		}
		expected = req.Version
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	shift, err := s.coordinator.Release(ctx, id, actor.StaffID, expected, RequireAssignedOrPlanner(actor))
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, shift, ShiftEventRelease), nil
}

// Start marks an assigned shift as in progress
func (s *ShiftService) Start(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error) {
	return s.transition(ctx, actor, id, StartEvent(), RequireAssignedOrPlanner(actor))
}

// Complete marks a shift as completed
func (s *ShiftService) Complete(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error) {
	return s.transition(ctx, actor, id, CompleteEvent(), RequireAssignedOrPlanner(actor))
}

// Cancel voids a shift; planners only
func (s *ShiftService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*ShiftResponse, error) {
	return s.transition(ctx, actor, id, CancelEvent(), RequirePlanner(actor))
}

func (s *ShiftService) transition(ctx context.Context, actor Actor, id uuid.UUID, event ShiftEvent, guard ShiftGuard) (*ShiftResponse, error) {
	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	shift, err := s.coordinator.Transition(ctx, id, actor.StaffID, event, guard)
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, shift, event.Type), nil
}

func (s *ShiftService) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *ShiftService) withContext(ctx context.Context, shift *models.Shift) (*ShiftResponse, error) {
	display, err := s.queries.Resolve(ctx, shift)
	if err != nil {
		return nil, err
	}
	return toShiftResponse(shift, display), nil
}

// committed builds the response for a write that already succeeded. A failed lookup
// falls back to the context the shift carries itself.
func (s *ShiftService) committed(ctx context.Context, shift *models.Shift, event ShiftEventType) *ShiftResponse {
	ctx = context.WithoutCancel(ctx)
	display, err := s.queries.Resolve(ctx, shift)
	if err != nil {
		logger.WithContext(ctx).WithShift(shift.ID, string(event)).
			WithField("error", err.Error()).
			Warn("shift committed but display context lookup failed")
		display = ResolveContext(shift, nil, nil)
	}
	return toShiftResponse(shift, display)
}

func toListResponse(resolved []ResolvedShift) *ShiftListResponse {
	shifts := make([]ShiftResponse, len(resolved))
	for i := range resolved {
		shifts[i] = *toShiftResponse(&resolved[i].Shift, resolved[i].Context)
	}
	return &ShiftListResponse{Shifts: shifts, Total: len(shifts)}
}

// toShiftResponse converts a shift model to a response
func toShiftResponse(shift *models.Shift, display DisplayContext) *ShiftResponse {
	return &ShiftResponse{
		ID:              shift.ID,
		Date:            shift.DateKey(),
		StartTime:       shift.StartTime,
		EndTime:         shift.EndTime,
		Role:            shift.Role,
		IsOfficeService: shift.IsOfficeService,
		ProjectID:       shift.ProjectID,
		OfferID:         shift.OfferID,
		StaffID:         shift.StaffID,
		IsConcept:       shift.IsConcept,
		Status:          shift.Status,
		Notes:           shift.Notes,
		Version:         shift.Version,
		Context:         display,
		UpdatedAt:       shift.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:       shift.UpdatedBy,
	}
}
