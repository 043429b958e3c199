package service

import (
	"context"
	"errors"

	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"
	"shift-marketplace-backend/internal/logger"
	"shift-marketplace-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultClaimMaxAttempts bounds the read-verify-swap loop when no config is given
const DefaultClaimMaxAttempts = 3

// ShiftGuard inspects the freshly read shift before a transition is computed.
// Returning an error aborts the operation without a write.
type ShiftGuard func(shift *models.Shift) error

// ClaimCoordinator applies lifecycle events to single shifts using optimistic
// concurrency: read, verify, compute the next value, compare-and-swap, and
// re-read on a version conflict up to maxAttempts times.
type ClaimCoordinator struct {
	shifts      repository.ShiftRepositoryInterface
	offers      repository.OfferRepositoryInterface
	maxAttempts int
}

// NewClaimCoordinator creates a new claim coordinator
func NewClaimCoordinator(shifts repository.ShiftRepositoryInterface, offers repository.OfferRepositoryInterface, maxAttempts int) *ClaimCoordinator {
	if maxAttempts < 1 {
		maxAttempts = DefaultClaimMaxAttempts
	}
	return &ClaimCoordinator{
		shifts:      shifts,
		offers:      offers,
		maxAttempts: maxAttempts,
	}
}

// mutation describes one lifecycle write
type mutation struct {
	shiftID uuid.UUID
	event   ShiftEvent
	actorID uuid.UUID
	// pinned is the version the caller last observed; when set there is no retry
	pinned *int64
	guards []ShiftGuard
}

// Claim assigns staffID to an open shift. Exactly one of any number of
// concurrent claims on the same shift succeeds; the others receive
// ErrShiftAlreadyClaimed or, if every attempt lost a race, ErrShiftContention.
func (c *ClaimCoordinator) Claim(ctx context.Context, shiftID, staffID uuid.UUID) (*models.Shift, error) {
	return c.apply(ctx, mutation{
		shiftID: shiftID,
		event:   ClaimEvent(staffID),
		actorID: staffID,
		guards:  []ShiftGuard{requireOpen, c.requireNotVoided(ctx)},
	})
}

// Release returns an assigned shift to the marketplace. When expectedVersion is
// given the release only succeeds against that exact version.
func (c *ClaimCoordinator) Release(ctx context.Context, shiftID, actorID uuid.UUID, expectedVersion *int64, guards ...ShiftGuard) (*models.Shift, error) {
	return c.apply(ctx, mutation{
		shiftID: shiftID,
		event:   ReleaseEvent(),
		actorID: actorID,
		pinned:  expectedVersion,
		guards:  guards,
	})
}

// Transition applies a non-claim event (start, complete, cancel) to a shift
func (c *ClaimCoordinator) Transition(ctx context.Context, shiftID, actorID uuid.UUID, event ShiftEvent, guards ...ShiftGuard) (*models.Shift, error) {
	if event.Type == ShiftEventClaim {
		return c.Claim(ctx, shiftID, event.StaffID)
	}
	return c.apply(ctx, mutation{
		shiftID: shiftID,
		event:   event,
		actorID: actorID,
		guards:  guards,
	})
}

func (c *ClaimCoordinator) apply(ctx context.Context, m mutation) (*models.Shift, error) {
	log := logger.WithContext(ctx).WithShift(m.shiftID, string(m.event.Type))

	attempts := c.maxAttempts
	if m.pinned != nil {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			log.WithField("attempt", attempt).Warnf("giving up on shift %s: %v", m.event.Type, err)
			return nil, apperrors.ErrShiftContention
		}

		current, err := c.shifts.GetByID(ctx, m.shiftID)
		if err != nil {
			return nil, c.contextual(ctx, err)
		}
		log.WithFields(map[string]interface{}{
			"attempt": attempt,
			"version": current.Version,
			"status":  string(current.Status),
		}).Debug("read shift")

		if m.pinned != nil && current.Version != *m.pinned {
			return nil, apperrors.ErrVersionConflict
		}
		for _, guard := range m.guards {
			if err := guard(current); err != nil {
				return nil, err
			}
		}

		next, err := Transition(current, m.event)
		if err != nil {
			return nil, err
		}
		if m.actorID != uuid.Nil {
			next.UpdatedBy = m.actorID.String()
		}

		updated, err := c.shifts.CompareAndSwap(ctx, m.shiftID, current.Version, next)
		if err == nil {
			log.WithFields(map[string]interface{}{
				"attempt": attempt,
				"version": updated.Version,
				"status":  string(updated.Status),
			}).Infof("shift %s committed", m.event.Type)
			return updated, nil
		}
		if !errors.Is(err, apperrors.ErrVersionConflict) || m.pinned != nil {
			return nil, c.contextual(ctx, err)
		}
		log.WithFields(map[string]interface{}{
			"attempt": attempt,
			"version": current.Version,
		}).Debug("version conflict, re-reading shift")
	}

	log.WithField("attempts", attempts).Warnf("shift %s lost every race", m.event.Type)
	return nil, apperrors.ErrShiftContention
}

// contextual reports a storage error caused by an expired caller deadline as contention
func (c *ClaimCoordinator) contextual(ctx context.Context, err error) error {
	if ctx.Err() != nil && !apperrors.IsNotFound(err) {
		return apperrors.ErrShiftContention
	}
	return err
}

func requireOpen(shift *models.Shift) error {
	if shift.Status != models.ShiftStatusOpen || !shift.IsUnassigned() {
		return apperrors.ErrShiftAlreadyClaimed
	}
	return nil
}

func (c *ClaimCoordinator) requireNotVoided(ctx context.Context) ShiftGuard {
	return func(shift *models.Shift) error {
		if shift.OfferID == nil {
			return nil
		}
		offer, err := c.offers.GetByID(ctx, *shift.OfferID)
		if err != nil {
			return err
		}
		if offer.IsArchived() {
			return apperrors.ErrShiftVoided
		}
		return nil
	}
}

// RequireAssignedOrPlanner allows the staff member holding the shift, or any planner
func RequireAssignedOrPlanner(actor Actor) ShiftGuard {
	return func(shift *models.Shift) error {
		if actor.Role.CanPlan() || shift.IsAssignedTo(actor.StaffID) {
			return nil
		}
		return apperrors.ErrNotAssignedStaff
	}
}

// RequirePlanner allows planners and admins only
func RequirePlanner(actor Actor) ShiftGuard {
	return func(*models.Shift) error {
		if actor.Role.CanPlan() {
			return nil
		}
		return apperrors.ErrPlannerRequired
	}
}
