package service

import (
	"shift-marketplace-backend/internal/database/models"
	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/google/uuid"
)

// ShiftEventType names a lifecycle event
type ShiftEventType string

const (
	ShiftEventClaim    ShiftEventType = "claim"
	ShiftEventStart    ShiftEventType = "start"
	ShiftEventComplete ShiftEventType = "complete"
	ShiftEventCancel   ShiftEventType = "cancel"
	ShiftEventRelease  ShiftEventType = "release"
)

// ShiftEvent is a lifecycle event applied to a shift. StaffID is only read by Claim.
type ShiftEvent struct {
	Type    ShiftEventType
	StaffID uuid.UUID
}

// ClaimEvent assigns staffID to an open shift
func ClaimEvent(staffID uuid.UUID) ShiftEvent {
	return ShiftEvent{Type: ShiftEventClaim, StaffID: staffID}
}

// StartEvent moves an assigned shift into progress
func StartEvent() ShiftEvent { return ShiftEvent{Type: ShiftEventStart} }

// CompleteEvent finishes an assigned or running shift
func CompleteEvent() ShiftEvent { return ShiftEvent{Type: ShiftEventComplete} }

// CancelEvent voids any non-terminal shift
func CancelEvent() ShiftEvent { return ShiftEvent{Type: ShiftEventCancel} }

// ReleaseEvent returns an assigned shift to the marketplace
func ReleaseEvent() ShiftEvent { return ShiftEvent{Type: ShiftEventRelease} }

// shiftTransitions is the complete table of legal moves. Anything absent is illegal.
var shiftTransitions = map[ShiftEventType]map[models.ShiftStatus]models.ShiftStatus{
	ShiftEventClaim: {
		models.ShiftStatusOpen: models.ShiftStatusAssigned,
	},
	ShiftEventStart: {
		models.ShiftStatusAssigned: models.ShiftStatusInProgress,
	},
	ShiftEventComplete: {
		models.ShiftStatusAssigned:   models.ShiftStatusCompleted,
		models.ShiftStatusInProgress: models.ShiftStatusCompleted,
	},
	ShiftEventCancel: {
		models.ShiftStatusOpen:       models.ShiftStatusCancelled,
		models.ShiftStatusAssigned:   models.ShiftStatusCancelled,
		models.ShiftStatusInProgress: models.ShiftStatusCancelled,
	},
	ShiftEventRelease: {
		models.ShiftStatusAssigned: models.ShiftStatusOpen,
	},
}

// LegalSuccessors returns every status reachable from status in one event
func LegalSuccessors(status models.ShiftStatus) []models.ShiftStatus {
	var next []models.ShiftStatus
	for _, s := range models.AllShiftStatuses {
		for _, moves := range shiftTransitions {
			if to, ok := moves[status]; ok && to == s {
				next = append(next, s)
				break
			}
		}
	}
	return next
}

// Transition computes the shift that results from applying event. It never
// touches storage and never mutates its input; the returned value still
// carries the input's version so it can be submitted to CompareAndSwap.
func Transition(shift *models.Shift, event ShiftEvent) (*models.Shift, error) {
	to, ok := shiftTransitions[event.Type][shift.Status]
	if !ok {
		return nil, apperrors.NewIllegalTransitionError(string(shift.Status), string(event.Type))
	}

	next := shift.Clone()
	next.Status = to

	switch event.Type {
	case ShiftEventClaim:
		if event.StaffID == uuid.Nil {
			return nil, apperrors.NewValidationError("staff_id", "required to claim a shift")
		}
		staffID := event.StaffID
		next.StaffID = &staffID
	case ShiftEventRelease:
		next.StaffID = nil
	case ShiftEventCancel:
		// A cancelled shift holds nobody.
		next.StaffID = nil
	}

	return next, nil
}
