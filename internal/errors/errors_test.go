package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrShiftNotFound, ErrOfferNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load shift: %w", ErrShiftNotFound)
		assert.True(t, errors.Is(wrapped, ErrShiftNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectNotFound))
		assert.False(t, IsNotFound(ErrShiftAlreadyClaimed))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "staff member already exists with this email", ErrStaffExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "offer"}
		assert.Equal(t, "offer already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrOfferExists))
		assert.False(t, IsAlreadyExists(ErrOfferNotFound))
	})
}

func TestIllegalTransitionError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewIllegalTransitionError("cancelled", "claim")
		assert.Equal(t, "illegal transition: cannot claim a shift that is cancelled", err.Error())
	})

	t.Run("Matches blank target", func(t *testing.T) {
		err := fmt.Errorf("apply: %w", NewIllegalTransitionError("open", "start"))
		assert.True(t, IsIllegalTransition(err))
	})

	t.Run("Matches exact target only", func(t *testing.T) {
		err := NewIllegalTransitionError("open", "start")
		assert.True(t, errors.Is(err, &IllegalTransitionError{From: "open", Event: "start"}))
		assert.False(t, errors.Is(err, &IllegalTransitionError{From: "open", Event: "complete"}))
	})

	t.Run("Other errors do not match", func(t *testing.T) {
		assert.False(t, IsIllegalTransition(ErrShiftVoided))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "invalid format"}
		assert.Equal(t, "validation error: start_time - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("date", "required")))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})

	t.Run("Shift shape errors are validation errors", func(t *testing.T) {
		assert.True(t, IsValidation(ErrUnclassifiedShift))
		assert.True(t, IsValidation(fmt.Errorf("create: %w", ErrInvalidLinkage)))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.Contains(t, ErrUnclassifiedShift.Error(), "office service")
	})
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrShiftAlreadyClaimed))
	assert.True(t, IsConflict(fmt.Errorf("claim: %w", ErrShiftContention)))
	assert.True(t, IsConflict(ErrVersionConflict))
	assert.False(t, IsConflict(ErrShiftVoided))
	assert.False(t, IsConflict(ErrShiftNotFound))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrStaffIdentityMissing))
	assert.True(t, IsAuthorization(ErrNotAssignedStaff))
	assert.True(t, IsAuthorization(ErrPlannerRequired))
	assert.False(t, IsAuthorization(ErrStaffIdentityMissing))
	assert.True(t, IsConfiguration(ErrUnknownStorageDriver))
}
