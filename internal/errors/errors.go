package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IllegalTransitionError is returned when a lifecycle event is not valid
// from the shift's current status.
type IllegalTransitionError struct {
	From  string
	Event string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: cannot %s a shift that is %s", e.Event, e.From)
}

// Is matches any IllegalTransitionError when the target has no From/Event set,
// otherwise both fields must agree.
func (e *IllegalTransitionError) Is(target error) bool {
	t, ok := target.(*IllegalTransitionError)
	if !ok {
		return false
	}
	if t.From == "" && t.Event == "" {
		return true
	}
	return e.From == t.From && e.Event == t.Event
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound   = &NotFoundError{Entity: "shift"}
	ErrStaffNotFound   = &NotFoundError{Entity: "staff member"}
	ErrProjectNotFound = &NotFoundError{Entity: "project"}
	ErrOfferNotFound   = &NotFoundError{Entity: "offer"}
)

// Already Exists Errors
var (
	ErrStaffExists   = &AlreadyExistsError{Entity: "staff member", Context: "with this email"}
	ErrProjectExists = &AlreadyExistsError{Entity: "project", Context: "with this name"}
	ErrOfferExists   = &AlreadyExistsError{Entity: "offer", Context: "with this name"}
	ErrShiftExists   = &AlreadyExistsError{Entity: "shift", Context: "with this id"}
)

// Claim and lifecycle errors
var (
	// ErrShiftAlreadyClaimed means another staff member was faster; the caller should refresh.
	ErrShiftAlreadyClaimed = errors.New("shift is no longer open, it may already be taken by someone else")
	// ErrShiftVoided means the shift's offer was archived and it can no longer be claimed.
	ErrShiftVoided = errors.New("shift is voided because its offer was archived")
	// ErrVersionConflict is returned by the registry when the expected version is stale.
	ErrVersionConflict = errors.New("shift was modified concurrently")
	// ErrShiftContention is returned after the bounded retry loop gave up.
	ErrShiftContention = errors.New("shift is being modified by others, it may already be taken; refresh and try again")
)

// Shift classification and timing errors
var (
	ErrInvalidTimeRange  = &ValidationError{Field: "end_time", Message: "must differ from start_time"}
	ErrInvalidLinkage    = &ValidationError{Field: "offer_id", Message: "a shift must reference at most one of project or offer"}
	ErrUnclassifiedShift = &ValidationError{Field: "project_id", Message: "a shift must be an office service or link to a project or offer"}
)

// Authentication Errors
var (
	ErrStaffIdentityMissing = &AuthenticationError{Message: "staff identity not found in context"}
	ErrNotAssignedStaff     = &AuthorizationError{Message: "only the assigned staff member or a planner may do this"}
	ErrPlannerRequired      = &AuthorizationError{Message: "planner or admin role required"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing       = &ConfigurationError{Message: "JWT_SECRET must be set"}
	ErrUnknownStorageDriver   = &ConfigurationError{Message: "STORAGE_DRIVER must be postgres or memory"}
	ErrInvalidClaimMaxAttempt = &ConfigurationError{Message: "CLAIM_MAX_ATTEMPTS must be between 1 and 10"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIllegalTransition checks if an error is an IllegalTransitionError
func IsIllegalTransition(err error) bool {
	return errors.Is(err, &IllegalTransitionError{})
}

// IsConflict reports whether err means the shift was taken or changed under the caller.
func IsConflict(err error) bool {
	return errors.Is(err, ErrShiftAlreadyClaimed) ||
		errors.Is(err, ErrShiftContention) ||
		errors.Is(err, ErrVersionConflict)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIllegalTransitionError creates a new IllegalTransitionError
func NewIllegalTransitionError(from, event string) error {
	return &IllegalTransitionError{From: from, Event: event}
}

