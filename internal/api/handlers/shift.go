package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"shift-marketplace-backend/internal/auth"
	apperrors "shift-marketplace-backend/internal/errors"
	"shift-marketplace-backend/internal/logger"
	"shift-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for rosters, the marketplace and shift lifecycle
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// GetMyRoster returns the caller's roster
// @Summary Get my roster
// @Description All non-cancelled shifts assigned to the authenticated staff member, ordered by date and start time
// @Tags shifts
// @Accept json
// @Produce json
// @Success 200 {object} service.ShiftListResponse "Roster"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /shifts/mine [get]
func (h *ShiftHandler) GetMyRoster(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	roster, err := h.shiftService.GetMyRoster(c, actor)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetStaffRoster returns another staff member's roster
// @Summary Get a staff member's roster
// @Description Roster of any staff member. Requires the planner or admin role unless the id is the caller's own.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Success 200 {object} service.ShiftListResponse "Roster"
// @Failure 400 {object} map[string]interface{} "Invalid staff ID"
// @Failure 403 {object} map[string]interface{} "Planner role required"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id}/shifts [get]
func (h *ShiftHandler) GetStaffRoster(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	roster, err := h.shiftService.GetStaffRoster(c, actor, staffID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetMarketplace returns all claimable shifts
// @Summary List the marketplace
// @Description Open, unassigned shifts that are not voided, with resolved display context
// @Tags marketplace
// @Accept json
// @Produce json
// @Success 200 {object} service.ShiftListResponse "Marketplace"
// @Security BearerAuth
// @Router /marketplace [get]
func (h *ShiftHandler) GetMarketplace(c *gin.Context) {
	market, err := h.shiftService.GetMarketplace(c)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}

// GetMarketplaceByDate returns the marketplace grouped by date
// @Summary List the marketplace by date
// @Description Marketplace grouped per calendar day into confirmed and provisional shifts, dates ascending
// @Tags marketplace
// @Accept json
// @Produce json
// @Success 200 {array} service.DateGroupResponse "Marketplace grouped by date"
// @Security BearerAuth
// @Router /marketplace/by-date [get]
func (h *ShiftHandler) GetMarketplaceByDate(c *gin.Context) {
	groups, err := h.shiftService.GetMarketplaceByDate(c)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetShift returns a single shift
// @Summary Get shift by ID
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.GetShift(c, id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ClaimShift assigns the caller to an open shift
// @Summary Claim a shift
// @Description Assign the authenticated staff member to an open shift. Concurrent claims on the same shift have exactly one winner.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift assigned to the caller"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift already taken or under contention; refresh and retry"
// @Failure 410 {object} map[string]interface{} "Shift voided because its offer was archived"
// @Security BearerAuth
// @Router /shifts/{id}/claim [post]
func (h *ShiftHandler) ClaimShift(c *gin.Context) {
	h.write(c, h.shiftService.Claim)
}

// ReleaseShift returns an assigned shift to the marketplace
// @Summary Release a shift
// @Description Unassign a shift. Allowed for the assigned staff member or a planner. When a version is given the release only applies to that version.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param request body service.ReleaseRequest false "Expected version"
// @Success 200 {object} service.ShiftResponse "Shift back on the marketplace"
// @Failure 403 {object} map[string]interface{} "Not the assigned staff member"
// @Failure 409 {object} map[string]interface{} "Version moved"
// @Failure 422 {object} map[string]interface{} "Shift is not assigned"
// @Security BearerAuth
// @Router /shifts/{id}/release [post]
func (h *ShiftHandler) ReleaseShift(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	var req service.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Release(c, actor, id, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// StartShift marks an assigned shift as in progress
// @Summary Start a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift in progress"
// @Failure 403 {object} map[string]interface{} "Not the assigned staff member"
// @Failure 422 {object} map[string]interface{} "Shift is not assigned"
// @Security BearerAuth
// @Router /shifts/{id}/start [post]
func (h *ShiftHandler) StartShift(c *gin.Context) {
	h.write(c, h.shiftService.Start)
}

// CompleteShift marks a shift as completed
// @Summary Complete a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift completed"
// @Failure 403 {object} map[string]interface{} "Not the assigned staff member"
// @Failure 422 {object} map[string]interface{} "Shift is neither assigned nor in progress"
// @Security BearerAuth
// @Router /shifts/{id}/complete [post]
func (h *ShiftHandler) CompleteShift(c *gin.Context) {
	h.write(c, h.shiftService.Complete)
}

// CancelShift cancels a shift
// @Summary Cancel a shift
// @Description Move a non-terminal shift to cancelled. Planner or admin only.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift cancelled"
// @Failure 403 {object} map[string]interface{} "Planner role required"
// @Failure 422 {object} map[string]interface{} "Shift already completed or cancelled"
// @Security BearerAuth
// @Router /shifts/{id}/cancel [post]
func (h *ShiftHandler) CancelShift(c *gin.Context) {
	h.write(c, h.shiftService.Cancel)
}

type shiftWrite func(ctx context.Context, actor service.Actor, id uuid.UUID) (*service.ShiftResponse, error)

func (h *ShiftHandler) write(c *gin.Context, op shiftWrite) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	shift, err := op(c, actor, id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

func (h *ShiftHandler) actor(c *gin.Context) (service.Actor, bool) {
	staffID, ok := auth.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrStaffIdentityMissing.Error()})
		return service.Actor{}, false
	}
	role, _ := auth.GetRole(c)
	return service.Actor{StaffID: staffID, Role: role}, true
}

func (h *ShiftHandler) shiftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return uuid.Nil, false
	}
	return id, true
}

// handleShiftError maps service errors to HTTP responses
func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsIllegalTransition(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrShiftVoided):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "refresh": true})
	default:
		logger.WithContext(c).WithField("path", c.Request.URL.Path).Errorf("shift request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
