package auth

import (
	"net/http"
	"strings"

	"shift-marketplace-backend/internal/database/models"
	"shift-marketplace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the staff context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		if _, err := uuid.Parse(claims.StaffID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": "staff id is not a uuid"})
			c.Abort()
			return
		}

		// Set staff context
		c.Set(logger.StaffIDKey, claims.StaffID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequirePlanner rejects callers whose role cannot plan shifts
func (m *AuthMiddleware) RequirePlanner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !role.CanPlan() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Planner or admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetStaffID is a helper function to extract the staff id from context
func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, exists := c.Get(logger.StaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	idStr, ok := staffID.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRole is a helper function to extract the staff role from context
func GetRole(c *gin.Context) (models.StaffRole, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	return models.StaffRole(roleStr), ok
}

// GetStaffEmail is a helper function to extract staff email from context
func GetStaffEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
