package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shift-marketplace-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "shift-identity",
		TokenTTL:  time.Hour,
	}
}

func testStaff(role models.StaffRole) *models.Staff {
	return &models.Staff{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Ada Field",
		Email:     "ada@example.com",
		Role:      role,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing issuer", func(t *testing.T) {
		config := testConfig()
		config.Issuer = ""
		assert.ErrorContains(t, config.ValidateConfig(), "issuer is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0
		assert.ErrorContains(t, config.ValidateConfig(), "token ttl")
	})

	t.Run("leeway too large", func(t *testing.T) {
		config := testConfig()
		config.Leeway = MaxLeeway + time.Second
		assert.ErrorContains(t, config.ValidateConfig(), "leeway")
	})
}

func TestLoadAuthConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt_secret: file-secret\nissuer: file-issuer\ntoken_ttl: 30m\n"), 0o600))
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "")

	config, err := LoadAuthConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-secret", config.JWTSecret)
	assert.Equal(t, "file-issuer", config.Issuer)
	assert.Equal(t, 30*time.Minute, config.TokenTTL)
}

func TestEnvironmentVariableOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ISSUER", "")

	config, err := LoadAuthConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-secret", config.JWTSecret)
	assert.Equal(t, "shift-identity", config.Issuer)
	assert.Equal(t, time.Hour, config.TokenTTL)
	assert.Equal(t, 30*time.Second, config.Leeway)

	t.Setenv("JWT_TOKEN_TTL", "8h")
	config, err = LoadAuthConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, config.TokenTTL)
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	staff := testStaff(models.StaffRolePlanner)
	token, err := service.GenerateJWT(staff)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, staff.ID.String(), claims.StaffID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, models.StaffRolePlanner, claims.Role)
	assert.Equal(t, "shift-identity", claims.Issuer)

	t.Run("invalid token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid.token.here")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherService, err := NewAuthService(other)
		require.NoError(t, err)

		_, err = otherService.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := testConfig()
		other.Issuer = "someone-else"
		otherService, err := NewAuthService(other)
		require.NoError(t, err)

		_, err = otherService.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	config := testConfig()
	service, err := NewAuthService(config)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	claims := &AuthClaims{
		StaffID: uuid.New().String(),
		Role:    models.StaffRoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			Issuer:    config.Issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)

	t.Run("within leeway", func(t *testing.T) {
		lenient := testConfig()
		lenient.Leeway = time.Minute
		lenientService, err := NewAuthService(lenient)
		require.NoError(t, err)

		recent := time.Now().Add(-30 * time.Second)
		claims.ExpiresAt = jwt.NewNumericDate(recent)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(lenient.JWTSecret))
		require.NoError(t, err)

		_, err = lenientService.ValidateJWT(token)
		assert.NoError(t, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims.ExpiresAt = nil
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestRejectsUnknownRole(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	token, err := service.GenerateJWT(testStaff("superuser"))
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.ErrorContains(t, err, "unknown role")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	staff := testStaff(models.StaffRoleStaff)
	token, err := service.GenerateJWT(staff)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		staffID, ok := GetStaffID(c)
		require.True(t, ok)
		role, _ := GetRole(c)
		email, _ := GetStaffEmail(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": staffID.String(), "role": role, "email": email})
	})
	router.GET("/plan", middleware.RequireAuth(), middleware.RequirePlanner(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	testCases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "missing header", path: "/me", status: http.StatusUnauthorized},
		{name: "bad format", path: "/me", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "invalid token", path: "/me", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid token", path: "/me", header: "Bearer " + token, status: http.StatusOK},
		{name: "staff cannot plan", path: "/plan", header: "Bearer " + token, status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)

			if tc.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, staff.ID.String(), body["staff_id"])
				assert.Equal(t, "staff", body["role"])
				assert.Equal(t, "ada@example.com", body["email"])
			}
		})
	}
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	token, err := service.GenerateJWT(testStaff(models.StaffRoleAdmin))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, models.StaffRoleAdmin, response.Claims.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)
	handler := NewAuthHandler(service)

	staff := testStaff(models.StaffRolePlanner)
	token, err := service.GenerateJWT(staff)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), handler.Me)
	router.GET("/open/me", handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response AuthValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, staff.ID.String(), response.Claims.StaffID)
	assert.Equal(t, models.StaffRolePlanner, response.Claims.Role)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
