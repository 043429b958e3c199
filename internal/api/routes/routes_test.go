package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"shift-marketplace-backend/internal/api/routes"
	"shift-marketplace-backend/internal/auth"
	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/database/models"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/service"
	"shift-marketplace-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the full router over an in-memory store
type RoutesTestSuite struct {
	suite.Suite
	store   *repository.Store
	router  *gin.Engine
	http    *testutils.HTTPTestSuite
	tokens  *auth.AuthService
	worker  *models.Staff
	peer    *models.Staff
	planner *models.Staff
}

// SetupTest runs before each test
func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.T().Chdir(suite.T().TempDir())
	suite.T().Setenv("JWT_SECRET", "routes-secret")
	suite.T().Setenv("JWT_ISSUER", "shift-identity")

	cfg := &config.Config{
		Environment:      "test",
		StorageDriver:    config.StorageDriverMemory,
		JWTSecret:        "routes-secret",
		JWTIssuer:        "shift-identity",
		ClaimMaxAttempts: 3,
		ClaimTimeoutMS:   2000,
	}

	suite.store = repository.NewMemoryStore()
	router, err := routes.SetupRoutes(suite.store, nil, cfg)
	suite.Require().NoError(err)
	suite.router = router
	suite.http = testutils.NewHTTPTestSuite(router)

	suite.tokens, err = auth.NewAuthService(&auth.AuthConfig{JWTSecret: "routes-secret", Issuer: "shift-identity", TokenTTL: time.Hour})
	suite.Require().NoError(err)

	suite.worker = suite.staff("ada@example.com", models.StaffRoleStaff)
	suite.peer = suite.staff("ben@example.com", models.StaffRoleStaff)
	suite.planner = suite.staff("cleo@example.com", models.StaffRolePlanner)
}

func (suite *RoutesTestSuite) staff(email string, role models.StaffRole) *models.Staff {
	staff := &models.Staff{FullName: email, Email: email, Role: role, IsActive: true}
	suite.Require().NoError(suite.store.Staff.Create(context.Background(), staff))
	return staff
}

func (suite *RoutesTestSuite) openShift() *models.Shift {
	shift := &models.Shift{
		Date:               time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		EndTime:            "17:00",
		Role:               "steward",
		IsOfficeService:    true,
		OfficeServiceTitle: "Operations desk",
		Status:             models.ShiftStatusOpen,
	}
	suite.Require().NoError(suite.store.Shifts.Create(context.Background(), shift))
	return shift
}

func (suite *RoutesTestSuite) call(method, path string, as *models.Staff) *httptest.ResponseRecorder {
	if as == nil {
		return suite.http.MakeRequest(method, path, nil)
	}
	token, err := suite.tokens.GenerateJWT(as)
	suite.Require().NoError(err)
	return suite.http.MakeAuthorizedRequest(method, path, token, nil)
}

// TestHealth tests that health works without a database
func (suite *RoutesTestSuite) TestHealth() {
	w := suite.call(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "memory")
}

// TestRequiresAuthentication tests that api routes need a bearer token
func (suite *RoutesTestSuite) TestRequiresAuthentication() {
	suite.Equal(http.StatusUnauthorized, suite.call(http.MethodGet, "/api/v1/marketplace", nil).Code)
}

// TestCurrentIdentity tests that the authenticated claims are echoed back
func (suite *RoutesTestSuite) TestCurrentIdentity() {
	var me auth.AuthValidateResponse
	testutils.AssertJSONResponse(suite.T(), suite.call(http.MethodGet, "/api/v1/auth/me", suite.planner), http.StatusOK, &me)
	suite.True(me.Valid)
	suite.Equal(suite.planner.ID.String(), me.Claims.StaffID)
	suite.Equal(models.StaffRolePlanner, me.Claims.Role)

	suite.Equal(http.StatusUnauthorized, suite.call(http.MethodGet, "/api/v1/auth/me", nil).Code)
}

// TestClaimFlow tests claim, the roster and the marketplace through HTTP
func (suite *RoutesTestSuite) TestClaimFlow() {
	shift := suite.openShift()

	w := suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/claim", suite.worker)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/claim", suite.peer)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "no longer open")

	var roster service.ShiftListResponse
	testutils.AssertJSONResponse(suite.T(), suite.call(http.MethodGet, "/api/v1/shifts/mine", suite.worker), http.StatusOK, &roster)
	suite.Equal(1, roster.Total)

	w = suite.call(http.MethodGet, "/api/v1/marketplace", suite.peer)
	suite.Require().Equal(http.StatusOK, w.Code)
	var market service.ShiftListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &market))
	suite.Zero(market.Total)

	suite.Equal(http.StatusForbidden, suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/release", suite.peer).Code)
	suite.Equal(http.StatusOK, suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/release", suite.worker).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/release", suite.planner).Code)
}

// TestConcurrentClaimsOverHTTP tests that parallel requests produce a single winner
func (suite *RoutesTestSuite) TestConcurrentClaimsOverHTTP() {
	shift := suite.openShift()
	claimants := []*models.Staff{suite.worker, suite.peer, suite.planner}

	var wg sync.WaitGroup
	codes := make([]int, len(claimants))
	for i, staff := range claimants {
		wg.Add(1)
		go func(i int, staff *models.Staff) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/claim", nil)
			token, _ := suite.tokens.GenerateJWT(staff)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			suite.router.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i, staff)
	}
	wg.Wait()

	winners := 0
	for _, code := range codes {
		if code == http.StatusOK {
			winners++
			continue
		}
		suite.Equal(http.StatusConflict, code)
	}
	suite.Equal(1, winners)
}

// TestStaffRosterRequiresPlanner tests the planner-only roster route
func (suite *RoutesTestSuite) TestStaffRosterRequiresPlanner() {
	path := "/api/v1/staff/" + suite.worker.ID.String() + "/shifts"
	suite.Equal(http.StatusForbidden, suite.call(http.MethodGet, path, suite.peer).Code)
	suite.Equal(http.StatusOK, suite.call(http.MethodGet, path, suite.planner).Code)
}

// TestCancelRequiresPlanner tests that staff cannot cancel
func (suite *RoutesTestSuite) TestCancelRequiresPlanner() {
	shift := suite.openShift()
	suite.Equal(http.StatusForbidden, suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/cancel", suite.worker).Code)
	suite.Equal(http.StatusOK, suite.call(http.MethodPost, "/api/v1/shifts/"+shift.ID.String()+"/cancel", suite.planner).Code)
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
