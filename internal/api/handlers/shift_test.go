package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"marina-guard-backend/internal/api/handlers"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/mocks"
	"marina-guard-backend/internal/service"
	"marina-guard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite defines the test suite for ShiftHandler
type ShiftHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockShiftServiceInterface
	handler     *handlers.ShiftHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ShiftHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.handler = handlers.NewShiftHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.ActAs(supervisorCaller)

	shifts := suite.httpSuite.Router.Group("/api/v1/shifts")
	{
		shifts.GET("", suite.handler.ListShifts)
		shifts.POST("", suite.handler.CreateShift)
		shifts.GET("/:id", suite.handler.GetShift)
		shifts.PUT("/:id", suite.handler.UpdateShift)
		shifts.DELETE("/:id", suite.handler.DeleteShift)
		shifts.POST("/:id/assignments", suite.handler.AssignUser)
		shifts.DELETE("/:id/assignments/:userId", suite.handler.UnassignUser)
	}
	suite.httpSuite.Router.GET("/api/v1/users/:id/shifts", suite.handler.ListUserShifts)
}

// TearDownTest cleans up after each test
func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftHandlerTestSuite) TestListShifts() {
	suite.T().Run("Date and timestamp bounds", func(t *testing.T) {
		locationID := uuid.New()
		suite.mockService.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req service.ListShiftsRequest) (*service.ShiftListResponse, error) {
				require.NotNil(t, req.From)
				require.NotNil(t, req.To)
				assert.True(t, req.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
				assert.True(t, req.To.Equal(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)))
				assert.Equal(t, locationID, *req.LocationID)
				assert.Equal(t, 1, req.Page)
				assert.Equal(t, 20, req.PageSize)
				return &service.ShiftListResponse{Shifts: []service.ShiftResponse{}, Page: 1, PageSize: 20}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/shifts?from=2025-03-01&to=2025-03-08T12:00:00Z&location_id="+locationID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Bad from", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shifts?from=yesterday", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid from")
	})

	suite.T().Run("Oversized page size falls back", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), service.ListShiftsRequest{Page: 3, PageSize: 20}).
			Return(&service.ShiftListResponse{Page: 3, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shifts?page=3&page_size=5000", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func (suite *ShiftHandlerTestSuite) TestCreateShift() {
	suite.T().Run("Success", func(t *testing.T) {
		locationID := uuid.New()
		suite.mockService.EXPECT().
			Create(gomock.Any(), supervisorCaller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, req *service.CreateShiftRequest) (*service.ShiftResponse, error) {
				assert.Equal(t, "Night watch", req.Name)
				assert.Equal(t, locationID, req.LocationID)
				assert.True(t, req.EndTime.After(req.StartTime))
				return &service.ShiftResponse{ID: uuid.New(), Name: req.Name, LocationID: locationID}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts", map[string]interface{}{
			"name":        "Night watch",
			"start_time":  "2025-03-01T22:00:00Z",
			"end_time":    "2025-03-02T06:00:00Z",
			"location_id": locationID.String(),
		})

		var response service.ShiftResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Night watch", response.Name)
	})

	suite.T().Run("Rejected fields are listed", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), supervisorCaller, gomock.Any()).
			Return(nil, apperrors.ValidationErrors{
				{Field: "name", Message: "is required"},
				{Field: "end_time", Message: "End time must be after start time."},
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts", map[string]interface{}{
			"start_time": "2025-03-02T06:00:00Z",
			"end_time":   "2025-03-01T22:00:00Z",
		})
		testutils.AssertFieldErrors(t, recorder, "name", "end_time")
	})

	suite.T().Run("Guard is rejected", func(t *testing.T) {
		suite.httpSuite.ActAs(guardCaller)
		defer suite.httpSuite.ActAs(supervisorCaller)

		suite.mockService.EXPECT().
			Create(gomock.Any(), guardCaller, gomock.Any()).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts", map[string]interface{}{"name": "x"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func (suite *ShiftHandlerTestSuite) TestAssignments() {
	shiftID := uuid.New()
	userID := uuid.New()

	suite.T().Run("Assign", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), supervisorCaller, shiftID, &service.AssignRequest{UserID: userID, Role: "Lead"}).
			Return(&service.ShiftAssignmentResponse{UserID: userID, Role: "Lead"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts/"+shiftID.String()+"/assignments", map[string]interface{}{
			"user_id": userID.String(),
			"role":    "Lead",
		})

		var response service.ShiftAssignmentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, userID, response.UserID)
	})

	suite.T().Run("Capacity reached", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), supervisorCaller, shiftID, gomock.Any()).
			Return(nil, apperrors.ErrCapacityExceeded).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts/"+shiftID.String()+"/assignments", map[string]interface{}{
			"user_id": userID.String(),
		})
		testutils.AssertErrorCode(t, recorder, http.StatusConflict, "CAPACITY_EXCEEDED")
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), supervisorCaller, shiftID, gomock.Any()).
			Return(nil, apperrors.ErrAlreadyAssigned).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/shifts/"+shiftID.String()+"/assignments", map[string]interface{}{
			"user_id": userID.String(),
		})
		testutils.AssertErrorCode(t, recorder, http.StatusConflict, "ALREADY_ASSIGNED")
	})

	suite.T().Run("Unassign", func(t *testing.T) {
		suite.mockService.EXPECT().
			Unassign(gomock.Any(), supervisorCaller, shiftID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/shifts/"+shiftID.String()+"/assignments/"+userID.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Unassign unknown", func(t *testing.T) {
		suite.mockService.EXPECT().
			Unassign(gomock.Any(), supervisorCaller, shiftID, userID).
			Return(apperrors.ErrShiftAssignmentNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/shifts/"+shiftID.String()+"/assignments/"+userID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "shift assignment not found")
	})

	suite.T().Run("Unassign bad user id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/shifts/"+shiftID.String()+"/assignments/abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid user ID")
	})
}

func (suite *ShiftHandlerTestSuite) TestListUserShifts() {
	userID := uuid.New()

	suite.T().Run("Guard may not read another schedule", func(t *testing.T) {
		suite.httpSuite.ActAs(guardCaller)
		defer suite.httpSuite.ActAs(supervisorCaller)

		suite.mockService.EXPECT().
			ListForUser(gomock.Any(), guardCaller, userID, nil, nil).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/shifts", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Returns shifts", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListForUser(gomock.Any(), supervisorCaller, userID, gomock.Not(gomock.Nil()), nil).
			Return([]service.ShiftResponse{{ID: uuid.New(), Name: "Dawn"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/shifts?from=2025-03-01", nil)

		var response []service.ShiftResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, "Dawn", response[0].Name)
	})
}

// TestShiftHandlerTestSuite runs the test suite
func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
