package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"marina-guard-backend/internal/api/handlers"
	"marina-guard-backend/internal/database/models"
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

// LogHandlerTestSuite defines the test suite for LogHandler
type LogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLogServiceInterface
	handler     *handlers.LogHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLogServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLogHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.ActAs(supervisorCaller)

	logs := suite.httpSuite.Router.Group("/api/v1/logs")
	{
		logs.GET("", suite.handler.ListLogs)
		logs.POST("", suite.handler.CreateLog)
		logs.GET("/:id", suite.handler.GetLog)
		logs.PUT("/:id", suite.handler.UpdateLog)
		logs.POST("/:id/archive", suite.handler.ArchiveLog)
		logs.POST("/:id/review", suite.handler.ReviewLog)
	}
}

// TearDownTest cleans up after each test
func (suite *LogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LogHandlerTestSuite) TestListLogs() {
	suite.T().Run("Incident review queue", func(t *testing.T) {
		locationID := uuid.New()
		suite.mockService.EXPECT().
			List(gomock.Any(), supervisorCaller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, req service.ListLogsRequest) (*service.LogListResponse, error) {
				require.NotNil(t, req.Type)
				assert.Equal(t, models.LogTypeIncident, *req.Type)
				assert.Equal(t, locationID, *req.LocationID)
				assert.True(t, req.Unreviewed)
				assert.False(t, req.IncludeArchived)
				assert.Nil(t, req.From)
				return &service.LogListResponse{Logs: []service.LogResponse{}, Page: 1, PageSize: 20}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/logs?type=INCIDENT&unreviewed=true&location_id="+locationID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Unknown type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/logs?type=GOSSIP", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid log type")
	})

	suite.T().Run("Bad shift filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/logs?shift_id=12", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid shift_id")
	})
}

func (suite *LogHandlerTestSuite) TestCreateLog() {
	suite.T().Run("Incident without severity", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), supervisorCaller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, req *service.CreateLogRequest) (*service.LogResponse, error) {
				assert.Equal(t, models.LogTypeIncident, req.Type)
				assert.Equal(t, []string{"https://cdn.example.com/clip.mp4"}, req.VideoURLs)
				assert.Equal(t, "B-12", req.Metadata["berth"])
				return nil, apperrors.ErrSeverityRequired
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/logs", map[string]interface{}{
			"type":        "INCIDENT",
			"title":       "Broken gate",
			"location_id": uuid.New().String(),
			"video_urls":  []string{"https://cdn.example.com/clip.mp4"},
			"metadata":    map[string]interface{}{"berth": "B-12"},
		})
		testutils.AssertFieldErrors(t, recorder, "severity")
	})

	suite.T().Run("Created", func(t *testing.T) {
		severity := models.LogSeverityHigh
		suite.mockService.EXPECT().
			Create(gomock.Any(), supervisorCaller, gomock.Any()).
			Return(&service.LogResponse{ID: uuid.New(), Type: models.LogTypeIncident, Severity: &severity, Status: models.LogStatusOpen}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/logs", map[string]interface{}{
			"type":     "INCIDENT",
			"title":    "Broken gate",
			"severity": "HIGH",
		})

		var response service.LogResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.LogStatusOpen, response.Status)
	})
}

func (suite *LogHandlerTestSuite) TestReviewLog() {
	logID := uuid.New()
	url := "/api/v1/logs/" + logID.String() + "/review"

	suite.T().Run("Reviewed with notes", func(t *testing.T) {
		resolved := models.LogStatusResolved
		reviewedAt := "2025-03-01T09:00:00Z"
		suite.mockService.EXPECT().
			Review(gomock.Any(), supervisorCaller, logID, &service.ReviewRequest{Notes: "Gate repaired", Status: &resolved}).
			Return(&service.LogResponse{ID: logID, Status: resolved, ReviewedBy: &supervisorCaller.UserID, ReviewedAt: &reviewedAt}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"notes":  "Gate repaired",
			"status": "RESOLVED",
		})

		var response service.LogResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, supervisorCaller.UserID, *response.ReviewedBy)
	})

	suite.T().Run("Empty body", func(t *testing.T) {
		suite.mockService.EXPECT().
			Review(gomock.Any(), supervisorCaller, logID, &service.ReviewRequest{}).
			Return(&service.LogResponse{ID: logID}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	conflicts := []struct {
		name string
		err  error
		code string
	}{
		{"Second review", apperrors.ErrAlreadyReviewed, "ALREADY_REVIEWED"},
		{"Not an incident", apperrors.ErrWrongLogType, "WRONG_TYPE"},
	}
	for _, tc := range conflicts {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				Review(gomock.Any(), supervisorCaller, logID, gomock.Any()).
				Return(nil, tc.err).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, nil)
			testutils.AssertErrorCode(t, recorder, http.StatusConflict, tc.code)
		})
	}

	suite.T().Run("Guard cannot review", func(t *testing.T) {
		suite.httpSuite.ActAs(guardCaller)
		defer suite.httpSuite.ActAs(supervisorCaller)

		suite.mockService.EXPECT().
			Review(gomock.Any(), guardCaller, logID, gomock.Any()).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func (suite *LogHandlerTestSuite) TestErrorMapping() {
	logID := uuid.New()

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "not found", err: apperrors.ErrLogNotFound, expectedStatus: http.StatusNotFound},
		{name: "archived", err: apperrors.ErrLogArchived, expectedStatus: http.StatusConflict, expectedCode: "LOG_ARCHIVED"},
		{name: "not the author", err: apperrors.ErrNotLogOwner, expectedStatus: http.StatusForbidden},
		{name: "wrapped not found", err: errors.Join(errors.New("lookup"), apperrors.ErrLogNotFound), expectedStatus: http.StatusNotFound},
		{name: "unexpected", err: errors.New("disk on fire"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				Archive(gomock.Any(), supervisorCaller, logID).
				Return(nil, tc.err).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/logs/"+logID.String()+"/archive", nil)
			testutils.AssertErrorCode(t, recorder, tc.expectedStatus, tc.expectedCode)
			assert.NotContains(t, recorder.Body.String(), "disk on fire")
		})
	}
}

// TestLogHandlerTestSuite runs the test suite
func TestLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LogHandlerTestSuite))
}
