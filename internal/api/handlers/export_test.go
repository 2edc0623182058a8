package handlers_test

import (
	"bytes"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ExportHandlerTestSuite defines the test suite for ExportHandler
type ExportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockExportServiceInterface
	handler     *handlers.ExportHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ExportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewExportHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.ActAs(supervisorCaller)

	suite.httpSuite.Router.GET("/api/v1/shifts/export", suite.handler.ShiftsWorkbook)
	suite.httpSuite.Router.GET("/api/v1/users/:id/shifts.ics", suite.handler.UserCalendar)
}

// TearDownTest cleans up after each test
func (suite *ExportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExportHandlerTestSuite) TestShiftsWorkbook() {
	suite.T().Run("Attachment", func(t *testing.T) {
		suite.mockService.EXPECT().
			ShiftsWorkbook(gomock.Any(), supervisorCaller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, req service.ExportShiftsRequest) (*bytes.Buffer, string, error) {
				assert.True(t, req.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
				assert.True(t, req.To.Equal(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)))
				assert.Nil(t, req.LocationID)
				return bytes.NewBufferString("PK-fake"), "shifts-2025-03-01-2025-03-08.xlsx", nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shifts/export?from=2025-03-01&to=2025-03-08", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="shifts-2025-03-01-2025-03-08.xlsx"`, recorder.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK-fake", recorder.Body.String())
	})

	suite.T().Run("Window required", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shifts/export?from=2025-03-01", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "from and to are required")
	})

	suite.T().Run("Guard is rejected", func(t *testing.T) {
		suite.mockService.EXPECT().
			ShiftsWorkbook(gomock.Any(), supervisorCaller, gomock.Any()).
			Return(nil, "", apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/shifts/export?from=2025-03-01&to=2025-03-08", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func (suite *ExportHandlerTestSuite) TestUserCalendar() {
	userID := uuid.New()

	suite.T().Run("Feed", func(t *testing.T) {
		feed := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
		suite.mockService.EXPECT().
			UserCalendar(gomock.Any(), supervisorCaller, userID, nil, nil).
			Return(feed, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/shifts.ics", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "shifts.ics")
		assert.Equal(t, feed, recorder.Body.String())
	})

	suite.T().Run("Bad to", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/shifts.ics?to=soon", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestExportHandlerTestSuite runs the test suite
func TestExportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}
