package handlers_test

import (
	"net/http"
	"testing"

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

// LocationHandlerTestSuite covers locations and the checklist items configured for them
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	locationService  *mocks.MockLocationServiceInterface
	checklistService *mocks.MockChecklistServiceInterface
	httpSuite        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LocationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.locationService = mocks.NewMockLocationServiceInterface(suite.ctrl)
	suite.checklistService = mocks.NewMockChecklistServiceInterface(suite.ctrl)

	locationHandler := handlers.NewLocationHandler(suite.locationService)
	checklistHandler := handlers.NewChecklistHandler(suite.checklistService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.ActAs(adminCaller)

	router := suite.httpSuite.Router
	router.GET("/api/v1/locations", locationHandler.ListLocations)
	router.POST("/api/v1/locations", locationHandler.CreateLocation)
	router.GET("/api/v1/locations/:id", locationHandler.GetLocation)
	router.PUT("/api/v1/locations/:id", locationHandler.UpdateLocation)
	router.GET("/api/v1/checklist-items", checklistHandler.ListItems)
	router.POST("/api/v1/checklist-items", checklistHandler.CreateItem)
	router.DELETE("/api/v1/checklist-items/:id", checklistHandler.DeactivateItem)
}

// TearDownTest cleans up after each test
func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LocationHandlerTestSuite) TestCreateLocation() {
	suite.T().Run("Success", func(t *testing.T) {
		capacity := 4
		suite.locationService.EXPECT().
			Create(gomock.Any(), adminCaller, &service.CreateLocationRequest{Name: "Dock A", MaxCapacity: &capacity}).
			Return(&service.LocationResponse{ID: uuid.New(), Name: "Dock A", MaxCapacity: &capacity, IsActive: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/locations", map[string]interface{}{
			"name":         "Dock A",
			"max_capacity": 4,
		})

		var response service.LocationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		require.NotNil(t, response.MaxCapacity)
		assert.Equal(t, 4, *response.MaxCapacity)
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.locationService.EXPECT().
			Create(gomock.Any(), adminCaller, gomock.Any()).
			Return(nil, apperrors.ErrLocationExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/locations", map[string]interface{}{"name": "Dock A"})
		testutils.AssertErrorCode(t, recorder, http.StatusConflict, "ALREADY_EXISTS")
	})
}

func (suite *LocationHandlerTestSuite) TestGetLocation() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/locations/dock-a", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid location ID")
	})

	suite.T().Run("Missing", func(t *testing.T) {
		id := uuid.New()
		suite.locationService.EXPECT().
			Get(gomock.Any(), id).
			Return(nil, apperrors.ErrLocationNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/locations/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "location not found")
	})
}

func (suite *LocationHandlerTestSuite) TestChecklistItems() {
	locationID := uuid.New()

	suite.T().Run("List for a location", func(t *testing.T) {
		suite.checklistService.EXPECT().
			ListItems(gomock.Any(), &locationID).
			Return([]service.ChecklistItemResponse{
				{ID: uuid.New(), Name: "Radio charged", IsActive: true},
				{ID: uuid.New(), Name: "Gate locked", LocationID: &locationID, IsActive: true},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/checklist-items?location_id="+locationID.String(), nil)

		var response []service.ChecklistItemResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Global only", func(t *testing.T) {
		suite.checklistService.EXPECT().
			ListItems(gomock.Any(), nil).
			Return([]service.ChecklistItemResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/checklist-items", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Deactivate", func(t *testing.T) {
		itemID := uuid.New()
		suite.checklistService.EXPECT().
			DeactivateItem(gomock.Any(), adminCaller, itemID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/checklist-items/"+itemID.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Create requires a supervisor", func(t *testing.T) {
		suite.httpSuite.ActAs(guardCaller)
		defer suite.httpSuite.ActAs(adminCaller)

		suite.checklistService.EXPECT().
			CreateItem(gomock.Any(), guardCaller, gomock.Any()).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/checklist-items", map[string]interface{}{"name": "Life rings"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestLocationHandlerTestSuite runs the test suite
func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
