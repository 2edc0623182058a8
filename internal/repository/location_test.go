//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"

	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// LocationRepositoryTestSuite tests the LocationRepository and checklist items
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.LocationRepository
	checklists    *repository.ChecklistRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewLocationRepository(suite.baseTestSuite.DB)
	suite.checklists = repository.NewChecklistRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LocationRepositoryTestSuite) TestNameIsUnique() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Location.WithName("North Pier")))

	err := suite.repo.Create(suite.ctx, suite.factories.Location.WithName("North Pier"))
	suite.True(repository.IsUniqueViolation(err, ""))

	found, err := suite.repo.GetByName(suite.ctx, "North Pier")
	suite.NoError(err)
	suite.Equal("North Pier", found.Name)
}

func (suite *LocationRepositoryTestSuite) TestRejectsNonPositiveCapacity() {
	suite.Error(suite.repo.Create(suite.ctx, suite.factories.Location.WithCapacity(0)))
}

func (suite *LocationRepositoryTestSuite) TestListActiveOnly() {
	active := suite.factories.Location.WithName("A Dock")
	inactive := suite.factories.Location.WithName("B Dock")
	suite.Require().NoError(suite.repo.Create(suite.ctx, active))
	suite.Require().NoError(suite.repo.Create(suite.ctx, inactive))
	inactive.IsActive = false
	suite.Require().NoError(suite.repo.Update(suite.ctx, inactive))

	locations, total, err := suite.repo.List(suite.ctx, true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(active.ID, locations[0].ID)

	_, total, err = suite.repo.List(suite.ctx, false, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *LocationRepositoryTestSuite) TestChecklistItemsForLocation() {
	dock := suite.factories.Location.Create()
	other := suite.factories.Location.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, dock))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	global := suite.factories.ChecklistItem.Create("Radio charged")
	global.SortOrder = 1
	local := suite.factories.ChecklistItem.ForLocation("Fuel pump locked", dock.ID)
	elsewhere := suite.factories.ChecklistItem.ForLocation("Crane secured", other.ID)
	retired := suite.factories.ChecklistItem.Create("Fax machine on")
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, global))
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, local))
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, elsewhere))
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, retired))
	retired.IsActive = false
	suite.Require().NoError(suite.checklists.UpdateItem(suite.ctx, retired))

	items, err := suite.checklists.ListItems(suite.ctx, &dock.ID)
	suite.NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Fuel pump locked", items[0].Name)
	suite.Equal("Radio charged", items[1].Name)

	byID, err := suite.checklists.GetItemsByIDs(suite.ctx, []uuid.UUID{global.ID, elsewhere.ID})
	suite.NoError(err)
	suite.Len(byID, 2)
}

// TestLocationRepositoryTestSuite runs the test suite
func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
