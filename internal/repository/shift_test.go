//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftRepositoryTestSuite tests the ShiftRepository and RecurringPatternRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.ShiftRepository
	patterns      *repository.RecurringPatternRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	location *models.Location
	guard    *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewShiftRepository(suite.baseTestSuite.DB)
	suite.patterns = repository.NewRecurringPatternRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a location and a guard
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.location = suite.factories.Location.WithCapacity(2)
	suite.Require().NoError(repository.NewLocationRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.location))
	suite.guard = suite.factories.User.Create()
	suite.Require().NoError(repository.NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.guard))
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) TestCreateAndGet() {
	shift := suite.factories.Shift.Create(suite.location.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, shift))

	retrieved, err := suite.repo.GetByID(suite.ctx, shift.ID)
	suite.NoError(err)
	suite.Require().NotNil(retrieved.Location)
	suite.Equal(suite.location.Name, retrieved.Location.Name)
	suite.Empty(retrieved.Assignments)
}

func (suite *ShiftRepositoryTestSuite) TestRejectsInvertedWindow() {
	start := time.Now().UTC().Add(24 * time.Hour)
	shift := suite.factories.Shift.Between(suite.location.ID, start, start.Add(-time.Hour))

	suite.Error(suite.repo.Create(suite.ctx, shift))
}

func (suite *ShiftRepositoryTestSuite) TestListOverlapsWindow() {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	night := suite.factories.Shift.Between(suite.location.ID, day.Add(-2*time.Hour), day.Add(6*time.Hour))
	morning := suite.factories.Shift.Between(suite.location.ID, day.Add(8*time.Hour), day.Add(16*time.Hour))
	nextDay := suite.factories.Shift.Between(suite.location.ID, day.Add(32*time.Hour), day.Add(40*time.Hour))
	for _, s := range []*models.Shift{night, morning, nextDay} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, s))
	}

	from, to := day, day.Add(24*time.Hour)
	shifts, total, err := suite.repo.List(suite.ctx, repository.ShiftFilter{From: &from, To: &to}, 0, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(night.ID, shifts[0].ID)
	suite.Equal(morning.ID, shifts[1].ID)
}

func (suite *ShiftRepositoryTestSuite) TestAssignments() {
	shift := suite.factories.Shift.Create(suite.location.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, shift))

	suite.Require().NoError(suite.repo.CreateAssignment(suite.ctx, &models.ShiftAssignment{
		ShiftID: shift.ID,
		UserID:  suite.guard.ID,
		Role:    "lead",
	}))

	suite.Run("Duplicate is a unique violation", func() {
		err := suite.repo.CreateAssignment(suite.ctx, &models.ShiftAssignment{ShiftID: shift.ID, UserID: suite.guard.ID})
		suite.True(repository.IsUniqueViolation(err, "ux_shift_assignment"))
	})

	suite.Run("Counts and exists", func() {
		count, err := suite.repo.CountAssignments(suite.ctx, shift.ID)
		suite.NoError(err)
		suite.Equal(int64(1), count)

		exists, err := suite.repo.AssignmentExists(suite.ctx, shift.ID, suite.guard.ID)
		suite.NoError(err)
		suite.True(exists)
	})

	suite.Run("List by assigned user", func() {
		shifts, _, err := suite.repo.List(suite.ctx, repository.ShiftFilter{UserID: &suite.guard.ID}, 10, 0)
		suite.NoError(err)
		suite.Require().Len(shifts, 1)
		suite.Require().Len(shifts[0].Assignments, 1)
		suite.Equal(suite.guard.ID, shifts[0].Assignments[0].User.ID)
	})

	suite.Run("Lock inside a transaction", func() {
		err := repository.NewTransactor(suite.baseTestSuite.DB).WithinTransaction(suite.ctx, func(ctx context.Context) error {
			return suite.repo.LockForAssignment(ctx, shift.ID)
		})
		suite.NoError(err)
	})

	suite.Run("Delete reports whether a row went", func() {
		deleted, err := suite.repo.DeleteAssignment(suite.ctx, shift.ID, suite.guard.ID)
		suite.NoError(err)
		suite.True(deleted)

		deleted, err = suite.repo.DeleteAssignment(suite.ctx, shift.ID, suite.guard.ID)
		suite.NoError(err)
		suite.False(deleted)
	})
}

func (suite *ShiftRepositoryTestSuite) TestDeleteCascadesAssignments() {
	shift := suite.factories.Shift.Create(suite.location.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, shift))
	suite.Require().NoError(suite.repo.CreateAssignment(suite.ctx, &models.ShiftAssignment{ShiftID: shift.ID, UserID: suite.guard.ID}))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, shift.ID))

	_, err := suite.repo.GetByID(suite.ctx, shift.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	count, err := suite.repo.CountAssignments(suite.ctx, shift.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *ShiftRepositoryTestSuite) TestPatternOccurrenceIsUnique() {
	pattern := suite.factories.RecurringPattern.Create(suite.location.ID)
	suite.Require().NoError(suite.patterns.Create(suite.ctx, pattern))

	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	first := suite.factories.Shift.Between(suite.location.ID, start, start.Add(8*time.Hour))
	first.RecurringPatternID = &pattern.ID
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	exists, err := suite.repo.ExistsForPatternStart(suite.ctx, pattern.ID, start)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsForPatternStart(suite.ctx, pattern.ID, start.Add(24*time.Hour))
	suite.NoError(err)
	suite.False(exists)

	again := suite.factories.Shift.Between(suite.location.ID, start, start.Add(8*time.Hour))
	again.RecurringPatternID = &pattern.ID
	err = suite.repo.Create(suite.ctx, again)
	suite.True(repository.IsUniqueViolation(err, "ux_shift_pattern_start"))
}

func (suite *ShiftRepositoryTestSuite) TestPatternCrew() {
	pattern := suite.factories.RecurringPattern.Create(suite.location.ID)
	suite.Require().NoError(suite.patterns.Create(suite.ctx, pattern))

	suite.Require().NoError(suite.patterns.CreateCrew(suite.ctx, &models.RecurringUserAssignment{
		PatternID: pattern.ID,
		UserID:    suite.guard.ID,
	}))
	err := suite.patterns.CreateCrew(suite.ctx, &models.RecurringUserAssignment{PatternID: pattern.ID, UserID: suite.guard.ID})
	suite.True(repository.IsUniqueViolation(err, "ux_recurring_assignment"))

	crew, err := suite.patterns.ListCrew(suite.ctx, pattern.ID)
	suite.NoError(err)
	suite.Require().Len(crew, 1)
	suite.Equal(suite.guard.Email, crew[0].User.Email)

	suite.Require().NoError(suite.patterns.SetActive(suite.ctx, pattern.ID, false))
	active, total, err := suite.patterns.List(suite.ctx, true, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
	suite.Empty(active)

	removed, err := suite.patterns.DeleteCrew(suite.ctx, pattern.ID, uuid.New())
	suite.NoError(err)
	suite.False(removed)
}

// TestShiftRepositoryTestSuite runs the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
