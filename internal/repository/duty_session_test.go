//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DutySessionRepositoryTestSuite tests the DutySessionRepository
type DutySessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.DutySessionRepository
	checklists    *repository.ChecklistRepository
	tx            *repository.Transactor
	factories     *testutils.FactorySet
	ctx           context.Context

	user     *models.User
	location *models.Location
}

// SetupSuite runs before all tests in the suite
func (suite *DutySessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewDutySessionRepository(suite.baseTestSuite.DB)
	suite.checklists = repository.NewChecklistRepository(suite.baseTestSuite.DB)
	suite.tx = repository.NewTransactor(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *DutySessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a guard and a location for every test
func (suite *DutySessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.Require().NoError(repository.NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.user))
	suite.location = suite.factories.Location.Create()
	suite.Require().NoError(repository.NewLocationRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.location))
}

// TearDownTest runs after each test
func (suite *DutySessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DutySessionRepositoryTestSuite) TestOnlyOneOpenSessionPerUser() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.DutySession.Create(suite.user.ID)))

	err := suite.repo.Create(suite.ctx, suite.factories.DutySession.Create(suite.user.ID))
	suite.Error(err)
	suite.True(repository.IsUniqueViolation(err, "ux_duty_sessions_open_per_user"))

	// Closed sessions do not count against the limit
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.DutySession.Closed(suite.user.ID)))
}

func (suite *DutySessionRepositoryTestSuite) TestGetOpenByUserID() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.DutySession.Closed(suite.user.ID)))
	open := suite.factories.DutySession.AtLocation(suite.user.ID, suite.location.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, open))

	session, err := suite.repo.GetOpenByUserID(suite.ctx, suite.user.ID)

	suite.NoError(err)
	suite.Equal(open.ID, session.ID)
	suite.Equal(models.DutyStateOnDutyAtLocation, session.State())
}

func (suite *DutySessionRepositoryTestSuite) TestCloseIsConditional() {
	session := suite.factories.DutySession.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, session))

	mileage := 1200
	at := time.Now().UTC().Truncate(time.Second)

	closed, err := suite.repo.Close(suite.ctx, session.ID, at, "quiet night", &mileage)
	suite.NoError(err)
	suite.True(closed)

	closed, err = suite.repo.Close(suite.ctx, session.ID, at.Add(time.Minute), "again", nil)
	suite.NoError(err)
	suite.False(closed, "a closed session must not be closed twice")

	stored, err := suite.repo.GetByID(suite.ctx, session.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.ClockOutTime)
	suite.True(stored.ClockOutTime.Equal(at))
	suite.Equal("quiet night", stored.Notes)
	suite.Equal(&mileage, stored.EndMileage)
}

func (suite *DutySessionRepositoryTestSuite) TestListOpenOnly() {
	other := suite.factories.User.Create()
	suite.Require().NoError(repository.NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, other))

	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.DutySession.Create(suite.user.ID)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.DutySession.Closed(other.ID)))

	sessions, total, err := suite.repo.List(suite.ctx, repository.DutySessionFilter{OpenOnly: true}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(suite.user.ID, sessions[0].UserID)

	_, total, err = suite.repo.List(suite.ctx, repository.DutySessionFilter{UserID: &other.ID}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *DutySessionRepositoryTestSuite) TestEquipment() {
	session := suite.factories.DutySession.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, session))

	radio := &models.EquipmentCheckout{
		DutySessionID: session.ID,
		UserID:        suite.user.ID,
		ItemName:      "Radio",
		SerialNumber:  "R-17",
		CheckedOutAt:  time.Now().UTC(),
	}
	torch := &models.EquipmentCheckout{
		DutySessionID: session.ID,
		UserID:        suite.user.ID,
		ItemName:      "Torch",
		CheckedOutAt:  time.Now().UTC(),
	}
	suite.Require().NoError(suite.repo.CreateEquipmentCheckout(suite.ctx, radio))
	suite.Require().NoError(suite.repo.CreateEquipmentCheckout(suite.ctx, torch))

	count, err := suite.repo.CountUnreturnedEquipment(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	suite.Require().NoError(suite.repo.MarkEquipmentReturned(suite.ctx, radio.ID, time.Now().UTC()))

	count, err = suite.repo.CountUnreturnedEquipment(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	items, err := suite.repo.ListEquipment(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Len(items, 2)
}

func (suite *DutySessionRepositoryTestSuite) TestCheckIns() {
	session := suite.factories.DutySession.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, session))

	first := time.Now().UTC().Add(-time.Hour)
	for i, at := range []time.Time{first.Add(30 * time.Minute), first} {
		suite.Require().NoError(suite.repo.CreateCheckIn(suite.ctx, &models.LocationCheckIn{
			DutySessionID: session.ID,
			LocationID:    suite.location.ID,
			UserID:        suite.user.ID,
			CheckInTime:   at,
			Notes:         []string{"second", "first"}[i],
		}))
	}

	checkIns, err := suite.repo.ListCheckIns(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Require().Len(checkIns, 2)
	suite.Equal("first", checkIns[0].Notes)
	suite.Require().NotNil(checkIns[0].Location)
	suite.Equal(suite.location.Name, checkIns[0].Location.Name)
}

// A failure part way through a checklist submission leaves nothing behind
func (suite *DutySessionRepositoryTestSuite) TestChecklistSubmissionRollsBack() {
	session := suite.factories.DutySession.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, session))
	item := suite.factories.ChecklistItem.Create("Life rings in place")
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, item))

	boom := errors.New("boom")
	err := suite.tx.WithinTransaction(suite.ctx, func(ctx context.Context) error {
		response := &models.SafetyChecklistResponse{
			DutySessionID: session.ID,
			UserID:        suite.user.ID,
			LocationID:    suite.location.ID,
			CompletedAt:   time.Now().UTC(),
		}
		if err := suite.checklists.CreateResponse(ctx, response); err != nil {
			return err
		}
		if err := suite.checklists.CreateItemCheck(ctx, &models.SafetyChecklistItemCheck{
			ResponseID: response.ID,
			ItemID:     item.ID,
			ItemName:   item.Name,
			Checked:    true,
		}); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	responses, err := suite.checklists.ListResponses(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Empty(responses)
}

func (suite *DutySessionRepositoryTestSuite) TestChecklistSubmissionCommits() {
	session := suite.factories.DutySession.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, session))
	item := suite.factories.ChecklistItem.ForLocation("Gate chained", suite.location.ID)
	suite.Require().NoError(suite.checklists.CreateItem(suite.ctx, item))

	err := suite.tx.WithinTransaction(suite.ctx, func(ctx context.Context) error {
		response := &models.SafetyChecklistResponse{
			DutySessionID: session.ID,
			UserID:        suite.user.ID,
			LocationID:    suite.location.ID,
			CompletedAt:   time.Now().UTC(),
		}
		if err := suite.checklists.CreateResponse(ctx, response); err != nil {
			return err
		}
		return suite.checklists.CreateItemCheck(ctx, &models.SafetyChecklistItemCheck{
			ResponseID: response.ID,
			ItemID:     item.ID,
			ItemName:   item.Name,
			Checked:    true,
			Notes:      "ok",
		})
	})
	suite.Require().NoError(err)

	responses, err := suite.checklists.ListResponses(suite.ctx, session.ID)
	suite.NoError(err)
	suite.Require().Len(responses, 1)
	suite.Require().Len(responses[0].ItemChecks, 1)
	suite.Equal("Gate chained", responses[0].ItemChecks[0].ItemName)
}

// TestDutySessionRepositoryTestSuite runs the test suite
func TestDutySessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DutySessionRepositoryTestSuite))
}
