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

	"github.com/stretchr/testify/suite"
)

// LogRepositoryTestSuite tests the LogRepository and MessageRepository
type LogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.LogRepository
	messages      *repository.MessageRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	guard      *models.User
	supervisor *models.User
	location   *models.Location
}

// SetupSuite runs before all tests in the suite
func (suite *LogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewLogRepository(suite.baseTestSuite.DB)
	suite.messages = repository.NewMessageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *LogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a guard, a supervisor and a location
func (suite *LogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	users := repository.NewUserRepository(suite.baseTestSuite.DB)
	suite.guard = suite.factories.User.Create()
	suite.Require().NoError(users.Create(suite.ctx, suite.guard))
	suite.supervisor = suite.factories.User.WithRole(models.RoleSupervisor)
	suite.Require().NoError(users.Create(suite.ctx, suite.supervisor))
	suite.location = suite.factories.Location.Create()
	suite.Require().NoError(repository.NewLocationRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.location))
}

// TearDownTest runs after each test
func (suite *LogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LogRepositoryTestSuite) TestMarkReviewedOnlyOnce() {
	log := suite.factories.Log.Incident(suite.guard.ID, suite.location.ID, models.LogSeverityHigh)
	suite.Require().NoError(suite.repo.Create(suite.ctx, log))

	at := time.Now().UTC().Truncate(time.Second)
	reviewed, err := suite.repo.MarkReviewed(suite.ctx, log.ID, suite.supervisor.ID, at, "police informed", models.LogStatusResolved)
	suite.NoError(err)
	suite.True(reviewed)

	reviewed, err = suite.repo.MarkReviewed(suite.ctx, log.ID, suite.guard.ID, at, "second opinion", models.LogStatusClosed)
	suite.NoError(err)
	suite.False(reviewed)

	stored, err := suite.repo.GetByID(suite.ctx, log.ID)
	suite.Require().NoError(err)
	suite.True(stored.IsReviewed())
	suite.Equal(suite.supervisor.ID, *stored.ReviewedBy)
	suite.Equal(models.LogStatusResolved, stored.Status)
	suite.Equal("police informed", stored.ReviewNotes)
}

func (suite *LogRepositoryTestSuite) TestListFilters() {
	general := suite.factories.Log.Create(suite.guard.ID, suite.location.ID)
	incident := suite.factories.Log.Incident(suite.guard.ID, suite.location.ID, models.LogSeverityLow)
	archived := suite.factories.Log.Create(suite.supervisor.ID, suite.location.ID)
	at := time.Now().UTC()
	archived.ArchivedAt = &at
	for _, l := range []*models.Log{general, incident, archived} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, l))
	}

	suite.Run("Archived hidden by default", func() {
		_, total, err := suite.repo.List(suite.ctx, repository.LogFilter{}, 20, 0)
		suite.NoError(err)
		suite.Equal(int64(2), total)
	})

	suite.Run("By type", func() {
		logType := models.LogTypeIncident
		logs, total, err := suite.repo.List(suite.ctx, repository.LogFilter{Type: &logType}, 20, 0)
		suite.NoError(err)
		suite.Equal(int64(1), total)
		suite.Equal(incident.ID, logs[0].ID)
		suite.Require().NotNil(logs[0].Severity)
		suite.Equal(models.LogSeverityLow, *logs[0].Severity)
	})

	suite.Run("By author including archived", func() {
		logs, _, err := suite.repo.List(suite.ctx, repository.LogFilter{UserID: &suite.supervisor.ID, IncludeArchived: true}, 20, 0)
		suite.NoError(err)
		suite.Require().Len(logs, 1)
		suite.True(logs[0].IsArchived())
	})

	suite.Run("Unreviewed", func() {
		_, err := suite.repo.MarkReviewed(suite.ctx, general.ID, suite.supervisor.ID, time.Now().UTC(), "", models.LogStatusClosed)
		suite.Require().NoError(err)

		logs, _, err := suite.repo.List(suite.ctx, repository.LogFilter{Unreviewed: true}, 20, 0)
		suite.NoError(err)
		suite.Require().Len(logs, 1)
		suite.Equal(incident.ID, logs[0].ID)
	})
}

func (suite *LogRepositoryTestSuite) TestMessages() {
	first := suite.factories.Message.Create(suite.supervisor.ID, suite.guard.ID)
	second := suite.factories.Message.Create(suite.supervisor.ID, suite.guard.ID)
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	suite.Require().NoError(suite.messages.Create(suite.ctx, first))
	suite.Require().NoError(suite.messages.Create(suite.ctx, second))

	unread, err := suite.messages.CountUnread(suite.ctx, suite.guard.ID)
	suite.NoError(err)
	suite.Equal(int64(2), unread)

	inbox, total, err := suite.messages.ListByRecipient(suite.ctx, suite.guard.ID, false, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(second.ID, inbox[0].ID, "newest first")
	suite.Require().NotNil(inbox[0].Sender)
	suite.Equal(suite.supervisor.ID, inbox[0].Sender.ID)

	readAt := time.Now().UTC().Truncate(time.Second)
	suite.Require().NoError(suite.messages.MarkRead(suite.ctx, first.ID, readAt))
	// Marking again keeps the original timestamp
	suite.Require().NoError(suite.messages.MarkRead(suite.ctx, first.ID, readAt.Add(time.Hour)))

	stored, err := suite.messages.GetByID(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.ReadAt)
	suite.True(stored.ReadAt.Equal(readAt))

	unreadOnly, _, err := suite.messages.ListByRecipient(suite.ctx, suite.guard.ID, true, 10, 0)
	suite.NoError(err)
	suite.Len(unreadOnly, 1)

	sent, total, err := suite.messages.ListBySender(suite.ctx, suite.supervisor.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(sent, 2)
}

// TestLogRepositoryTestSuite runs the test suite
func TestLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LogRepositoryTestSuite))
}
