package service_test

import (
	"context"
	"testing"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/mocks"
	"marina-guard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockMessages *mocks.MockMessageRepositoryInterface
	mockUsers    *mocks.MockUserRepositoryInterface
	events       *recordingPublisher
	service      *service.MessageService
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMessages = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.events = &recordingPublisher{}
	suite.service = service.NewMessageService(
		suite.mockMessages,
		suite.mockUsers,
		service.NewValidator(),
		service.Options{Clock: fixedClock, Events: suite.events},
	)
}

func (suite *MessageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MessageServiceTestSuite) TestSend_GuardToSupervisor() {
	caller := guard()
	recipient := userWithRole(models.RoleSupervisor)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), recipient.ID).Return(recipient, nil)
	suite.mockMessages.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Message) error {
			m.ID = uuid.New()
			m.CreatedAt = fixedNow
			return nil
		})

	resp, err := suite.service.Send(context.Background(), caller, &service.SendMessageRequest{
		RecipientID: recipient.ID,
		Subject:     " Gate 2 ",
		Body:        "The gate 2 lock is jammed.",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), caller.UserID, resp.SenderID)
	assert.Equal(suite.T(), "Gate 2", resp.Subject)
	assert.False(suite.T(), resp.Read)
	assert.Equal(suite.T(), []string{service.EventMessageSent}, suite.events.names())
}

func (suite *MessageServiceTestSuite) TestSend_Rejections() {
	suite.T().Run("guard to guard", func(t *testing.T) {
		recipient := userWithRole(models.RoleGuard)
		suite.mockUsers.EXPECT().GetByID(gomock.Any(), recipient.ID).Return(recipient, nil)

		_, err := suite.service.Send(context.Background(), guard(), &service.SendMessageRequest{RecipientID: recipient.ID, Body: "hi"})
		assert.True(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("to self", func(t *testing.T) {
		caller := supervisor()
		_, err := suite.service.Send(context.Background(), caller, &service.SendMessageRequest{RecipientID: caller.UserID, Body: "note"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMessageTarget)
	})

	suite.T().Run("archived recipient", func(t *testing.T) {
		recipient := userWithRole(models.RoleSupervisor)
		recipient.ArchivedAt = timePtr(fixedNow)
		suite.mockUsers.EXPECT().GetByID(gomock.Any(), recipient.ID).Return(recipient, nil)

		_, err := suite.service.Send(context.Background(), guard(), &service.SendMessageRequest{RecipientID: recipient.ID, Body: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrUserArchived)
	})

	suite.T().Run("empty body", func(t *testing.T) {
		_, err := suite.service.Send(context.Background(), guard(), &service.SendMessageRequest{RecipientID: uuid.New()})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func (suite *MessageServiceTestSuite) TestSend_SupervisorToGuard() {
	recipient := userWithRole(models.RoleGuard)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), recipient.ID).Return(recipient, nil)
	suite.mockMessages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.service.Send(context.Background(), supervisor(), &service.SendMessageRequest{RecipientID: recipient.ID, Body: "Cover pier 4 tonight"})

	require.NoError(suite.T(), err)
}

func (suite *MessageServiceTestSuite) TestMarkRead() {
	caller := guard()

	suite.T().Run("only the recipient", func(t *testing.T) {
		msg := &models.Message{BaseModel: models.BaseModel{ID: uuid.New()}, RecipientID: uuid.New()}
		suite.mockMessages.EXPECT().GetByID(gomock.Any(), msg.ID).Return(msg, nil)

		_, err := suite.service.MarkRead(context.Background(), caller, msg.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotMessageRecipient)
	})

	suite.T().Run("marks unread message", func(t *testing.T) {
		msg := &models.Message{BaseModel: models.BaseModel{ID: uuid.New()}, RecipientID: caller.UserID}
		suite.mockMessages.EXPECT().GetByID(gomock.Any(), msg.ID).Return(msg, nil)
		suite.mockMessages.EXPECT().MarkRead(gomock.Any(), msg.ID, fixedNow).Return(nil)

		resp, err := suite.service.MarkRead(context.Background(), caller, msg.ID)
		require.NoError(t, err)
		assert.True(t, resp.Read)
	})

	suite.T().Run("already read is a no-op", func(t *testing.T) {
		msg := &models.Message{BaseModel: models.BaseModel{ID: uuid.New()}, RecipientID: caller.UserID, ReadAt: timePtr(fixedNow)}
		suite.mockMessages.EXPECT().GetByID(gomock.Any(), msg.ID).Return(msg, nil)

		resp, err := suite.service.MarkRead(context.Background(), caller, msg.ID)
		require.NoError(t, err)
		assert.True(t, resp.Read)
	})
}

func (suite *MessageServiceTestSuite) TestInbox() {
	caller := guard()
	suite.mockMessages.EXPECT().ListByRecipient(gomock.Any(), caller.UserID, true, 10, 10).
		Return([]models.Message{{RecipientID: caller.UserID, Body: "a"}}, int64(11), nil)

	resp, err := suite.service.Inbox(context.Background(), caller, true, 2, 10)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(11), resp.Total)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Len(suite.T(), resp.Messages, 1)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
