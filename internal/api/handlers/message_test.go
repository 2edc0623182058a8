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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MessageHandlerTestSuite defines the test suite for MessageHandler
type MessageHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMessageServiceInterface
	handler     *handlers.MessageHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MessageHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMessageServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMessageHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.ActAs(guardCaller)

	messages := suite.httpSuite.Router.Group("/api/v1/messages")
	{
		messages.GET("", suite.handler.Inbox)
		messages.GET("/sent", suite.handler.Sent)
		messages.GET("/unread-count", suite.handler.UnreadCount)
		messages.POST("", suite.handler.Send)
		messages.POST("/:id/read", suite.handler.MarkRead)
	}
}

// TearDownTest cleans up after each test
func (suite *MessageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MessageHandlerTestSuite) TestSend() {
	recipient := supervisorCaller.UserID

	suite.T().Run("Guard to supervisor", func(t *testing.T) {
		suite.mockService.EXPECT().
			Send(gomock.Any(), guardCaller, &service.SendMessageRequest{RecipientID: recipient, Subject: "Gate", Body: "North gate sticks"}).
			Return(&service.MessageResponse{ID: uuid.New(), SenderID: guardCaller.UserID, RecipientID: recipient, Body: "North gate sticks"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/messages", map[string]interface{}{
			"recipient_id": recipient.String(),
			"subject":      "Gate",
			"body":         "North gate sticks",
		})

		var response service.MessageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.False(t, response.Read)
	})

	suite.T().Run("Guard to guard", func(t *testing.T) {
		suite.mockService.EXPECT().
			Send(gomock.Any(), guardCaller, gomock.Any()).
			Return(nil, apperrors.NewAuthorizationError("Guards can only message supervisors.")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/messages", map[string]interface{}{
			"recipient_id": uuid.New().String(),
			"body":         "hi",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Guards can only message supervisors.")
	})

	suite.T().Run("Self", func(t *testing.T) {
		suite.mockService.EXPECT().
			Send(gomock.Any(), guardCaller, gomock.Any()).
			Return(nil, apperrors.ErrInvalidMessageTarget).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/messages", map[string]interface{}{
			"recipient_id": guardCaller.UserID.String(),
			"body":         "note to self",
		})
		testutils.AssertFieldErrors(t, recorder, "recipient_id")
	})
}

func (suite *MessageHandlerTestSuite) TestInbox() {
	suite.mockService.EXPECT().
		Inbox(gomock.Any(), guardCaller, true, 2, 10).
		Return(&service.MessageListResponse{Messages: []service.MessageResponse{}, Page: 2, PageSize: 10}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/messages?unread=true&page=2&page_size=10", nil)

	var response service.MessageListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(2, response.Page)
}

func (suite *MessageHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().
		UnreadCount(gomock.Any(), guardCaller).
		Return(int64(3), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/messages/unread-count", nil)

	var response handlers.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(3), response.Unread)
}

func (suite *MessageHandlerTestSuite) TestMarkRead() {
	messageID := uuid.New()

	suite.T().Run("Recipient", func(t *testing.T) {
		readAt := "2025-03-01T10:00:00Z"
		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), guardCaller, messageID).
			Return(&service.MessageResponse{ID: messageID, Read: true, ReadAt: &readAt}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/messages/"+messageID.String()+"/read", nil)

		var response service.MessageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Read)
	})

	suite.T().Run("Not the recipient", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), guardCaller, messageID).
			Return(nil, apperrors.ErrNotMessageRecipient).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/messages/"+messageID.String()+"/read", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestMessageHandlerTestSuite runs the test suite
func TestMessageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}
