package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/mocks"
	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DutySessionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSessions  *mocks.MockDutySessionRepositoryInterface
	mockUsers     *mocks.MockUserRepositoryInterface
	mockLocations *mocks.MockLocationRepositoryInterface
	mockShifts    *mocks.MockShiftRepositoryInterface
	mockChecklist *mocks.MockChecklistRepositoryInterface
	mockLogs      *mocks.MockLogRepositoryInterface
	mockTx        *mocks.MockTransactorInterface
	events        *recordingPublisher
	metrics       *countingMetrics
	service       *service.DutySessionService
}

func (suite *DutySessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessions = mocks.NewMockDutySessionRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockLocations = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockShifts = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockChecklist = mocks.NewMockChecklistRepositoryInterface(suite.ctrl)
	suite.mockLogs = mocks.NewMockLogRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.events = &recordingPublisher{}
	suite.metrics = newCountingMetrics()
	suite.service = service.NewDutySessionService(
		suite.mockSessions,
		suite.mockUsers,
		suite.mockLocations,
		suite.mockShifts,
		suite.mockChecklist,
		suite.mockLogs,
		suite.mockTx,
		service.NewValidator(),
		service.Options{Clock: fixedClock, Events: suite.events, Metrics: suite.metrics},
	)
}

func (suite *DutySessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DutySessionServiceTestSuite) expectActiveUser(caller service.Caller) {
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), caller.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: caller.UserID}, Role: caller.Role, Name: "Pat"}, nil)
}

func (suite *DutySessionServiceTestSuite) expectOffDuty(caller service.Caller) {
	suite.mockSessions.EXPECT().GetOpenByUserID(gomock.Any(), caller.UserID).Return(nil, gorm.ErrRecordNotFound)
}

func (suite *DutySessionServiceTestSuite) openSession(owner uuid.UUID) *models.DutySession {
	return &models.DutySession{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      owner,
		LocationID:  uuidPtr(uuid.New()),
		ClockInTime: fixedNow.Add(-8 * time.Hour),
	}
}

func (suite *DutySessionServiceTestSuite) TestClockIn_GuardWithoutLocation_LocationRequired() {
	caller := guard()
	suite.expectActiveUser(caller)
	suite.expectOffDuty(caller)

	resp, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLocationRequired)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DutySessionServiceTestSuite) TestClockIn_GuardWithLocation_Success() {
	caller := guard()
	locationID := uuid.New()
	suite.expectActiveUser(caller)
	suite.expectOffDuty(caller)
	suite.mockLocations.EXPECT().GetByID(gomock.Any(), locationID).
		Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}, Name: "Dock A"}, nil)
	suite.mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.DutySession) error {
			s.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{LocationID: &locationID})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.LocationID)
	assert.Equal(suite.T(), locationID, *resp.LocationID)
	assert.Equal(suite.T(), models.DutyStateOnDutyAtLocation, resp.State)
	assert.Equal(suite.T(), fixedNow.Format(service.TimeFormat), resp.ClockInTime)
	assert.Nil(suite.T(), resp.ClockOutTime)
	assert.Equal(suite.T(), 1, suite.metrics.clockIns[models.RoleGuard])
}

func (suite *DutySessionServiceTestSuite) TestClockIn_ElevatedRolesAlwaysRoam() {
	for _, caller := range []service.Caller{supervisor(), admin(), superAdmin()} {
		locationID := uuid.New()
		suite.expectActiveUser(caller)
		suite.expectOffDuty(caller)

		var created *models.DutySession
		suite.mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.DutySession) error {
				created = s
				return nil
			})

		resp, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{LocationID: &locationID})

		require.NoError(suite.T(), err, caller.Role)
		require.NotNil(suite.T(), created)
		assert.Nil(suite.T(), created.LocationID, caller.Role)
		assert.Nil(suite.T(), resp.LocationID)
		assert.Equal(suite.T(), models.DutyStateOnDuty, resp.State)
	}
}

func (suite *DutySessionServiceTestSuite) TestClockIn_AlreadyOnDuty() {
	caller := guard()
	locationID := uuid.New()
	suite.expectActiveUser(caller)
	suite.mockSessions.EXPECT().GetOpenByUserID(gomock.Any(), caller.UserID).Return(suite.openSession(caller.UserID), nil)

	_, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{LocationID: &locationID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyOnDuty)
	assert.Equal(suite.T(), "Already on duty. Please sign off first.", err.Error())
}

func (suite *DutySessionServiceTestSuite) TestClockIn_ConcurrentInsertRejectedByIndex() {
	caller := supervisor()
	suite.expectActiveUser(caller)
	suite.expectOffDuty(caller)
	suite.mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "ux_duty_sessions_open_per_user"})

	_, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyOnDuty)
	assert.Empty(suite.T(), suite.metrics.clockIns)
}

func (suite *DutySessionServiceTestSuite) TestClockIn_ArchivedUser() {
	caller := guard()
	archivedAt := fixedNow.Add(-time.Hour)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), caller.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: caller.UserID}, ArchivedAt: &archivedAt}, nil)

	_, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{LocationID: uuidPtr(uuid.New())})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserArchived)
}

func (suite *DutySessionServiceTestSuite) TestClockIn_UnknownLocation() {
	caller := guard()
	locationID := uuid.New()
	suite.expectActiveUser(caller)
	suite.expectOffDuty(caller)
	suite.mockLocations.EXPECT().GetByID(gomock.Any(), locationID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ClockIn(context.Background(), caller, &service.ClockInRequest{LocationID: &locationID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLocationNotFound)
}

func (suite *DutySessionServiceTestSuite) TestClockOut() {
	suite.T().Run("not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.ClockOut(context.Background(), guard(), id, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrDutySessionNotFound)
	})

	suite.T().Run("not the owner", func(t *testing.T) {
		session := suite.openSession(uuid.New())
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

		_, err := suite.service.ClockOut(context.Background(), supervisor(), session.ID, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrNotSessionOwner)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("already closed", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		session.ClockOutTime = timePtr(fixedNow.Add(-time.Hour))
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

		_, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrSessionAlreadyClosed)
	})

	suite.T().Run("equipment still out", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockSessions.EXPECT().CountUnreturnedEquipment(gomock.Any(), session.ID).Return(int64(1), nil)

		_, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEquipmentNotReturned)
	})

	suite.T().Run("end mileage below start", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		session.StartMileage = intPtr(1200)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockSessions.EXPECT().CountUnreturnedEquipment(gomock.Any(), session.ID).Return(int64(0), nil)

		_, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{EndMileage: intPtr(1100)})
		assert.ErrorIs(t, err, apperrors.ErrMileageInconsistent)
	})

	suite.T().Run("end mileage missing", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		session.StartMileage = intPtr(1200)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockSessions.EXPECT().CountUnreturnedEquipment(gomock.Any(), session.ID).Return(int64(0), nil)

		_, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrMileageRequired)
	})

	suite.T().Run("success", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		session.StartMileage = intPtr(1200)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockSessions.EXPECT().CountUnreturnedEquipment(gomock.Any(), session.ID).Return(int64(0), nil)
		suite.mockSessions.EXPECT().Close(gomock.Any(), session.ID, fixedNow, "quiet night", intPtr(1250)).Return(true, nil)

		resp, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{Notes: "quiet night", EndMileage: intPtr(1250)})
		require.NoError(t, err)
		require.NotNil(t, resp.ClockOutTime)
		assert.Equal(t, fixedNow.Format(service.TimeFormat), *resp.ClockOutTime)
		assert.Equal(t, "quiet night", resp.Notes)
		assert.Equal(t, models.DutyStateOffDuty, resp.State)
	})

	suite.T().Run("closed concurrently", func(t *testing.T) {
		caller := guard()
		session := suite.openSession(caller.UserID)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockSessions.EXPECT().CountUnreturnedEquipment(gomock.Any(), session.ID).Return(int64(0), nil)
		suite.mockSessions.EXPECT().Close(gomock.Any(), session.ID, fixedNow, "", nil).Return(false, nil)

		_, err := suite.service.ClockOut(context.Background(), caller, session.ID, &service.ClockOutRequest{})
		assert.ErrorIs(t, err, apperrors.ErrSessionAlreadyClosed)
	})
}

func (suite *DutySessionServiceTestSuite) TestOverrideClockOut_RequiresSupervisor() {
	_, err := suite.service.OverrideClockOut(context.Background(), guard(), uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
}

func (suite *DutySessionServiceTestSuite) TestOverrideClockOut_StampsAuditNote() {
	session := suite.openSession(uuid.New())
	session.StartMileage = intPtr(10)
	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	suite.mockSessions.EXPECT().Close(gomock.Any(), session.ID, fixedNow, service.OverrideClockOutNote, nil).Return(true, nil)

	resp, err := suite.service.OverrideClockOut(context.Background(), supervisor(), session.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Clocked out by supervisor override", resp.Notes)
	assert.Equal(suite.T(), []string{service.EventOverrideClockOut}, suite.events.names())
	assert.Equal(suite.T(), 1, suite.metrics.clockOuts[service.ClockOutKindOverride])
}

func (suite *DutySessionServiceTestSuite) TestOverrideClockOut_AlreadyClosed() {
	session := suite.openSession(uuid.New())
	session.ClockOutTime = timePtr(fixedNow)
	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	_, err := suite.service.OverrideClockOut(context.Background(), admin(), session.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionAlreadyClosed)
}

func (suite *DutySessionServiceTestSuite) TestCheckIn() {
	suite.T().Run("guards cannot check in", func(t *testing.T) {
		_, err := suite.service.CheckIn(context.Background(), guard(), uuid.New(), &service.CheckInRequest{LocationID: uuid.New()})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientRole)
	})

	suite.T().Run("closed session", func(t *testing.T) {
		caller := supervisor()
		session := suite.openSession(caller.UserID)
		session.ClockOutTime = timePtr(fixedNow)
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

		_, err := suite.service.CheckIn(context.Background(), caller, session.ID, &service.CheckInRequest{LocationID: uuid.New()})
		assert.ErrorIs(t, err, apperrors.ErrSessionNotOpen)
	})

	suite.T().Run("any existing location is accepted", func(t *testing.T) {
		caller := supervisor()
		session := suite.openSession(caller.UserID)
		session.LocationID = nil
		locationID := uuid.New()
		suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		suite.mockLocations.EXPECT().GetByID(gomock.Any(), locationID).
			Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}, Name: "Fuel dock"}, nil)
		suite.mockSessions.EXPECT().CreateCheckIn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.LocationCheckIn) error {
				assert.Equal(t, session.ID, c.DutySessionID)
				assert.Equal(t, caller.UserID, c.UserID)
				assert.Equal(t, fixedNow, c.CheckInTime)
				return nil
			})

		resp, err := suite.service.CheckIn(context.Background(), caller, session.ID, &service.CheckInRequest{LocationID: locationID, Notes: "gate locked"})
		require.NoError(t, err)
		assert.Equal(t, "Fuel dock", resp.LocationName)
		assert.Equal(t, "gate locked", resp.Notes)
	})
}

func (suite *DutySessionServiceTestSuite) TestSubmitChecklist_RejectsUncheckedItems() {
	caller := guard()
	session := suite.openSession(caller.UserID)
	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	_, err := suite.service.SubmitChecklist(context.Background(), caller, session.ID, &service.ChecklistSubmissionRequest{
		LocationID: *session.LocationID,
		Items: []service.ChecklistItemAnswer{
			{ItemID: uuid.New(), Checked: true},
			{ItemID: uuid.New(), Checked: false},
		},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrIncompleteChecklist)
}

func (suite *DutySessionServiceTestSuite) TestSubmitChecklist_OnlyOwner() {
	session := suite.openSession(uuid.New())
	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	_, err := suite.service.SubmitChecklist(context.Background(), supervisor(), session.ID, &service.ChecklistSubmissionRequest{
		LocationID: uuid.New(),
		Items:      []service.ChecklistItemAnswer{{ItemID: uuid.New(), Checked: true}},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotSessionOwner)
}

func (suite *DutySessionServiceTestSuite) TestSubmitChecklist_WritesResponseChecksAndLog() {
	caller := guard()
	session := suite.openSession(caller.UserID)
	session.ShiftID = uuidPtr(uuid.New())
	locationID := *session.LocationID
	rings, radio, lights := uuid.New(), uuid.New(), uuid.New()

	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	suite.mockLocations.EXPECT().GetByID(gomock.Any(), locationID).
		Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}}, nil)
	suite.mockChecklist.EXPECT().GetItemsByIDs(gomock.Any(), []uuid.UUID{rings, radio, lights}).
		Return([]models.SafetyChecklistItem{
			{BaseModel: models.BaseModel{ID: rings}, Name: "Life rings"},
			{BaseModel: models.BaseModel{ID: radio}, Name: "Radio"},
			{BaseModel: models.BaseModel{ID: lights}, Name: "Dock lights"},
		}, nil)
	expectTx(suite.mockTx)

	responseID := uuid.New()
	suite.mockChecklist.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.SafetyChecklistResponse) error {
			r.ID = responseID
			return nil
		})
	var checks []*models.SafetyChecklistItemCheck
	suite.mockChecklist.EXPECT().CreateItemCheck(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, c *models.SafetyChecklistItemCheck) error {
			checks = append(checks, c)
			return nil
		})
	var logEntry *models.Log
	suite.mockLogs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Log) error {
			l.ID = uuid.New()
			logEntry = l
			return nil
		})

	resp, err := suite.service.SubmitChecklist(context.Background(), caller, session.ID, &service.ChecklistSubmissionRequest{
		LocationID: locationID,
		Items: []service.ChecklistItemAnswer{
			{ItemID: rings, Checked: true, Notes: "one missing"},
			{ItemID: radio, Checked: true},
			{ItemID: lights, Checked: true, Notes: "  bulb flickering "},
		},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), responseID, resp.ResponseID)
	assert.Equal(suite.T(), 3, resp.CheckedCount)
	assert.Equal(suite.T(), 3, resp.TotalCount)

	require.Len(suite.T(), checks, 3)
	for _, c := range checks {
		assert.Equal(suite.T(), responseID, c.ResponseID)
	}
	assert.Equal(suite.T(), "Life rings", checks[0].ItemName)
	assert.Equal(suite.T(), "one missing", checks[0].Notes)

	require.NotNil(suite.T(), logEntry)
	assert.Equal(suite.T(), models.LogTypeOnDutyChecklist, logEntry.Type)
	assert.Equal(suite.T(), session.ShiftID, logEntry.ShiftID)
	assert.Contains(suite.T(), logEntry.Description, "3/3 items checked")
	assert.Contains(suite.T(), logEntry.Description, "\n- Life rings: one missing")
	assert.Contains(suite.T(), logEntry.Description, "\n- Dock lights: bulb flickering")
	assert.NotContains(suite.T(), logEntry.Description, "- Radio")
	assert.Equal(suite.T(), 1, suite.metrics.checklistSubmitted)
}

func (suite *DutySessionServiceTestSuite) TestSubmitChecklist_LogFailureAbortsUnitOfWork() {
	caller := guard()
	session := suite.openSession(caller.UserID)
	itemID := uuid.New()

	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	suite.mockLocations.EXPECT().GetByID(gomock.Any(), *session.LocationID).Return(&models.Location{}, nil)
	suite.mockChecklist.EXPECT().GetItemsByIDs(gomock.Any(), gomock.Any()).
		Return([]models.SafetyChecklistItem{{BaseModel: models.BaseModel{ID: itemID}, Name: "Radio"}}, nil)
	expectTx(suite.mockTx)
	suite.mockChecklist.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockChecklist.EXPECT().CreateItemCheck(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockLogs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.service.SubmitChecklist(context.Background(), caller, session.ID, &service.ChecklistSubmissionRequest{
		LocationID: *session.LocationID,
		Items:      []service.ChecklistItemAnswer{{ItemID: itemID, Checked: true}},
	})

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection reset")
	assert.Equal(suite.T(), 0, suite.metrics.checklistSubmitted)
}

func (suite *DutySessionServiceTestSuite) TestSubmitChecklist_UnknownItem() {
	caller := guard()
	session := suite.openSession(caller.UserID)

	suite.mockSessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	suite.mockLocations.EXPECT().GetByID(gomock.Any(), *session.LocationID).Return(&models.Location{}, nil)
	suite.mockChecklist.EXPECT().GetItemsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := suite.service.SubmitChecklist(context.Background(), caller, session.ID, &service.ChecklistSubmissionRequest{
		LocationID: *session.LocationID,
		Items:      []service.ChecklistItemAnswer{{ItemID: uuid.New(), Checked: true}},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DutySessionServiceTestSuite) TestReturnEquipment() {
	suite.T().Run("already returned", func(t *testing.T) {
		caller := guard()
		checkout := &models.EquipmentCheckout{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: caller.UserID, ReturnedAt: timePtr(fixedNow)}
		suite.mockSessions.EXPECT().GetEquipmentCheckout(gomock.Any(), checkout.ID).Return(checkout, nil)

		_, err := suite.service.ReturnEquipment(context.Background(), caller, checkout.ID)
		assert.ErrorIs(t, err, apperrors.ErrEquipmentReturned)
	})

	suite.T().Run("supervisor returns on behalf", func(t *testing.T) {
		checkout := &models.EquipmentCheckout{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: uuid.New(), ItemName: "Radio 4"}
		suite.mockSessions.EXPECT().GetEquipmentCheckout(gomock.Any(), checkout.ID).Return(checkout, nil)
		suite.mockSessions.EXPECT().MarkEquipmentReturned(gomock.Any(), checkout.ID, fixedNow).Return(nil)

		resp, err := suite.service.ReturnEquipment(context.Background(), supervisor(), checkout.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp.ReturnedAt)
	})

	suite.T().Run("other guard", func(t *testing.T) {
		checkout := &models.EquipmentCheckout{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: uuid.New()}
		suite.mockSessions.EXPECT().GetEquipmentCheckout(gomock.Any(), checkout.ID).Return(checkout, nil)

		_, err := suite.service.ReturnEquipment(context.Background(), guard(), checkout.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotSessionOwner)
	})
}

func (suite *DutySessionServiceTestSuite) TestCurrent_NoOpenSession() {
	caller := guard()
	suite.expectOffDuty(caller)

	_, err := suite.service.Current(context.Background(), caller)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOpenSession)
}

func (suite *DutySessionServiceTestSuite) TestList_GuardsSeeOnlyTheirOwn() {
	caller := guard()
	other := uuid.New()
	suite.mockSessions.EXPECT().List(gomock.Any(), gomock.Any(), 20, 0).
		DoAndReturn(func(_ context.Context, f repository.DutySessionFilter, _, _ int) ([]models.DutySession, int64, error) {
			require.NotNil(suite.T(), f.UserID)
			assert.Equal(suite.T(), caller.UserID, *f.UserID)
			return nil, 0, nil
		})

	resp, err := suite.service.List(context.Background(), caller, service.ListDutySessionsRequest{UserID: &other})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Empty(suite.T(), resp.Sessions)
}

func (suite *DutySessionServiceTestSuite) TestList_SupervisorFiltersByUser() {
	other := uuid.New()
	suite.mockSessions.EXPECT().List(gomock.Any(), repository.DutySessionFilter{UserID: &other, OpenOnly: true}, 50, 50).
		Return([]models.DutySession{*suite.openSession(other)}, int64(51), nil)

	resp, err := suite.service.List(context.Background(), supervisor(), service.ListDutySessionsRequest{UserID: &other, OpenOnly: true, Page: 2, PageSize: 50})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(51), resp.Total)
	require.Len(suite.T(), resp.Sessions, 1)
	assert.Equal(suite.T(), models.DutyStateOnDutyAtLocation, resp.Sessions[0].State)
}

func TestDutySessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DutySessionServiceTestSuite))
}
