package service

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	ResolveIdentity(ctx context.Context, identity Identity) (*UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	GetByExternalID(ctx context.Context, externalID string) (*UserResponse, error)
	List(ctx context.Context, caller Caller, req ListUsersRequest) (*UsersListResponse, error)
	UpdateRole(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error)
	Archive(ctx context.Context, caller Caller, id uuid.UUID) (*UserResponse, error)
	Unarchive(ctx context.Context, caller Caller, id uuid.UUID) (*UserResponse, error)
	UpdateProfile(ctx context.Context, caller Caller, req *UpdateProfileRequest) (*UserResponse, error)
}

// LocationServiceInterface defines the interface for location service
type LocationServiceInterface interface {
	Create(ctx context.Context, caller Caller, req *CreateLocationRequest) (*LocationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*LocationResponse, error)
	List(ctx context.Context, activeOnly bool, page, pageSize int) (*LocationListResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error)
}

// DutySessionServiceInterface defines the interface for duty session service
type DutySessionServiceInterface interface {
	ClockIn(ctx context.Context, caller Caller, req *ClockInRequest) (*DutySessionResponse, error)
	ClockOut(ctx context.Context, caller Caller, sessionID uuid.UUID, req *ClockOutRequest) (*DutySessionResponse, error)
	OverrideClockOut(ctx context.Context, caller Caller, sessionID uuid.UUID) (*DutySessionResponse, error)
	CheckIn(ctx context.Context, caller Caller, sessionID uuid.UUID, req *CheckInRequest) (*CheckInResponse, error)
	ListCheckIns(ctx context.Context, caller Caller, sessionID uuid.UUID) ([]CheckInResponse, error)
	SubmitChecklist(ctx context.Context, caller Caller, sessionID uuid.UUID, req *ChecklistSubmissionRequest) (*ChecklistSubmissionResponse, error)
	CheckOutEquipment(ctx context.Context, caller Caller, sessionID uuid.UUID, req *EquipmentCheckoutRequest) (*EquipmentResponse, error)
	ReturnEquipment(ctx context.Context, caller Caller, checkoutID uuid.UUID) (*EquipmentResponse, error)
	ListEquipment(ctx context.Context, caller Caller, sessionID uuid.UUID) ([]EquipmentResponse, error)
	Current(ctx context.Context, caller Caller) (*DutySessionResponse, error)
	Get(ctx context.Context, caller Caller, sessionID uuid.UUID) (*DutySessionResponse, error)
	List(ctx context.Context, caller Caller, req ListDutySessionsRequest) (*DutySessionListResponse, error)
}

// ChecklistServiceInterface defines the interface for checklist service
type ChecklistServiceInterface interface {
	ListItems(ctx context.Context, locationID *uuid.UUID) ([]ChecklistItemResponse, error)
	CreateItem(ctx context.Context, caller Caller, req *CreateChecklistItemRequest) (*ChecklistItemResponse, error)
	UpdateItem(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateChecklistItemRequest) (*ChecklistItemResponse, error)
	DeactivateItem(ctx context.Context, caller Caller, id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Create(ctx context.Context, caller Caller, req *CreateShiftRequest) (*ShiftResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*ShiftResponse, error)
	List(ctx context.Context, req ListShiftsRequest) (*ShiftListResponse, error)
	ListForUser(ctx context.Context, caller Caller, userID uuid.UUID, from, to *time.Time) ([]ShiftResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	Assign(ctx context.Context, caller Caller, shiftID uuid.UUID, req *AssignRequest) (*ShiftAssignmentResponse, error)
	Unassign(ctx context.Context, caller Caller, shiftID, userID uuid.UUID) error
}

// RecurringShiftServiceInterface defines the interface for recurring shift service
type RecurringShiftServiceInterface interface {
	CreatePattern(ctx context.Context, caller Caller, req *CreatePatternRequest) (*PatternResponse, error)
	GetPattern(ctx context.Context, id uuid.UUID) (*PatternResponse, error)
	ListPatterns(ctx context.Context, activeOnly bool, page, pageSize int) (*PatternListResponse, error)
	UpdatePattern(ctx context.Context, caller Caller, id uuid.UUID, req *UpdatePatternRequest) (*PatternResponse, error)
	DeletePattern(ctx context.Context, caller Caller, id uuid.UUID) error
	AssignCrew(ctx context.Context, caller Caller, patternID uuid.UUID, req *CrewMemberRequest) (*CrewMemberResponse, error)
	RemoveCrew(ctx context.Context, caller Caller, patternID, userID uuid.UUID) error
	Expand(ctx context.Context, caller Caller, patternID uuid.UUID, horizonDays int) (*ExpansionResponse, error)
	ExpandAllActive(ctx context.Context, horizonDays int) (int, error)
}

// LogServiceInterface defines the interface for log service
type LogServiceInterface interface {
	Create(ctx context.Context, caller Caller, req *CreateLogRequest) (*LogResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*LogResponse, error)
	List(ctx context.Context, caller Caller, req ListLogsRequest) (*LogListResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateLogRequest) (*LogResponse, error)
	Archive(ctx context.Context, caller Caller, id uuid.UUID) (*LogResponse, error)
	Review(ctx context.Context, caller Caller, id uuid.UUID, req *ReviewRequest) (*LogResponse, error)
}

// MessageServiceInterface defines the interface for message service
type MessageServiceInterface interface {
	Send(ctx context.Context, caller Caller, req *SendMessageRequest) (*MessageResponse, error)
	Inbox(ctx context.Context, caller Caller, unreadOnly bool, page, pageSize int) (*MessageListResponse, error)
	Sent(ctx context.Context, caller Caller, page, pageSize int) (*MessageListResponse, error)
	MarkRead(ctx context.Context, caller Caller, id uuid.UUID) (*MessageResponse, error)
	UnreadCount(ctx context.Context, caller Caller) (int64, error)
}

// ExportServiceInterface defines the interface for export service
type ExportServiceInterface interface {
	ShiftsWorkbook(ctx context.Context, caller Caller, req ExportShiftsRequest) (*bytes.Buffer, string, error)
	UserCalendar(ctx context.Context, caller Caller, userID uuid.UUID, from, to *time.Time) (string, error)
}

var (
	_ UserServiceInterface           = (*UserService)(nil)
	_ LocationServiceInterface       = (*LocationService)(nil)
	_ DutySessionServiceInterface    = (*DutySessionService)(nil)
	_ ChecklistServiceInterface      = (*ChecklistService)(nil)
	_ ShiftServiceInterface          = (*ShiftService)(nil)
	_ RecurringShiftServiceInterface = (*RecurringShiftService)(nil)
	_ LogServiceInterface            = (*LogService)(nil)
	_ MessageServiceInterface        = (*MessageService)(nil)
	_ ExportServiceInterface         = (*ExportService)(nil)
)
