package repository

import (
	"context"
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactorInterface defines the interface for running work in a transaction
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	SetArchived(ctx context.Context, id uuid.UUID, at *time.Time) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	GetByName(ctx context.Context, name string) (*models.Location, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.Location, int64, error)
	Update(ctx context.Context, location *models.Location) error
}

// DutySessionRepositoryInterface defines the interface for duty session repository operations
type DutySessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.DutySession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DutySession, error)
	GetOpenByUserID(ctx context.Context, userID uuid.UUID) (*models.DutySession, error)
	List(ctx context.Context, filter DutySessionFilter, limit, offset int) ([]models.DutySession, int64, error)
	Close(ctx context.Context, id uuid.UUID, at time.Time, notes string, endMileage *int) (bool, error)
	CreateCheckIn(ctx context.Context, checkIn *models.LocationCheckIn) error
	ListCheckIns(ctx context.Context, sessionID uuid.UUID) ([]models.LocationCheckIn, error)
	CreateEquipmentCheckout(ctx context.Context, checkout *models.EquipmentCheckout) error
	GetEquipmentCheckout(ctx context.Context, id uuid.UUID) (*models.EquipmentCheckout, error)
	MarkEquipmentReturned(ctx context.Context, id uuid.UUID, at time.Time) error
	CountUnreturnedEquipment(ctx context.Context, sessionID uuid.UUID) (int64, error)
	ListEquipment(ctx context.Context, sessionID uuid.UUID) ([]models.EquipmentCheckout, error)
}

// ChecklistRepositoryInterface defines the interface for checklist repository operations
type ChecklistRepositoryInterface interface {
	CreateItem(ctx context.Context, item *models.SafetyChecklistItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.SafetyChecklistItem, error)
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SafetyChecklistItem, error)
	ListItems(ctx context.Context, locationID *uuid.UUID) ([]models.SafetyChecklistItem, error)
	UpdateItem(ctx context.Context, item *models.SafetyChecklistItem) error
	CreateResponse(ctx context.Context, response *models.SafetyChecklistResponse) error
	CreateItemCheck(ctx context.Context, check *models.SafetyChecklistItemCheck) error
	ListResponses(ctx context.Context, sessionID uuid.UUID) ([]models.SafetyChecklistResponse, error)
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	List(ctx context.Context, filter ShiftFilter, limit, offset int) ([]models.Shift, int64, error)
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForPatternStart(ctx context.Context, patternID uuid.UUID, start time.Time) (bool, error)
	CreateAssignment(ctx context.Context, assignment *models.ShiftAssignment) error
	DeleteAssignment(ctx context.Context, shiftID, userID uuid.UUID) (bool, error)
	CountAssignments(ctx context.Context, shiftID uuid.UUID) (int64, error)
	AssignmentExists(ctx context.Context, shiftID, userID uuid.UUID) (bool, error)
	LockForAssignment(ctx context.Context, shiftID uuid.UUID) error
}

// RecurringPatternRepositoryInterface defines the interface for recurring pattern repository operations
type RecurringPatternRepositoryInterface interface {
	Create(ctx context.Context, pattern *models.RecurringShiftPattern) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringShiftPattern, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.RecurringShiftPattern, int64, error)
	Update(ctx context.Context, pattern *models.RecurringShiftPattern) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CreateCrew(ctx context.Context, assignment *models.RecurringUserAssignment) error
	DeleteCrew(ctx context.Context, patternID, userID uuid.UUID) (bool, error)
	ListCrew(ctx context.Context, patternID uuid.UUID) ([]models.RecurringUserAssignment, error)
}

// LogRepositoryInterface defines the interface for log repository operations
type LogRepositoryInterface interface {
	Create(ctx context.Context, log *models.Log) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Log, error)
	List(ctx context.Context, filter LogFilter, limit, offset int) ([]models.Log, int64, error)
	Update(ctx context.Context, log *models.Log) error
	MarkReviewed(ctx context.Context, id, reviewerID uuid.UUID, at time.Time, notes string, status models.LogStatus) (bool, error)
}

// MessageRepositoryInterface defines the interface for message repository operations
type MessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Message, int64, error)
	ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Message, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

var (
	_ TransactorInterface                 = (*Transactor)(nil)
	_ UserRepositoryInterface             = (*UserRepository)(nil)
	_ LocationRepositoryInterface         = (*LocationRepository)(nil)
	_ DutySessionRepositoryInterface      = (*DutySessionRepository)(nil)
	_ ChecklistRepositoryInterface        = (*ChecklistRepository)(nil)
	_ ShiftRepositoryInterface            = (*ShiftRepository)(nil)
	_ RecurringPatternRepositoryInterface = (*RecurringPatternRepository)(nil)
	_ LogRepositoryInterface              = (*LogRepository)(nil)
	_ MessageRepositoryInterface          = (*MessageRepository)(nil)
)
