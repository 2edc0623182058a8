package testutils

import (
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique subject and email so several users can coexist in one test
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ExternalID: "sub-" + suffix,
		Email:      "guard." + suffix + "@marina.test",
		Name:       "Test Guard",
		Phone:      "+1-555-0100",
		Role:       models.RoleGuard,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Archived creates an archived user
func (f *UserFactory) Archived() *models.User {
	user := f.Create()
	at := time.Now().Add(-time.Hour)
	user.ArchivedAt = &at
	return user
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	id := uuid.New()
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Dock " + id.String()[:6],
		Description: "A test dock",
		Address:     "1 Harbour Road",
		IsActive:    true,
	}
}

// WithName sets a custom name for the location
func (f *LocationFactory) WithName(name string) *models.Location {
	location := f.Create()
	location.Name = name
	return location
}

// WithCapacity sets a staffing cap on the location
func (f *LocationFactory) WithCapacity(capacity int) *models.Location {
	location := f.Create()
	location.MaxCapacity = &capacity
	return location
}

// DutySessionFactory provides methods to create test DutySession data
type DutySessionFactory struct{}

// NewDutySessionFactory creates a new DutySessionFactory
func NewDutySessionFactory() *DutySessionFactory {
	return &DutySessionFactory{}
}

// Create creates an open test DutySession for the user
func (f *DutySessionFactory) Create(userID uuid.UUID) *models.DutySession {
	return &models.DutySession{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		ClockInTime: time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second),
	}
}

// AtLocation creates an open session stationed at the location
func (f *DutySessionFactory) AtLocation(userID, locationID uuid.UUID) *models.DutySession {
	session := f.Create(userID)
	session.LocationID = &locationID
	return session
}

// Closed creates a finished session
func (f *DutySessionFactory) Closed(userID uuid.UUID) *models.DutySession {
	session := f.Create(userID)
	out := session.ClockInTime.Add(time.Hour)
	session.ClockOutTime = &out
	return session
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift of eight hours starting tomorrow at 08:00 UTC
func (f *ShiftFactory) Create(locationID uuid.UUID) *models.Shift {
	start := time.Now().UTC().Truncate(24 * time.Hour).Add(24*time.Hour + 8*time.Hour)
	return f.Between(locationID, start, start.Add(8*time.Hour))
}

// Between creates a test Shift covering [start, end)
func (f *ShiftFactory) Between(locationID uuid.UUID, start, end time.Time) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Day watch",
		StartTime:  start,
		EndTime:    end,
		LocationID: locationID,
	}
}

// RecurringPatternFactory provides methods to create test RecurringShiftPattern data
type RecurringPatternFactory struct{}

// NewRecurringPatternFactory creates a new RecurringPatternFactory
func NewRecurringPatternFactory() *RecurringPatternFactory {
	return &RecurringPatternFactory{}
}

// Create creates a weekday 08:00-16:00 pattern starting today
func (f *RecurringPatternFactory) Create(locationID uuid.UUID) *models.RecurringShiftPattern {
	return &models.RecurringShiftPattern{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Weekday days",
		LocationID: locationID,
		StartTime:  "08:00",
		EndTime:    "16:00",
		DaysOfWeek: pq.Int64Array{1, 2, 3, 4, 5},
		StartDate:  time.Now().UTC().Truncate(24 * time.Hour),
		IsActive:   true,
	}
}

// LogFactory provides methods to create test Log data
type LogFactory struct{}

// NewLogFactory creates a new LogFactory
func NewLogFactory() *LogFactory {
	return &LogFactory{}
}

// Create creates a general log written by the user at the location
func (f *LogFactory) Create(userID, locationID uuid.UUID) *models.Log {
	return &models.Log{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:        models.LogTypeGeneral,
		Title:       "Routine note",
		Description: "Nothing to report",
		LocationID:  locationID,
		UserID:      userID,
		Status:      models.LogStatusOpen,
	}
}

// Incident creates an incident log with the given severity
func (f *LogFactory) Incident(userID, locationID uuid.UUID, severity models.LogSeverity) *models.Log {
	log := f.Create(userID, locationID)
	log.Type = models.LogTypeIncident
	log.Title = "Unattended vessel"
	log.Severity = &severity
	return log
}

// ChecklistItemFactory provides methods to create test SafetyChecklistItem data
type ChecklistItemFactory struct{}

// NewChecklistItemFactory creates a new ChecklistItemFactory
func NewChecklistItemFactory() *ChecklistItemFactory {
	return &ChecklistItemFactory{}
}

// Create creates an item that applies to every location
func (f *ChecklistItemFactory) Create(name string) *models.SafetyChecklistItem {
	return &models.SafetyChecklistItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     name,
		IsActive: true,
	}
}

// ForLocation creates an item scoped to one location
func (f *ChecklistItemFactory) ForLocation(name string, locationID uuid.UUID) *models.SafetyChecklistItem {
	item := f.Create(name)
	item.LocationID = &locationID
	return item
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates an unread message
func (f *MessageFactory) Create(senderID, recipientID uuid.UUID) *models.Message {
	return &models.Message{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     "Gate B",
		Body:        "Padlock on gate B is loose",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User             *UserFactory
	Location         *LocationFactory
	DutySession      *DutySessionFactory
	Shift            *ShiftFactory
	RecurringPattern *RecurringPatternFactory
	Log              *LogFactory
	ChecklistItem    *ChecklistItemFactory
	Message          *MessageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:             NewUserFactory(),
		Location:         NewLocationFactory(),
		DutySession:      NewDutySessionFactory(),
		Shift:            NewShiftFactory(),
		RecurringPattern: NewRecurringPatternFactory(),
		Log:              NewLogFactory(),
		ChecklistItem:    NewChecklistItemFactory(),
		Message:          NewMessageFactory(),
	}
}
