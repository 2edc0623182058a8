package service

import (
	"context"
	"fmt"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OverrideClockOutNote is stamped on sessions closed by a supervisor
const OverrideClockOutNote = "Clocked out by supervisor override"

// Clock-out kinds reported to metrics
const (
	ClockOutKindSelf     = "self"
	ClockOutKindOverride = "override"
)

// DutySessionService owns the on/off duty state machine: clock-in, clock-out,
// supervisor override, roaming check-ins, equipment and the safety checklist.
type DutySessionService struct {
	sessions   repository.DutySessionRepositoryInterface
	users      repository.UserRepositoryInterface
	locations  repository.LocationRepositoryInterface
	shifts     repository.ShiftRepositoryInterface
	checklists repository.ChecklistRepositoryInterface
	logs       repository.LogRepositoryInterface
	tx         repository.TransactorInterface
	validator  *validator.Validate
	opts       Options
}

// NewDutySessionService creates a new duty session service
func NewDutySessionService(
	sessions repository.DutySessionRepositoryInterface,
	users repository.UserRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	shifts repository.ShiftRepositoryInterface,
	checklists repository.ChecklistRepositoryInterface,
	logs repository.LogRepositoryInterface,
	tx repository.TransactorInterface,
	validator *validator.Validate,
	opts Options,
) *DutySessionService {
	return &DutySessionService{
		sessions:   sessions,
		users:      users,
		locations:  locations,
		shifts:     shifts,
		checklists: checklists,
		logs:       logs,
		tx:         tx,
		validator:  validator,
		opts:       opts.withDefaults(),
	}
}

// ClockInRequest represents the request to go on duty
type ClockInRequest struct {
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
	ShiftID      *uuid.UUID `json:"shift_id,omitempty"`
	StartMileage *int       `json:"start_mileage,omitempty" validate:"omitempty,min=0"`
}

// ClockOutRequest represents the request to go off duty
type ClockOutRequest struct {
	Notes      string `json:"notes" validate:"max=2000"`
	EndMileage *int   `json:"end_mileage,omitempty" validate:"omitempty,min=0"`
}

// CheckInRequest represents a roaming location check-in
type CheckInRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	Notes      string    `json:"notes" validate:"max=2000"`
}

// ChecklistItemAnswer is one answered checklist line
type ChecklistItemAnswer struct {
	ItemID  uuid.UUID `json:"item_id" validate:"required"`
	Checked bool      `json:"checked"`
	Notes   string    `json:"notes" validate:"max=1000"`
}

// ChecklistSubmissionRequest represents a completed on-duty safety checklist
type ChecklistSubmissionRequest struct {
	LocationID uuid.UUID             `json:"location_id" validate:"required"`
	Items      []ChecklistItemAnswer `json:"items" validate:"required,min=1,dive"`
}

// EquipmentCheckoutRequest represents equipment taken out on a session
type EquipmentCheckoutRequest struct {
	ItemName     string `json:"item_name" validate:"required,max=100"`
	SerialNumber string `json:"serial_number" validate:"max=100"`
}

// ListDutySessionsRequest filters duty session listings
type ListDutySessionsRequest struct {
	UserID   *uuid.UUID
	OpenOnly bool
	Page     int
	PageSize int
}

// DutySessionResponse represents a duty session
type DutySessionResponse struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	UserName     string           `json:"user_name,omitempty"`
	LocationID   *uuid.UUID       `json:"location_id"`
	LocationName string           `json:"location_name,omitempty"`
	ShiftID      *uuid.UUID       `json:"shift_id,omitempty"`
	State        models.DutyState `json:"state"`
	ClockInTime  string           `json:"clock_in_time"`
	ClockOutTime *string          `json:"clock_out_time"`
	StartMileage *int             `json:"start_mileage,omitempty"`
	EndMileage   *int             `json:"end_mileage,omitempty"`
	Notes        string           `json:"notes"`
}

// DutySessionListResponse represents a page of duty sessions
type DutySessionListResponse struct {
	Sessions []DutySessionResponse `json:"sessions"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// CheckInResponse represents a location check-in
type CheckInResponse struct {
	ID            uuid.UUID `json:"id"`
	DutySessionID uuid.UUID `json:"duty_session_id"`
	LocationID    uuid.UUID `json:"location_id"`
	LocationName  string    `json:"location_name,omitempty"`
	UserID        uuid.UUID `json:"user_id"`
	CheckInTime   string    `json:"check_in_time"`
	Notes         string    `json:"notes"`
}

// ChecklistSubmissionResponse summarizes a stored checklist
type ChecklistSubmissionResponse struct {
	ResponseID   uuid.UUID `json:"response_id"`
	LogID        uuid.UUID `json:"log_id"`
	CheckedCount int       `json:"checked_count"`
	TotalCount   int       `json:"total_count"`
	CompletedAt  string    `json:"completed_at"`
}

// EquipmentResponse represents an equipment checkout
type EquipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	DutySessionID uuid.UUID `json:"duty_session_id"`
	ItemName      string    `json:"item_name"`
	SerialNumber  string    `json:"serial_number"`
	CheckedOutAt  string    `json:"checked_out_at"`
	ReturnedAt    *string   `json:"returned_at"`
}

// ClockIn opens a duty session for the caller. Guards must name a location; elevated
// roles always roam, so any supplied location is discarded.
func (s *DutySessionService) ClockIn(ctx context.Context, caller Caller, req *ClockInRequest) (*DutySessionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "load user")
	}
	if user.IsArchived() {
		return nil, apperrors.ErrUserArchived
	}

	if _, err := s.sessions.GetOpenByUserID(ctx, caller.UserID); err == nil {
		return nil, apperrors.ErrAlreadyOnDuty
	} else if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check open session: %w", err)
	}

	var locationID *uuid.UUID
	if !caller.Role.IsElevated() {
		if req.LocationID == nil || *req.LocationID == uuid.Nil {
			return nil, apperrors.ErrLocationRequired
		}
		if _, err := s.locations.GetByID(ctx, *req.LocationID); err != nil {
			return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
		}
		locationID = req.LocationID
	}

	if req.ShiftID != nil {
		if _, err := s.shifts.GetByID(ctx, *req.ShiftID); err != nil {
			return nil, notFound(err, apperrors.ErrShiftNotFound, "verify shift")
		}
	}

	session := &models.DutySession{
		UserID:       caller.UserID,
		LocationID:   locationID,
		ShiftID:      req.ShiftID,
		ClockInTime:  s.opts.Clock(),
		StartMileage: req.StartMileage,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		// lost a race with a concurrent clock-in
		if repository.IsUniqueViolation(err, repository.OpenSessionConstraint) {
			return nil, apperrors.ErrAlreadyOnDuty
		}
		return nil, fmt.Errorf("failed to create duty session: %w", err)
	}
	session.User = user

	s.opts.Metrics.ClockIn(caller.Role)
	return toDutySessionResponse(session), nil
}

// ClockOut closes the caller's own session
func (s *DutySessionService) ClockOut(ctx context.Context, caller Caller, sessionID uuid.UUID, req *ClockOutRequest) (*DutySessionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if session.UserID != caller.UserID {
		return nil, apperrors.ErrNotSessionOwner
	}
	if !session.IsOpen() {
		return nil, apperrors.ErrSessionAlreadyClosed
	}

	unreturned, err := s.sessions.CountUnreturnedEquipment(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check equipment: %w", err)
	}
	if unreturned > 0 {
		return nil, apperrors.ErrEquipmentNotReturned
	}

	if session.StartMileage != nil {
		if req.EndMileage == nil {
			return nil, apperrors.ErrMileageRequired
		}
		if *req.EndMileage < *session.StartMileage {
			return nil, apperrors.ErrMileageInconsistent
		}
	}

	now := s.opts.Clock()
	closed, err := s.sessions.Close(ctx, sessionID, now, req.Notes, req.EndMileage)
	if err != nil {
		return nil, fmt.Errorf("failed to close duty session: %w", err)
	}
	if !closed {
		return nil, apperrors.ErrSessionAlreadyClosed
	}

	session.ClockOutTime = &now
	session.Notes = req.Notes
	session.EndMileage = req.EndMileage

	s.opts.Metrics.ClockOut(ClockOutKindSelf)
	return toDutySessionResponse(session), nil
}

// OverrideClockOut closes any user's session on behalf of a supervisor. Equipment and
// mileage checks do not apply.
func (s *DutySessionService) OverrideClockOut(ctx context.Context, caller Caller, sessionID uuid.UUID) (*DutySessionResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if !session.IsOpen() {
		return nil, apperrors.ErrSessionAlreadyClosed
	}

	now := s.opts.Clock()
	closed, err := s.sessions.Close(ctx, sessionID, now, OverrideClockOutNote, session.EndMileage)
	if err != nil {
		return nil, fmt.Errorf("failed to close duty session: %w", err)
	}
	if !closed {
		return nil, apperrors.ErrSessionAlreadyClosed
	}

	session.ClockOutTime = &now
	session.Notes = OverrideClockOutNote

	s.opts.Metrics.ClockOut(ClockOutKindOverride)
	s.publish(ctx, EventOverrideClockOut, map[string]interface{}{
		"duty_session_id": session.ID,
		"user_id":         session.UserID,
		"supervisor_id":   caller.UserID,
		"clock_out_time":  formatTime(now),
	})
	return toDutySessionResponse(session), nil
}

// CheckIn records a roaming supervisor's visit to a location. Any existing location
// is accepted; supervisors are not limited to locations they are scheduled at.
func (s *DutySessionService) CheckIn(ctx context.Context, caller Caller, sessionID uuid.UUID, req *CheckInRequest) (*CheckInResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if session.UserID != caller.UserID {
		return nil, apperrors.ErrNotSessionOwner
	}
	if !session.IsOpen() {
		return nil, apperrors.ErrSessionNotOpen
	}

	location, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
	}

	checkIn := &models.LocationCheckIn{
		DutySessionID: session.ID,
		LocationID:    location.ID,
		UserID:        caller.UserID,
		CheckInTime:   s.opts.Clock(),
		Notes:         req.Notes,
	}
	if err := s.sessions.CreateCheckIn(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}
	checkIn.Location = location

	return toCheckInResponse(checkIn), nil
}

// ListCheckIns returns a session's check-ins to its owner or to supervisors
func (s *DutySessionService) ListCheckIns(ctx context.Context, caller Caller, sessionID uuid.UUID) ([]CheckInResponse, error) {
	if _, err := s.getVisible(ctx, caller, sessionID); err != nil {
		return nil, err
	}

	checkIns, err := s.sessions.ListCheckIns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	out := make([]CheckInResponse, 0, len(checkIns))
	for i := range checkIns {
		out = append(out, *toCheckInResponse(&checkIns[i]))
	}
	return out, nil
}

// SubmitChecklist stores a fully checked safety checklist for the caller's open session.
// The response, its item checks and the generated log entry are written atomically.
func (s *DutySessionService) SubmitChecklist(ctx context.Context, caller Caller, sessionID uuid.UUID, req *ChecklistSubmissionRequest) (*ChecklistSubmissionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if session.UserID != caller.UserID {
		return nil, apperrors.ErrNotSessionOwner
	}
	if !session.IsOpen() {
		return nil, apperrors.ErrSessionNotOpen
	}

	for _, item := range req.Items {
		if !item.Checked {
			return nil, apperrors.ErrIncompleteChecklist
		}
	}

	if _, err := s.locations.GetByID(ctx, req.LocationID); err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ItemID)
	}
	items, err := s.checklists.GetItemsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist items: %w", err)
	}
	names := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	for _, answer := range req.Items {
		if _, ok := names[answer.ItemID]; !ok {
			return nil, apperrors.NewValidationError("items", fmt.Sprintf("unknown checklist item %s", answer.ItemID))
		}
	}

	now := s.opts.Clock()
	response := &models.SafetyChecklistResponse{
		DutySessionID: session.ID,
		UserID:        caller.UserID,
		LocationID:    req.LocationID,
		CompletedAt:   now,
	}
	logEntry := &models.Log{
		Type:        models.LogTypeOnDutyChecklist,
		Title:       "On-duty safety checklist",
		Description: checklistDescription(req.Items, names),
		LocationID:  req.LocationID,
		ShiftID:     session.ShiftID,
		UserID:      caller.UserID,
		Status:      models.LogStatusOpen,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checklists.CreateResponse(ctx, response); err != nil {
			return fmt.Errorf("failed to create checklist response: %w", err)
		}
		for _, answer := range req.Items {
			check := &models.SafetyChecklistItemCheck{
				ResponseID: response.ID,
				ItemID:     answer.ItemID,
				ItemName:   names[answer.ItemID],
				Checked:    answer.Checked,
				Notes:      strings.TrimSpace(answer.Notes),
			}
			if err := s.checklists.CreateItemCheck(ctx, check); err != nil {
				return fmt.Errorf("failed to create checklist item check: %w", err)
			}
		}
		if err := s.logs.Create(ctx, logEntry); err != nil {
			return fmt.Errorf("failed to create checklist log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.opts.Metrics.ChecklistSubmitted()
	return &ChecklistSubmissionResponse{
		ResponseID:   response.ID,
		LogID:        logEntry.ID,
		CheckedCount: countChecked(req.Items),
		TotalCount:   len(req.Items),
		CompletedAt:  formatTime(now),
	}, nil
}

// CheckOutEquipment records equipment taken out on the caller's open session
func (s *DutySessionService) CheckOutEquipment(ctx context.Context, caller Caller, sessionID uuid.UUID, req *EquipmentCheckoutRequest) (*EquipmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if session.UserID != caller.UserID {
		return nil, apperrors.ErrNotSessionOwner
	}
	if !session.IsOpen() {
		return nil, apperrors.ErrSessionNotOpen
	}

	checkout := &models.EquipmentCheckout{
		DutySessionID: session.ID,
		UserID:        caller.UserID,
		ItemName:      strings.TrimSpace(req.ItemName),
		SerialNumber:  strings.TrimSpace(req.SerialNumber),
		CheckedOutAt:  s.opts.Clock(),
	}
	if err := s.sessions.CreateEquipmentCheckout(ctx, checkout); err != nil {
		return nil, fmt.Errorf("failed to check out equipment: %w", err)
	}
	return toEquipmentResponse(checkout), nil
}

// ReturnEquipment marks equipment as handed back. Supervisors may return on behalf of others.
func (s *DutySessionService) ReturnEquipment(ctx context.Context, caller Caller, checkoutID uuid.UUID) (*EquipmentResponse, error) {
	checkout, err := s.sessions.GetEquipmentCheckout(ctx, checkoutID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEquipmentCheckoutNotFound, "load equipment checkout")
	}
	if checkout.UserID != caller.UserID && !caller.Has(models.RoleCanManageShifts) {
		return nil, apperrors.ErrNotSessionOwner
	}
	if checkout.ReturnedAt != nil {
		return nil, apperrors.ErrEquipmentReturned
	}

	now := s.opts.Clock()
	if err := s.sessions.MarkEquipmentReturned(ctx, checkoutID, now); err != nil {
		return nil, fmt.Errorf("failed to return equipment: %w", err)
	}
	checkout.ReturnedAt = &now
	return toEquipmentResponse(checkout), nil
}

// ListEquipment returns the equipment checked out on a session
func (s *DutySessionService) ListEquipment(ctx context.Context, caller Caller, sessionID uuid.UUID) ([]EquipmentResponse, error) {
	if _, err := s.getVisible(ctx, caller, sessionID); err != nil {
		return nil, err
	}
	checkouts, err := s.sessions.ListEquipment(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	out := make([]EquipmentResponse, 0, len(checkouts))
	for i := range checkouts {
		out = append(out, *toEquipmentResponse(&checkouts[i]))
	}
	return out, nil
}

// Current returns the caller's open session
func (s *DutySessionService) Current(ctx context.Context, caller Caller) (*DutySessionResponse, error) {
	session, err := s.sessions.GetOpenByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrNoOpenSession, "load open session")
	}
	return toDutySessionResponse(session), nil
}

// Get returns a session to its owner or to supervisors
func (s *DutySessionService) Get(ctx context.Context, caller Caller, sessionID uuid.UUID) (*DutySessionResponse, error) {
	session, err := s.getVisible(ctx, caller, sessionID)
	if err != nil {
		return nil, err
	}
	return toDutySessionResponse(session), nil
}

// List returns duty sessions. Guards only ever see their own.
func (s *DutySessionService) List(ctx context.Context, caller Caller, req ListDutySessionsRequest) (*DutySessionListResponse, error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	filter := repository.DutySessionFilter{UserID: req.UserID, OpenOnly: req.OpenOnly}
	if !caller.Has(models.RoleCanManageShifts) {
		filter.UserID = &caller.UserID
	}

	sessions, total, err := s.sessions.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty sessions: %w", err)
	}

	out := make([]DutySessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, *toDutySessionResponse(&sessions[i]))
	}
	return &DutySessionListResponse{Sessions: out, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *DutySessionService) getVisible(ctx context.Context, caller Caller, sessionID uuid.UUID) (*models.DutySession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDutySessionNotFound, "load duty session")
	}
	if session.UserID != caller.UserID && !caller.Has(models.RoleCanManageShifts) {
		return nil, apperrors.ErrNotSessionOwner
	}
	return session, nil
}

func (s *DutySessionService) publish(ctx context.Context, event string, payload interface{}) {
	_ = s.opts.Events.Publish(ctx, event, payload)
}

// checklistDescription renders "<checked>/<total> items checked" followed by one
// "- <item>: <note>" line per item carrying notes.
func checklistDescription(items []ChecklistItemAnswer, names map[uuid.UUID]string) string {
	var b strings.Builder
	b.WriteString("On-duty safety checklist completed.\n")
	fmt.Fprintf(&b, "%d/%d items checked", countChecked(items), len(items))
	for _, item := range items {
		note := strings.TrimSpace(item.Notes)
		if note == "" {
			continue
		}
		fmt.Fprintf(&b, "\n- %s: %s", names[item.ItemID], note)
	}
	return b.String()
}

func countChecked(items []ChecklistItemAnswer) int {
	n := 0
	for _, item := range items {
		if item.Checked {
			n++
		}
	}
	return n
}

func toDutySessionResponse(session *models.DutySession) *DutySessionResponse {
	resp := &DutySessionResponse{
		ID:           session.ID,
		UserID:       session.UserID,
		LocationID:   session.LocationID,
		ShiftID:      session.ShiftID,
		State:        session.State(),
		ClockInTime:  formatTime(session.ClockInTime),
		ClockOutTime: formatTimePtr(session.ClockOutTime),
		StartMileage: session.StartMileage,
		EndMileage:   session.EndMileage,
		Notes:        session.Notes,
	}
	if session.User != nil {
		resp.UserName = session.User.Name
	}
	if session.Location != nil {
		resp.LocationName = session.Location.Name
	}
	return resp
}

func toCheckInResponse(checkIn *models.LocationCheckIn) *CheckInResponse {
	resp := &CheckInResponse{
		ID:            checkIn.ID,
		DutySessionID: checkIn.DutySessionID,
		LocationID:    checkIn.LocationID,
		UserID:        checkIn.UserID,
		CheckInTime:   formatTime(checkIn.CheckInTime),
		Notes:         checkIn.Notes,
	}
	if checkIn.Location != nil {
		resp.LocationName = checkIn.Location.Name
	}
	return resp
}

func toEquipmentResponse(checkout *models.EquipmentCheckout) *EquipmentResponse {
	return &EquipmentResponse{
		ID:            checkout.ID,
		DutySessionID: checkout.DutySessionID,
		ItemName:      checkout.ItemName,
		SerialNumber:  checkout.SerialNumber,
		CheckedOutAt:  formatTime(checkout.CheckedOutAt),
		ReturnedAt:    formatTimePtr(checkout.ReturnedAt),
	}
}
