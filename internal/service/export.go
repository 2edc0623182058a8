package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	shiftsSheet    = "Shifts"
	calendarProdID = "-//marina-guard//shift calendar//EN"
)

// ExportService renders schedules for spreadsheets and calendar apps
type ExportService struct {
	shifts repository.ShiftRepositoryInterface
	users  repository.UserRepositoryInterface
	opts   Options
}

// NewExportService creates a new export service
func NewExportService(shifts repository.ShiftRepositoryInterface, users repository.UserRepositoryInterface, opts Options) *ExportService {
	return &ExportService{shifts: shifts, users: users, opts: opts.withDefaults()}
}

// ExportShiftsRequest selects the shifts to export
type ExportShiftsRequest struct {
	From       time.Time
	To         time.Time
	LocationID *uuid.UUID
}

// ShiftsWorkbook renders the shifts in the window as an xlsx workbook with one row per
// assignment. Unstaffed shifts get a single row.
func (s *ExportService) ShiftsWorkbook(ctx context.Context, caller Caller, req ExportShiftsRequest) (*bytes.Buffer, string, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, "", err
	}
	if !req.To.After(req.From) {
		return nil, "", apperrors.NewValidationError("to", "must be after from")
	}

	shifts, _, err := s.shifts.List(ctx, repository.ShiftFilter{
		From:       &req.From,
		To:         &req.To,
		LocationID: req.LocationID,
	}, 0, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list shifts: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(shiftsSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Date", "Start", "End", "Shift", "Location", "Guard", "Role"}
	widths := []float64{12, 8, 8, 24, 24, 24, 14}
	for i, h := range headers {
		col := colName(i)
		_ = f.SetColWidth(shiftsSheet, col, col, widths[i])
		_ = f.SetCellValue(shiftsSheet, cell(col, 1), h)
	}
	_ = f.SetCellStyle(shiftsSheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)
	_ = f.SetPanes(shiftsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	loc := s.opts.Location
	row := 2
	for _, shift := range shifts {
		start := shift.StartTime.In(loc)
		end := shift.EndTime.In(loc)
		locationName := ""
		if shift.Location != nil {
			locationName = shift.Location.Name
		}

		base := []interface{}{start.Format(DateFormat), start.Format("15:04"), end.Format("15:04"), shift.Name, locationName}
		if len(shift.Assignments) == 0 {
			writeRow(f, row, append(base, "Unassigned", ""))
			row++
			continue
		}
		for _, a := range shift.Assignments {
			name := a.UserID.String()
			if a.User != nil && a.User.Name != "" {
				name = a.User.Name
			}
			writeRow(f, row, append(base, name, a.Role))
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("shifts_%s_%s.xlsx", req.From.In(loc).Format(DateFormat), req.To.In(loc).Format(DateFormat))
	return buf, filename, nil
}

// UserCalendar renders a user's shifts as an iCalendar feed
func (s *ExportService) UserCalendar(ctx context.Context, caller Caller, userID uuid.UUID, from, to *time.Time) (string, error) {
	if userID != caller.UserID && !caller.Has(models.RoleCanManageShifts) {
		return "", apperrors.ErrInsufficientRole
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", notFound(err, apperrors.ErrUserNotFound, "get user")
	}

	shifts, _, err := s.shifts.List(ctx, repository.ShiftFilter{From: from, To: to, UserID: &userID}, 0, 0)
	if err != nil {
		return "", fmt.Errorf("failed to list user shifts: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProdID)
	cal.SetXWRCalName(fmt.Sprintf("Shifts for %s", displayName(user)))

	stamp := s.opts.Clock().UTC()
	for _, shift := range shifts {
		event := cal.AddEvent(fmt.Sprintf("%s@marina-guard", shift.ID))
		event.SetDtStampTime(stamp)
		event.SetStartAt(shift.StartTime.UTC())
		event.SetEndAt(shift.EndTime.UTC())
		event.SetSummary(shift.Name)
		if shift.Location != nil {
			event.SetLocation(shift.Location.Name)
		}
		for _, a := range shift.Assignments {
			if a.UserID == userID && a.Role != "" {
				event.SetDescription(fmt.Sprintf("Role: %s", a.Role))
			}
		}
	}
	return cal.Serialize(), nil
}

func writeRow(f *excelize.File, row int, values []interface{}) {
	for i, v := range values {
		_ = f.SetCellValue(shiftsSheet, cell(colName(i), row), v)
	}
}

func displayName(user *models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
