package models

// LogType defines the kinds of journal entries guards can write
type LogType string

const (
	LogTypePatrol          LogType = "PATROL"
	LogTypeIncident        LogType = "INCIDENT"
	LogTypeOnDutyChecklist LogType = "ON_DUTY_CHECKLIST"
	LogTypeMaintenance     LogType = "MAINTENANCE"
	LogTypeGeneral         LogType = "GENERAL"
)

// LogSeverity grades an incident
type LogSeverity string

const (
	LogSeverityLow      LogSeverity = "LOW"
	LogSeverityMedium   LogSeverity = "MEDIUM"
	LogSeverityHigh     LogSeverity = "HIGH"
	LogSeverityCritical LogSeverity = "CRITICAL"
)

// LogStatus tracks the follow-up state of a log entry
type LogStatus string

const (
	LogStatusOpen     LogStatus = "OPEN"
	LogStatusUpdated  LogStatus = "UPDATED"
	LogStatusResolved LogStatus = "RESOLVED"
	LogStatusClosed   LogStatus = "CLOSED"
)

// IsValid checks if the LogType is valid
func (t LogType) IsValid() bool {
	switch t {
	case LogTypePatrol, LogTypeIncident, LogTypeOnDutyChecklist, LogTypeMaintenance, LogTypeGeneral:
		return true
	}
	return false
}

// IsValid checks if the LogSeverity is valid
func (s LogSeverity) IsValid() bool {
	switch s {
	case LogSeverityLow, LogSeverityMedium, LogSeverityHigh, LogSeverityCritical:
		return true
	}
	return false
}

// IsValid checks if the LogStatus is valid
func (s LogStatus) IsValid() bool {
	switch s {
	case LogStatusOpen, LogStatusUpdated, LogStatusResolved, LogStatusClosed:
		return true
	}
	return false
}
